// Package routing implements Preferences: the equal-probability mapping
// from a sender (a LoadingRamp or Worker) to the receivers it may hand a
// Package to, and the stochastic pick over that mapping. Receivers are
// addressed by a stable netsim.ReceiverHandle rather than a live pointer,
// and iterated in a fixed deterministic order, so routing stays
// reproducible across runs.
package routing

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/Pmrowka25/zpo-netsim"
)

// Generator produces a value in [0, 1) used to pick a receiver. Tests
// inject a generator that returns known values; production
// code uses the default, which draws from math/rand.
type Generator func() float64

// defaultGenerator draws a uniform value over [0, 1) from math/rand's
// global source.
func defaultGenerator() float64 {
	return rand.Float64() //nolint:gosec // simulation routing, not security-sensitive
}

// Entry is one row of a Preferences snapshot: a receiver and its
// current probability.
type Entry struct {
	Handle      netsim.ReceiverHandle
	Probability float64
}

// Preferences is a dynamic, equal-probability mapping from a sender to
// the receivers eligible to receive its next Package.
type Preferences struct {
	generator Generator
	handles   []netsim.ReceiverHandle // always kept sorted by Less
}

// New creates an empty Preferences set. A nil generator falls back to
// the process-wide uniform default.
func New(generator Generator) *Preferences {
	if generator == nil {
		generator = defaultGenerator
	}
	return &Preferences{generator: generator}
}

// Add inserts receiver if it is not already present, then rebalances
// every probability to 1/n. Adding an already-present receiver is a
// no-op beyond the rebalance (which is itself a no-op since n is
// unchanged).
func (p *Preferences) Add(receiver netsim.ReceiverHandle) {
	idx, found := p.search(receiver)
	if found {
		return
	}

	p.handles = append(p.handles, netsim.ReceiverHandle{})
	copy(p.handles[idx+1:], p.handles[idx:])
	p.handles[idx] = receiver
}

// Remove deletes receiver if present, then rebalances. Removing the
// last receiver leaves the set empty.
func (p *Preferences) Remove(receiver netsim.ReceiverHandle) {
	idx, found := p.search(receiver)
	if !found {
		return
	}

	p.handles = append(p.handles[:idx], p.handles[idx+1:]...)
}

// Len returns the number of receivers currently held.
func (p *Preferences) Len() int {
	return len(p.handles)
}

// Has reports whether receiver is currently in the set.
func (p *Preferences) Has(receiver netsim.ReceiverHandle) bool {
	_, found := p.search(receiver)
	return found
}

// Preferences returns a read-only snapshot of the mapping in
// deterministic order: ascending by the handle's (kind name, id) key.
func (p *Preferences) Preferences() []Entry {
	n := len(p.handles)
	if n == 0 {
		return nil
	}

	prob := 1.0 / float64(n)
	out := make([]Entry, n)
	for i, h := range p.handles {
		out[i] = Entry{Handle: h, Probability: prob}
	}
	return out
}

// Choose draws r from the generator and walks the ordered mapping
// accumulating probabilities, returning the first receiver whose
// running total strictly exceeds r. With equal probabilities this is
// index floor(r*n). Fails with ErrNoReceiver when the set is empty.
func (p *Preferences) Choose() (netsim.ReceiverHandle, error) {
	n := len(p.handles)
	if n == 0 {
		return netsim.ReceiverHandle{}, fmt.Errorf("%w: choose", netsim.ErrNoReceiver)
	}

	r := p.generator()
	prob := 1.0 / float64(n)

	running := 0.0
	for i, h := range p.handles {
		running += prob
		if running > r {
			return h, nil
		}
		if i == n-1 {
			// Floating point rounding can leave running == r at the
			// last slot instead of strictly exceeding it; the last
			// receiver is always the fallback so every r in [0,1)
			// resolves to some receiver.
			return h, nil
		}
	}

	// Unreachable: the loop above always returns by the last iteration.
	return netsim.ReceiverHandle{}, fmt.Errorf("%w: choose", netsim.ErrNoReceiver)
}

// search returns the index at which receiver is, or would be inserted
// to keep p.handles sorted, and whether it is already present.
func (p *Preferences) search(receiver netsim.ReceiverHandle) (int, bool) {
	idx := sort.Search(len(p.handles), func(i int) bool {
		return !p.handles[i].Less(receiver)
	})
	if idx < len(p.handles) && p.handles[idx] == receiver {
		return idx, true
	}
	return idx, false
}
