// Package factory implements Factory: the exclusive owner of every node
// in a topology, the three turn phases, and the consistency check that
// must pass before a simulation may run. Every other node holds a handle
// rather than a pointer into another node's state, so Factory is the
// only place a lookup by id can fail or a structural edit can happen.
package factory

import (
	"fmt"
	"log"
	"sort"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/node"
)

// Factory owns every node of a topology and drives its three turn
// phases.
type Factory struct {
	ramps       map[netsim.ElementID]*node.Ramp
	workers     map[netsim.ElementID]*node.Worker
	storehouses map[netsim.ElementID]*node.Storehouse

	logger *log.Logger
}

// New creates an empty Factory. A nil logger falls back to log.Default.
func New(logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.Default()
	}
	return &Factory{
		ramps:       make(map[netsim.ElementID]*node.Ramp),
		workers:     make(map[netsim.ElementID]*node.Worker),
		storehouses: make(map[netsim.ElementID]*node.Storehouse),
		logger:      logger,
	}
}

// AddRamp registers r. It fails with ErrDuplicateID if a ramp with the
// same id already exists.
func (f *Factory) AddRamp(r *node.Ramp) error {
	if _, exists := f.ramps[r.ID()]; exists {
		return fmt.Errorf("%w: ramp #%d", netsim.ErrDuplicateID, r.ID())
	}
	f.ramps[r.ID()] = r
	return nil
}

// AddWorker registers w. It fails with ErrDuplicateID if a worker with
// the same id already exists.
func (f *Factory) AddWorker(w *node.Worker) error {
	if _, exists := f.workers[w.ID()]; exists {
		return fmt.Errorf("%w: worker #%d", netsim.ErrDuplicateID, w.ID())
	}
	f.workers[w.ID()] = w
	return nil
}

// AddStorehouse registers s. It fails with ErrDuplicateID if a
// storehouse with the same id already exists.
func (f *Factory) AddStorehouse(s *node.Storehouse) error {
	if _, exists := f.storehouses[s.ID()]; exists {
		return fmt.Errorf("%w: storehouse #%d", netsim.ErrDuplicateID, s.ID())
	}
	f.storehouses[s.ID()] = s
	return nil
}

// RemoveRampByID removes the ramp with the given id. Ramps are never
// receivers, so no other node's preferences can reference one; nothing
// else needs sweeping.
func (f *Factory) RemoveRampByID(id netsim.ElementID) error {
	if _, exists := f.ramps[id]; !exists {
		return fmt.Errorf("%w: ramp #%d", netsim.ErrNotFound, id)
	}
	delete(f.ramps, id)
	return nil
}

// RemoveWorkerByID removes the worker with the given id and eagerly
// sweeps it out of every Preferences in the Factory, so no sender is
// left holding a handle to a node that no longer exists.
func (f *Factory) RemoveWorkerByID(id netsim.ElementID) error {
	if _, exists := f.workers[id]; !exists {
		return fmt.Errorf("%w: worker #%d", netsim.ErrNotFound, id)
	}
	delete(f.workers, id)
	f.sweepReceiver(netsim.ReceiverHandle{Kind: netsim.KindWorker, ID: id})
	return nil
}

// RemoveStorehouseByID removes the storehouse with the given id and
// sweeps it out of every ReceiverPreferences in the Factory.
func (f *Factory) RemoveStorehouseByID(id netsim.ElementID) error {
	if _, exists := f.storehouses[id]; !exists {
		return fmt.Errorf("%w: storehouse #%d", netsim.ErrNotFound, id)
	}
	delete(f.storehouses, id)
	f.sweepReceiver(netsim.ReceiverHandle{Kind: netsim.KindStorehouse, ID: id})
	return nil
}

func (f *Factory) sweepReceiver(h netsim.ReceiverHandle) {
	for _, r := range f.ramps {
		r.Preferences().Remove(h)
	}
	for _, w := range f.workers {
		w.Preferences().Remove(h)
	}
}

// FindRampByID looks up a ramp, failing with ErrNotFound if absent.
func (f *Factory) FindRampByID(id netsim.ElementID) (*node.Ramp, error) {
	r, ok := f.ramps[id]
	if !ok {
		return nil, fmt.Errorf("%w: ramp #%d", netsim.ErrNotFound, id)
	}
	return r, nil
}

// FindWorkerByID looks up a worker, failing with ErrNotFound if absent.
func (f *Factory) FindWorkerByID(id netsim.ElementID) (*node.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return nil, fmt.Errorf("%w: worker #%d", netsim.ErrNotFound, id)
	}
	return w, nil
}

// FindStorehouseByID looks up a storehouse, failing with ErrNotFound if
// absent.
func (f *Factory) FindStorehouseByID(id netsim.ElementID) (*node.Storehouse, error) {
	s, ok := f.storehouses[id]
	if !ok {
		return nil, fmt.Errorf("%w: storehouse #%d", netsim.ErrNotFound, id)
	}
	return s, nil
}

// Ramps returns every ramp in ascending id order.
func (f *Factory) Ramps() []*node.Ramp {
	out := make([]*node.Ramp, 0, len(f.ramps))
	for _, r := range f.ramps {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Workers returns every worker in ascending id order.
func (f *Factory) Workers() []*node.Worker {
	out := make([]*node.Worker, 0, len(f.workers))
	for _, w := range f.workers {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Storehouses returns every storehouse in ascending id order.
func (f *Factory) Storehouses() []*node.Storehouse {
	out := make([]*node.Storehouse, 0, len(f.storehouses))
	for _, s := range f.storehouses {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Resolve turns a ReceiverHandle into the live node it addresses. It
// returns false when no worker or storehouse with that handle exists,
// and always for a ramp handle, since ramps never receive. During
// phase 2 a false result means a sender's preferences hold a handle
// that the eager-sweep-on-remove policy failed to clean up — a bug in
// the Factory itself.
func (f *Factory) Resolve(h netsim.ReceiverHandle) (node.Receiver, bool) {
	switch h.Kind {
	case netsim.KindWorker:
		w, ok := f.workers[h.ID]
		if !ok {
			return nil, false
		}
		return w, true
	case netsim.KindStorehouse:
		s, ok := f.storehouses[h.ID]
		if !ok {
			return nil, false
		}
		return s, true
	default:
		return nil, false
	}
}

// DoDeliveries runs phase 1 of turn t: every ramp decides whether to
// emit a new Package.
func (f *Factory) DoDeliveries(t netsim.Time) {
	for _, r := range f.Ramps() {
		r.Deliver(t)
	}
}

// DoPackagePassing runs phase 2: every ramp and worker with a pending
// Package and a non-empty preference set hands it to the chosen
// receiver. A sender with a pending Package but no receivers is a no-op:
// the Package stays buffered for the next turn.
func (f *Factory) DoPackagePassing() {
	for _, r := range f.Ramps() {
		f.pass(r)
	}
	for _, w := range f.Workers() {
		f.pass(w)
	}
}

func (f *Factory) pass(s node.Sender) {
	if !s.HasPending() {
		return
	}
	if s.Preferences().Len() == 0 {
		return
	}

	handle, err := s.Preferences().Choose()
	if err != nil {
		// Preferences().Len() was just checked non-zero; Choose cannot
		// fail.
		panic(err)
	}

	receiver, ok := f.Resolve(handle)
	if !ok {
		f.logger.Panicf(
			"netsim: %s #%d chose %s, which is not a live node in this factory",
			s.Kind(), s.ID(), handle,
		)
	}

	receiver.Receive(s.TakePending())
}

// DoWork runs phase 3: every worker starts, continues, or finishes
// processing.
func (f *Factory) DoWork(t netsim.Time) {
	for _, w := range f.Workers() {
		w.Work(t)
	}
}
