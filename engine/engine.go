// Package engine implements the turn scheduler: the thin loop that
// drives a Factory's three phases in fixed order for a bounded horizon
// and invokes an observer after each turn. The clock is a synchronous
// integer turn counter rather than a priority queue of timestamped
// events, so there is no event queue here — Simulate just counts.
package engine

import (
	"fmt"
	"log"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/factory"
	"github.com/rs/xid"
)

// Observer is notified once after every turn completes. Implementations
// must not mutate the Factory's structure (add or remove nodes/links) —
// structural edits are only safe between Simulate calls.
type Observer interface {
	Observe(f *factory.Factory, t netsim.Time)
}

// ObserverFunc adapts a plain function to the Observer interface, the
// same way http.HandlerFunc adapts a function to http.Handler.
type ObserverFunc func(f *factory.Factory, t netsim.Time)

// Observe calls fn.
func (fn ObserverFunc) Observe(f *factory.Factory, t netsim.Time) {
	fn(f, t)
}

// Engine drives Simulate calls. Its only state is where to log; it
// holds no simulation state of its own, so one Engine can drive many
// Factories, and a Factory can just as well be driven by calling
// Simulate with a fresh Engine each time.
type Engine struct {
	logger *log.Logger
}

// New creates an Engine. A nil logger falls back to log.Default.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{logger: logger}
}

// Simulate runs horizon turns against f:
//
//  1. If f is not consistent, fail with ErrInconsistentTopology without
//     running any turn.
//  2. For t in 1..=horizon, run deliver, pass, work in that fixed
//     order, then notify observer.
//  3. Return nil after horizon turns complete.
//
// There are no partial turns: the consistency check happens once,
// before turn 1, not on every turn, so a structural edit made from
// inside observer (itself unsafe — see Observer) cannot abort a turn
// partway through.
func (e *Engine) Simulate(f *factory.Factory, horizon netsim.Time, observer Observer) error {
	if !f.IsConsistent() {
		return fmt.Errorf("%w: consistency check failed before turn 1", netsim.ErrInconsistentTopology)
	}

	runID := xid.New().String()
	e.logger.Printf("netsim: run %s starting, horizon=%d turns", runID, horizon)

	for t := netsim.Time(1); t <= horizon; t++ {
		f.DoDeliveries(t)
		f.DoPackagePassing()
		f.DoWork(t)

		if observer != nil {
			observer.Observe(f, t)
		}
	}

	e.logger.Printf("netsim: run %s finished after %d turns", runID, horizon)
	return nil
}
