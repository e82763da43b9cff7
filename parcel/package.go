// Package parcel defines the Package moved through a NetSim factory and
// the process-wide generator that hands out its default identity. A
// sequential generator is the only one wired into production code —
// auto ids must be deterministic and collision-free within one run —
// but the Generator interface is kept swappable so a test can install a
// different one without touching Package itself.
package parcel

import (
	"fmt"
	"sync/atomic"

	"github.com/Pmrowka25/zpo-netsim"
)

// Generator produces the id a Package receives when none is supplied
// explicitly at construction.
type Generator interface {
	Next() netsim.ElementID
}

// sequentialGenerator is the only Generator NetSim's own code installs.
// It starts at 1 so that the zero value of netsim.ElementID stays
// reserved for "explicitly constructed with id 0", which is legal and
// distinct from "never assigned".
type sequentialGenerator struct {
	next atomic.Uint64
}

func (g *sequentialGenerator) Next() netsim.ElementID {
	return netsim.ElementID(g.next.Add(1))
}

var defaultGenerator Generator = &sequentialGenerator{}

// UseGenerator swaps the process-wide auto-id generator. Tests use this
// to install a Generator that returns a known sequence; production code
// never needs to call it.
func UseGenerator(g Generator) {
	defaultGenerator = g
}

// A Package is an opaque token with a unique identity. Equality is by
// id: two Packages with the same id are the same package, however they
// were constructed.
type Package struct {
	id netsim.ElementID
}

// New constructs a Package with an id drawn from the process-wide
// generator.
func New() Package {
	return Package{id: defaultGenerator.Next()}
}

// NewWithID constructs a Package with an explicit id, bypassing the
// generator. Intended for tests and for reconstructing Packages whose
// identity was already recorded elsewhere (e.g. a saved topology does
// not carry in-flight packages, but a future persistence layer could).
func NewWithID(id netsim.ElementID) Package {
	return Package{id: id}
}

// ID returns the package's identity.
func (p Package) ID() netsim.ElementID {
	return p.id
}

// String renders the package the way every NetSim report does: "#<id>".
func (p Package) String() string {
	return fmt.Sprintf("#%d", p.id)
}
