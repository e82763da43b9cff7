// Package netsim holds the types and error kinds shared across every
// NetSim package: element identity, the turn clock, and the receiver
// handle used to cross the boundary between a sender's preferences and
// the Factory that owns the actual nodes.
package netsim

import "fmt"

// ElementID identifies a node within its kind, or a Package for its
// lifetime. It is always non-negative; the zero value is a valid id.
type ElementID uint64

// Time is a turn counter. The first turn of a simulation is Time(1).
type Time uint64

// NodeKind distinguishes the three node variants a Factory can hold.
type NodeKind uint8

// The three node kinds a Factory tracks.
const (
	KindRamp NodeKind = iota
	KindWorker
	KindStorehouse
)

// String renders the kind the way the structural and turn reports do,
// and the way a ReceiverHandle sorts: "storehouse" precedes "worker"
// lexicographically, which is also their ascending sort order.
func (k NodeKind) String() string {
	switch k {
	case KindRamp:
		return "ramp"
	case KindWorker:
		return "worker"
	case KindStorehouse:
		return "storehouse"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

// Tag renders the kind the way the topology file's LINK directive does
// (`ramp-<n>`, `worker-<n>`, `store-<n>`).
func (k NodeKind) Tag() string {
	if k == KindStorehouse {
		return "store"
	}
	return k.String()
}

// ParseTag resolves a topology-file tag back to a NodeKind.
func ParseTag(tag string) (NodeKind, bool) {
	switch tag {
	case "ramp":
		return KindRamp, true
	case "worker":
		return KindWorker, true
	case "store":
		return KindStorehouse, true
	default:
		return 0, false
	}
}

// ReceiverHandle is a non-owning, stable reference to a node that can
// receive a Package: a Worker or a Storehouse. It never refers to a
// LoadingRamp — ramps have no receive capability.
//
// ReceiverPreferences stores these, not node pointers, so that the
// mapping never outlives or dangles off the Factory that actually owns
// the node; resolving a handle back to a live node is the Factory's
// job (see factory.Factory.Resolve).
type ReceiverHandle struct {
	Kind NodeKind
	ID   ElementID
}

// Less orders handles the way every deterministic iteration in NetSim
// is required to: lexicographically by kind name, then by id.
func (h ReceiverHandle) Less(other ReceiverHandle) bool {
	if h.Kind != other.Kind {
		return h.Kind.String() < other.Kind.String()
	}
	return h.ID < other.ID
}

// String renders the handle the way reports list a receiver, e.g.
// "worker #3".
func (h ReceiverHandle) String() string {
	return fmt.Sprintf("%s #%d", h.Kind, h.ID)
}
