// Package node implements the three node variants a Factory arranges
// into a production graph: LoadingRamp, Worker, and Storehouse. Each
// exposes a narrow capability surface — Receiver, Sender, or both —
// rather than a single fat interface, since a ramp can never receive
// and a storehouse can never send.
package node

import (
	"fmt"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/parcel"
	"github.com/Pmrowka25/zpo-netsim/routing"
)

// Receiver is any node that can accept a Package handed to it during
// phase 2: a Worker or a Storehouse.
type Receiver interface {
	ID() netsim.ElementID
	Kind() netsim.NodeKind
	Receive(p parcel.Package)
}

// Sender is any node that holds a sending-buffer and a set of receiver
// preferences: a LoadingRamp or a Worker.
type Sender interface {
	ID() netsim.ElementID
	Kind() netsim.NodeKind
	Preferences() *routing.Preferences
	HasPending() bool
	PeekPending() (parcel.Package, bool)
	TakePending() parcel.Package
}

// Handle returns the ReceiverHandle a Receiver is addressed by.
func Handle(r Receiver) netsim.ReceiverHandle {
	return netsim.ReceiverHandle{Kind: r.Kind(), ID: r.ID()}
}

func mustNotBeOccupied(kind netsim.NodeKind, id netsim.ElementID, slot string) {
	panic(fmt.Sprintf(
		"netsim: %s #%d %s buffer already occupied — phase ordering was violated",
		kind, id, slot,
	))
}
