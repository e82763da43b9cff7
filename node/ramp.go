package node

import (
	"fmt"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/parcel"
	"github.com/Pmrowka25/zpo-netsim/routing"
)

// Ramp is a LoadingRamp: a source of new Packages with no receive
// capability.
type Ramp struct {
	id               netsim.ElementID
	deliveryInterval uint64
	sendBuf          *parcel.Package
	prefs            *routing.Preferences
}

// NewRamp creates a LoadingRamp. deliveryInterval must be >= 1; the
// caller (the topology loader or direct code) is responsible for that
// invariant.
func NewRamp(id netsim.ElementID, deliveryInterval uint64, generator routing.Generator) *Ramp {
	if deliveryInterval == 0 {
		panic("netsim: ramp delivery interval must be >= 1")
	}
	return &Ramp{
		id:               id,
		deliveryInterval: deliveryInterval,
		prefs:            routing.New(generator),
	}
}

// ID returns the ramp's element id.
func (r *Ramp) ID() netsim.ElementID { return r.id }

// Kind reports this node as a LoadingRamp.
func (r *Ramp) Kind() netsim.NodeKind { return netsim.KindRamp }

// DeliveryInterval returns the configured delivery cadence.
func (r *Ramp) DeliveryInterval() uint64 { return r.deliveryInterval }

// Preferences returns the ramp's receiver preferences.
func (r *Ramp) Preferences() *routing.Preferences { return r.prefs }

// Deliver implements phase 1 for a ramp: on a delivery turn, place a
// freshly constructed Package in the sending-buffer. Delivering into an
// already-occupied buffer is a programming error — it cannot happen if
// phase 2 of every turn runs before phase 1 of the next.
func (r *Ramp) Deliver(t netsim.Time) {
	if (uint64(t)-1)%r.deliveryInterval != 0 {
		return
	}

	if r.sendBuf != nil {
		mustNotBeOccupied(r.Kind(), r.id, "sending")
	}

	p := parcel.New()
	r.sendBuf = &p
}

// HasPending reports whether the sending-buffer holds a Package.
func (r *Ramp) HasPending() bool {
	return r.sendBuf != nil
}

// PeekPending returns the buffered Package without removing it.
func (r *Ramp) PeekPending() (parcel.Package, bool) {
	if r.sendBuf == nil {
		return parcel.Package{}, false
	}
	return *r.sendBuf, true
}

// TakePending removes and returns the buffered Package. Calling it when
// HasPending is false is a programming error.
func (r *Ramp) TakePending() parcel.Package {
	if r.sendBuf == nil {
		panic(fmt.Sprintf("netsim: ramp #%d has no pending package to take", r.id))
	}
	p := *r.sendBuf
	r.sendBuf = nil
	return p
}
