package node

import (
	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/parcel"
)

// Storehouse receives Packages and never sends: it is a terminal node.
type Storehouse struct {
	id    netsim.ElementID
	stock []parcel.Package
}

// NewStorehouse creates an empty Storehouse.
func NewStorehouse(id netsim.ElementID) *Storehouse {
	return &Storehouse{id: id}
}

// ID returns the storehouse's element id.
func (s *Storehouse) ID() netsim.ElementID { return s.id }

// Kind reports this node as a Storehouse.
func (s *Storehouse) Kind() netsim.NodeKind { return netsim.KindStorehouse }

// Receive appends p to the stock.
func (s *Storehouse) Receive(p parcel.Package) {
	s.stock = append(s.stock, p)
}

// Stock returns a snapshot of the stock in insertion order.
func (s *Storehouse) Stock() []parcel.Package {
	out := make([]parcel.Package, len(s.stock))
	copy(out, s.stock)
	return out
}
