// Package buffer implements PackageBuffer, the ordered container every
// Worker's input queue is built on:
// push/pop/peek/size over a backing slice, with "empty" reported as a
// bool at the boundary where that matters and as an error where popping
// is expected to always succeed. It is unbounded and supports both FIFO
// and LIFO pop discipline.
package buffer

import (
	"fmt"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/parcel"
)

// Discipline selects which end of the buffer Pop drains.
type Discipline int

// The two pop disciplines a PackageBuffer supports.
const (
	FIFO Discipline = iota
	LIFO
)

// String renders the discipline the way the topology file and the
// structural report spell it.
func (d Discipline) String() string {
	if d == LIFO {
		return "LIFO"
	}
	return "FIFO"
}

// PackageBuffer is an ordered, unbounded sequence of Packages.
type PackageBuffer struct {
	discipline Discipline
	items      []parcel.Package
}

// New creates an empty PackageBuffer with a fixed discipline.
func New(discipline Discipline) *PackageBuffer {
	return &PackageBuffer{discipline: discipline}
}

// Discipline returns the buffer's fixed pop discipline.
func (b *PackageBuffer) Discipline() Discipline {
	return b.discipline
}

// Push appends a Package to the buffer.
func (b *PackageBuffer) Push(p parcel.Package) {
	b.items = append(b.items, p)
}

// Pop removes and returns the front element: under FIFO the oldest
// pushed, under LIFO the newest. It fails with ErrEmptyBuffer when the
// buffer holds nothing.
func (b *PackageBuffer) Pop() (parcel.Package, error) {
	if len(b.items) == 0 {
		return parcel.Package{}, fmt.Errorf("%w: pop", netsim.ErrEmptyBuffer)
	}

	switch b.discipline {
	case LIFO:
		last := len(b.items) - 1
		p := b.items[last]
		b.items = b.items[:last]
		return p, nil
	default: // FIFO
		p := b.items[0]
		b.items = b.items[1:]
		return p, nil
	}
}

// Peek returns the front element without removing it. ok is false when
// the buffer is empty.
func (b *PackageBuffer) Peek() (p parcel.Package, ok bool) {
	if len(b.items) == 0 {
		return parcel.Package{}, false
	}

	if b.discipline == LIFO {
		return b.items[len(b.items)-1], true
	}
	return b.items[0], true
}

// Size returns the number of Packages currently buffered.
func (b *PackageBuffer) Size() int {
	return len(b.items)
}

// Empty reports whether the buffer holds nothing.
func (b *PackageBuffer) Empty() bool {
	return len(b.items) == 0
}

// Items returns a snapshot of the buffer contents in logical order,
// front (next to Pop) first. The returned slice is not aliased to the
// buffer's backing storage.
func (b *PackageBuffer) Items() []parcel.Package {
	out := make([]parcel.Package, len(b.items))

	if b.discipline == LIFO {
		for i, p := range b.items {
			out[len(b.items)-1-i] = p
		}
		return out
	}

	copy(out, b.items)
	return out
}
