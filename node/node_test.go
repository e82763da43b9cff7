package node

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/buffer"
	"github.com/Pmrowka25/zpo-netsim/parcel"
)

func mustNewPackage() parcel.Package {
	return parcel.New()
}

func TestRampDeliversOnCadence(t *testing.T) {
	r := NewRamp(netsim.ElementID(1), 3, nil)

	r.Deliver(netsim.Time(1))
	assert.True(t, r.HasPending())

	p := r.TakePending()
	assert.False(t, r.HasPending())

	r.Deliver(netsim.Time(2))
	assert.False(t, r.HasPending())
	r.Deliver(netsim.Time(3))
	assert.False(t, r.HasPending())
	r.Deliver(netsim.Time(4))
	assert.True(t, r.HasPending())

	peeked, ok := r.PeekPending()
	assert.True(t, ok)
	assert.NotEqual(t, p, peeked)
}

func TestRampDeliverIntoOccupiedBufferPanics(t *testing.T) {
	r := NewRamp(netsim.ElementID(1), 1, nil)
	r.Deliver(netsim.Time(1))
	assert.Panics(t, func() { r.Deliver(netsim.Time(2)) })
}

func TestNewRampRejectsZeroInterval(t *testing.T) {
	assert.Panics(t, func() { NewRamp(netsim.ElementID(1), 0, nil) })
}

func TestRampTakePendingOnEmptyPanics(t *testing.T) {
	r := NewRamp(netsim.ElementID(1), 1, nil)
	assert.Panics(t, func() { r.TakePending() })
}

func TestWorkerProcessesAfterDuration(t *testing.T) {
	w := NewWorker(netsim.ElementID(1), 3, buffer.FIFO, nil)

	p := mustNewPackage()
	w.Receive(p)

	w.Work(netsim.Time(1))
	got, pt, ok := w.Processing(netsim.Time(1))
	assert.True(t, ok)
	assert.Equal(t, p, got)
	assert.Equal(t, uint64(1), pt)
	assert.False(t, w.HasPending())

	w.Work(netsim.Time(2))
	_, pt, ok = w.Processing(netsim.Time(2))
	assert.True(t, ok)
	assert.Equal(t, uint64(2), pt)
	assert.False(t, w.HasPending())

	w.Work(netsim.Time(3))
	_, _, ok = w.Processing(netsim.Time(3))
	assert.False(t, ok)
	assert.True(t, w.HasPending())

	out, ok := w.PeekPending()
	assert.True(t, ok)
	assert.Equal(t, p, out)
}

func TestWorkerStartsNextJobOnceSendBufferIsClear(t *testing.T) {
	w := NewWorker(netsim.ElementID(1), 1, buffer.FIFO, nil)

	p1 := mustNewPackage()
	p2 := mustNewPackage()
	w.Receive(p1)
	w.Receive(p2)

	w.Work(netsim.Time(1))
	assert.True(t, w.HasPending())
	_, _, ok := w.Processing(netsim.Time(1))
	assert.False(t, ok, "Work takes at most one job from the queue per call")

	w.TakePending()
	w.Work(netsim.Time(2))
	next, ok := w.PeekPending()
	assert.True(t, ok)
	assert.Equal(t, p2, next)
}

func TestWorkerSendBufferOverflowPanics(t *testing.T) {
	w := NewWorker(netsim.ElementID(1), 1, buffer.FIFO, nil)
	w.Receive(mustNewPackage())
	w.Work(netsim.Time(1))

	w.Receive(mustNewPackage())
	assert.Panics(t, func() { w.Work(netsim.Time(2)) })
}

func TestNewWorkerRejectsZeroDuration(t *testing.T) {
	assert.Panics(t, func() { NewWorker(netsim.ElementID(1), 0, buffer.FIFO, nil) })
}

func TestStorehouseAccumulatesStock(t *testing.T) {
	s := NewStorehouse(netsim.ElementID(1))
	p1, p2 := mustNewPackage(), mustNewPackage()
	s.Receive(p1)
	s.Receive(p2)

	stock := s.Stock()
	assert.Equal(t, p1, stock[0])
	assert.Equal(t, p2, stock[1])
}

func TestHandleUsesKindAndID(t *testing.T) {
	s := NewStorehouse(netsim.ElementID(9))
	h := Handle(s)
	assert.Equal(t, netsim.KindStorehouse, h.Kind)
	assert.Equal(t, netsim.ElementID(9), h.ID)
}
