package node

import (
	"fmt"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/buffer"
	"github.com/Pmrowka25/zpo-netsim/parcel"
	"github.com/Pmrowka25/zpo-netsim/routing"
)

// Worker both receives and sends: it holds an input queue, a
// processing-buffer (work in progress), and a sending-buffer (a
// finished good awaiting dispatch).
type Worker struct {
	id                 netsim.ElementID
	processingDuration uint64
	queue              *buffer.PackageBuffer
	processingBuf      *parcel.Package
	processingStart    *netsim.Time
	sendBuf            *parcel.Package
	prefs              *routing.Preferences
}

// NewWorker creates a Worker. processingDuration must be >= 1.
func NewWorker(
	id netsim.ElementID,
	processingDuration uint64,
	discipline buffer.Discipline,
	generator routing.Generator,
) *Worker {
	if processingDuration == 0 {
		panic("netsim: worker processing duration must be >= 1")
	}
	return &Worker{
		id:                 id,
		processingDuration: processingDuration,
		queue:              buffer.New(discipline),
		prefs:              routing.New(generator),
	}
}

// ID returns the worker's element id.
func (w *Worker) ID() netsim.ElementID { return w.id }

// Kind reports this node as a Worker.
func (w *Worker) Kind() netsim.NodeKind { return netsim.KindWorker }

// ProcessingDuration returns the configured processing time.
func (w *Worker) ProcessingDuration() uint64 { return w.processingDuration }

// QueueDiscipline returns the input queue's pop discipline.
func (w *Worker) QueueDiscipline() buffer.Discipline { return w.queue.Discipline() }

// Preferences returns the worker's receiver preferences.
func (w *Worker) Preferences() *routing.Preferences { return w.prefs }

// Queue exposes the input queue's current contents in logical pop
// order, for reporting. The returned slice is a snapshot.
func (w *Worker) Queue() []parcel.Package { return w.queue.Items() }

// Processing returns the Package currently in the processing-buffer
// (if any) and the processing time (pt) it would report at turn t:
// t - processingStart + 1.
func (w *Worker) Processing(t netsim.Time) (p parcel.Package, pt uint64, ok bool) {
	if w.processingBuf == nil {
		return parcel.Package{}, 0, false
	}
	return *w.processingBuf, uint64(t) - uint64(*w.processingStart) + 1, true
}

// Receive pushes p onto the input queue.
func (w *Worker) Receive(p parcel.Package) {
	w.queue.Push(p)
}

// Work implements phase 3 for a worker:
//
//  1. If the processing-buffer is empty and the queue is non-empty, pop
//     the queue into the processing-buffer and record t as the start
//     time.
//  2. If the processing-buffer is non-empty and enough turns have
//     elapsed (t - start + 1 >= processingDuration), move the package
//     to the sending-buffer and clear the processing-buffer and start
//     time.
func (w *Worker) Work(t netsim.Time) {
	if w.processingBuf == nil && !w.queue.Empty() {
		p, err := w.queue.Pop()
		if err != nil {
			// queue.Empty() was just checked false; Pop cannot fail.
			panic(err)
		}
		w.processingBuf = &p
		start := t
		w.processingStart = &start
	}

	if w.processingBuf != nil {
		elapsed := uint64(t) - uint64(*w.processingStart) + 1
		if elapsed >= w.processingDuration {
			if w.sendBuf != nil {
				mustNotBeOccupied(w.Kind(), w.id, "sending")
			}
			w.sendBuf = w.processingBuf
			w.processingBuf = nil
			w.processingStart = nil
		}
	}
}

// HasPending reports whether the sending-buffer holds a Package.
func (w *Worker) HasPending() bool {
	return w.sendBuf != nil
}

// PeekPending returns the buffered Package without removing it, for
// reporting a worker's sending-buffer contents.
func (w *Worker) PeekPending() (parcel.Package, bool) {
	if w.sendBuf == nil {
		return parcel.Package{}, false
	}
	return *w.sendBuf, true
}

// TakePending removes and returns the buffered Package. Calling it when
// HasPending is false is a programming error.
func (w *Worker) TakePending() parcel.Package {
	if w.sendBuf == nil {
		panic(fmt.Sprintf("netsim: worker #%d has no pending package to take", w.id))
	}
	p := *w.sendBuf
	w.sendBuf = nil
	return p
}
