package engine_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/buffer"
	"github.com/Pmrowka25/zpo-netsim/engine"
	"github.com/Pmrowka25/zpo-netsim/factory"
	"github.com/Pmrowka25/zpo-netsim/node"
)

func wiredFactory() *factory.Factory {
	f := factory.New(nil)
	r := node.NewRamp(1, 1, nil)
	w := node.NewWorker(2, 1, buffer.FIFO, nil)
	s := node.NewStorehouse(3)

	_ = f.AddRamp(r)
	_ = f.AddWorker(w)
	_ = f.AddStorehouse(s)

	r.Preferences().Add(node.Handle(w))
	w.Preferences().Add(node.Handle(s))

	return f
}

var _ = Describe("Engine", func() {
	var mockCtrl *gomock.Controller

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
	})

	It("refuses to run an inconsistent factory", func() {
		f := factory.New(nil)
		_ = f.AddRamp(node.NewRamp(1, 1, nil)) // no receivers wired

		e := engine.New(nil)
		err := e.Simulate(f, netsim.Time(3), nil)

		Expect(errors.Is(err, netsim.ErrInconsistentTopology)).To(BeTrue())
	})

	It("notifies the observer exactly once per turn, in order", func() {
		f := wiredFactory()
		observer := NewMockObserver(mockCtrl)

		gomock.InOrder(
			observer.EXPECT().Observe(f, netsim.Time(1)),
			observer.EXPECT().Observe(f, netsim.Time(2)),
			observer.EXPECT().Observe(f, netsim.Time(3)),
		)

		e := engine.New(nil)
		Expect(e.Simulate(f, netsim.Time(3), observer)).To(Succeed())
	})

	It("runs without an observer", func() {
		f := wiredFactory()
		e := engine.New(nil)
		Expect(e.Simulate(f, netsim.Time(2), nil)).To(Succeed())
	})

	It("drives a package from ramp to storehouse within the horizon", func() {
		f := wiredFactory()
		e := engine.New(nil)
		Expect(e.Simulate(f, netsim.Time(2), nil)).To(Succeed())

		s, err := f.FindStorehouseByID(3)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Stock()).NotTo(BeEmpty())
	})
})

var _ = Describe("ObserverFunc", func() {
	It("adapts a plain function to the Observer interface", func() {
		f := wiredFactory()
		var gotTurn netsim.Time
		var called bool

		fn := engine.ObserverFunc(func(fac *factory.Factory, t netsim.Time) {
			called = true
			gotTurn = t
		})

		fn.Observe(f, netsim.Time(5))

		Expect(called).To(BeTrue())
		Expect(gotTurn).To(Equal(netsim.Time(5)))
	})
})
