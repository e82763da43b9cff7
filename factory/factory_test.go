package factory_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/buffer"
	"github.com/Pmrowka25/zpo-netsim/factory"
	"github.com/Pmrowka25/zpo-netsim/node"
)

var _ = Describe("Factory", func() {
	var f *factory.Factory

	BeforeEach(func() {
		f = factory.New(nil)
	})

	Describe("registration", func() {
		It("rejects a duplicate ramp id", func() {
			Expect(f.AddRamp(node.NewRamp(1, 1, nil))).To(Succeed())
			err := f.AddRamp(node.NewRamp(1, 1, nil))
			Expect(errors.Is(err, netsim.ErrDuplicateID)).To(BeTrue())
		})

		It("rejects a duplicate worker id", func() {
			Expect(f.AddWorker(node.NewWorker(1, 1, buffer.FIFO, nil))).To(Succeed())
			err := f.AddWorker(node.NewWorker(1, 1, buffer.FIFO, nil))
			Expect(errors.Is(err, netsim.ErrDuplicateID)).To(BeTrue())
		})

		It("rejects a duplicate storehouse id", func() {
			Expect(f.AddStorehouse(node.NewStorehouse(1))).To(Succeed())
			err := f.AddStorehouse(node.NewStorehouse(1))
			Expect(errors.Is(err, netsim.ErrDuplicateID)).To(BeTrue())
		})
	})

	Describe("lookup", func() {
		It("fails with ErrNotFound for an absent id", func() {
			_, err := f.FindWorkerByID(99)
			Expect(errors.Is(err, netsim.ErrNotFound)).To(BeTrue())
		})

		It("returns nodes in ascending id order", func() {
			Expect(f.AddWorker(node.NewWorker(3, 1, buffer.FIFO, nil))).To(Succeed())
			Expect(f.AddWorker(node.NewWorker(1, 1, buffer.FIFO, nil))).To(Succeed())
			Expect(f.AddWorker(node.NewWorker(2, 1, buffer.FIFO, nil))).To(Succeed())

			ids := []netsim.ElementID{}
			for _, w := range f.Workers() {
				ids = append(ids, w.ID())
			}
			Expect(ids).To(Equal([]netsim.ElementID{1, 2, 3}))
		})
	})

	Describe("removal sweeps dangling preferences", func() {
		It("removes a worker from every sender's preferences", func() {
			r := node.NewRamp(1, 1, nil)
			w := node.NewWorker(2, 1, buffer.FIFO, nil)
			Expect(f.AddRamp(r)).To(Succeed())
			Expect(f.AddWorker(w)).To(Succeed())
			r.Preferences().Add(node.Handle(w))

			Expect(f.RemoveWorkerByID(2)).To(Succeed())

			Expect(r.Preferences().Len()).To(Equal(0))
		})

		It("removes a storehouse from every sender's preferences", func() {
			w := node.NewWorker(1, 1, buffer.FIFO, nil)
			s := node.NewStorehouse(2)
			Expect(f.AddWorker(w)).To(Succeed())
			Expect(f.AddStorehouse(s)).To(Succeed())
			w.Preferences().Add(node.Handle(s))

			Expect(f.RemoveStorehouseByID(2)).To(Succeed())

			Expect(w.Preferences().Len()).To(Equal(0))
		})
	})

	Describe("turn phases", func() {
		It("carries a package from a ramp through a worker into a storehouse", func() {
			r := node.NewRamp(1, 1, nil)
			w := node.NewWorker(2, 1, buffer.FIFO, nil)
			s := node.NewStorehouse(3)
			Expect(f.AddRamp(r)).To(Succeed())
			Expect(f.AddWorker(w)).To(Succeed())
			Expect(f.AddStorehouse(s)).To(Succeed())
			r.Preferences().Add(node.Handle(w))
			w.Preferences().Add(node.Handle(s))

			f.DoDeliveries(netsim.Time(1))
			f.DoPackagePassing()
			f.DoWork(netsim.Time(1))

			Expect(w.Queue()).To(BeEmpty())
			Expect(w.HasPending()).To(BeTrue())

			f.DoDeliveries(netsim.Time(2))
			f.DoPackagePassing()
			f.DoWork(netsim.Time(2))

			Expect(s.Stock()).To(HaveLen(1))
		})

		It("leaves a package buffered when the sender has no receivers", func() {
			r := node.NewRamp(1, 1, nil)
			Expect(f.AddRamp(r)).To(Succeed())

			f.DoDeliveries(netsim.Time(1))
			f.DoPackagePassing()

			Expect(r.HasPending()).To(BeTrue())
		})
	})

	Describe("IsConsistent", func() {
		It("is false when a ramp has no receivers", func() {
			Expect(f.AddRamp(node.NewRamp(1, 1, nil))).To(Succeed())
			Expect(f.IsConsistent()).To(BeFalse())
		})

		It("is false when a worker cannot reach any storehouse", func() {
			r := node.NewRamp(1, 1, nil)
			w := node.NewWorker(2, 1, buffer.FIFO, nil)
			Expect(f.AddRamp(r)).To(Succeed())
			Expect(f.AddWorker(w)).To(Succeed())
			r.Preferences().Add(node.Handle(w))
			w.Preferences().Add(node.Handle(w)) // self-loop, never reaches a storehouse

			Expect(f.IsConsistent()).To(BeFalse())
		})

		It("is false when a worker is unreachable from every ramp", func() {
			w := node.NewWorker(1, 1, buffer.FIFO, nil)
			s := node.NewStorehouse(2)
			Expect(f.AddWorker(w)).To(Succeed())
			Expect(f.AddStorehouse(s)).To(Succeed())
			w.Preferences().Add(node.Handle(s))

			Expect(f.IsConsistent()).To(BeFalse())
		})

		It("is true for a fully wired ramp -> worker -> storehouse chain", func() {
			r := node.NewRamp(1, 1, nil)
			w := node.NewWorker(2, 1, buffer.FIFO, nil)
			s := node.NewStorehouse(3)
			Expect(f.AddRamp(r)).To(Succeed())
			Expect(f.AddWorker(w)).To(Succeed())
			Expect(f.AddStorehouse(s)).To(Succeed())
			r.Preferences().Add(node.Handle(w))
			w.Preferences().Add(node.Handle(s))

			Expect(f.IsConsistent()).To(BeTrue())
		})
	})

	Describe("Resolve", func() {
		It("resolves a worker handle", func() {
			w := node.NewWorker(1, 1, buffer.FIFO, nil)
			Expect(f.AddWorker(w)).To(Succeed())

			resolved, ok := f.Resolve(node.Handle(w))
			Expect(ok).To(BeTrue())
			Expect(resolved).To(BeIdenticalTo(node.Receiver(w)))
		})

		It("fails to resolve a ramp handle, since ramps are never receivers", func() {
			_, ok := f.Resolve(netsim.ReceiverHandle{Kind: netsim.KindRamp, ID: 1})
			Expect(ok).To(BeFalse())
		})
	})
})
