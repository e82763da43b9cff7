package topo

import (
	"fmt"
	"io"
	"sort"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/factory"
	"github.com/Pmrowka25/zpo-netsim/node"
)

// Save writes f's topology to w: LOADING_RAMP, WORKER, STOREHOUSE, then
// LINK, each block sorted by id (links by source tag/id then
// destination tag/id).
func Save(f *factory.Factory, w io.Writer) error {
	for _, r := range f.Ramps() {
		if _, err := fmt.Fprintf(
			w, "LOADING_RAMP id=%d delivery-interval=%d\n",
			r.ID(), r.DeliveryInterval(),
		); err != nil {
			return err
		}
	}

	for _, wk := range f.Workers() {
		if _, err := fmt.Fprintf(
			w, "WORKER id=%d processing-time=%d queue-type=%s\n",
			wk.ID(), wk.ProcessingDuration(), wk.QueueDiscipline(),
		); err != nil {
			return err
		}
	}

	for _, s := range f.Storehouses() {
		if _, err := fmt.Fprintf(w, "STOREHOUSE id=%d\n", s.ID()); err != nil {
			return err
		}
	}

	for _, link := range links(f) {
		if _, err := fmt.Fprintf(
			w, "LINK src=%s-%d dest=%s-%d\n",
			link.srcTag, link.srcID, link.dstTag, link.dstID,
		); err != nil {
			return err
		}
	}

	return nil
}

type link struct {
	srcTag string
	srcID  netsim.ElementID
	dstTag string
	dstID  netsim.ElementID
}

func links(f *factory.Factory) []link {
	var out []link

	collect := func(kind netsim.NodeKind, id netsim.ElementID, sender node.Sender) {
		for _, e := range sender.Preferences().Preferences() {
			out = append(out, link{
				srcTag: kind.Tag(),
				srcID:  id,
				dstTag: e.Handle.Kind.Tag(),
				dstID:  e.Handle.ID,
			})
		}
	}

	for _, r := range f.Ramps() {
		collect(netsim.KindRamp, r.ID(), r)
	}
	for _, wk := range f.Workers() {
		collect(netsim.KindWorker, wk.ID(), wk)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.srcTag != b.srcTag {
			return a.srcTag < b.srcTag
		}
		if a.srcID != b.srcID {
			return a.srcID < b.srcID
		}
		if a.dstTag != b.dstTag {
			return a.dstTag < b.dstTag
		}
		return a.dstID < b.dstID
	})

	return out
}
