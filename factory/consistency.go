package factory

import (
	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/routing"
)

// IsConsistent reports whether the factory's topology satisfies four
// structural rules:
//
//  1. Every LoadingRamp has >= 1 receiver.
//  2. Every Worker has >= 1 receiver.
//  3. Every Worker is reachable from at least one LoadingRamp through
//     the receiver graph.
//  4. Every Worker can reach at least one Storehouse through the
//     receiver graph.
//
// Rules 3 and 4 are checked with a forward reachability sweep from
// every ramp and a backward sweep from every storehouse.
func (f *Factory) IsConsistent() bool {
	for _, r := range f.Ramps() {
		if r.Preferences().Len() == 0 {
			return false
		}
	}
	for _, w := range f.Workers() {
		if w.Preferences().Len() == 0 {
			return false
		}
	}

	reachableFromRamp := f.forwardReachable(f.rampRefs())
	for _, w := range f.Workers() {
		if !reachableFromRamp[workerRef(w.ID())] {
			return false
		}
	}

	canReachStorehouse := f.backwardReachable(f.storehouseRefs())
	for _, w := range f.Workers() {
		if !canReachStorehouse[workerRef(w.ID())] {
			return false
		}
	}

	return true
}

// ref is a generic (kind, id) node reference used internally for graph
// traversal. It reuses netsim.ReceiverHandle's shape even for ramps,
// which are never receivers, because the sweep has to start walking
// from them too.
type ref = netsim.ReceiverHandle

func rampRef(id netsim.ElementID) ref       { return ref{Kind: netsim.KindRamp, ID: id} }
func workerRef(id netsim.ElementID) ref     { return ref{Kind: netsim.KindWorker, ID: id} }
func storehouseRef(id netsim.ElementID) ref { return ref{Kind: netsim.KindStorehouse, ID: id} }

func (f *Factory) rampRefs() []ref {
	out := make([]ref, 0, len(f.ramps))
	for id := range f.ramps {
		out = append(out, rampRef(id))
	}
	return out
}

func (f *Factory) storehouseRefs() []ref {
	out := make([]ref, 0, len(f.storehouses))
	for id := range f.storehouses {
		out = append(out, storehouseRef(id))
	}
	return out
}

// outEdges returns the receivers that node r's own preferences name.
// Storehouses have no preferences and thus no outgoing edges.
func (f *Factory) outEdges(r ref) []ref {
	switch r.Kind {
	case netsim.KindRamp:
		ramp, ok := f.ramps[r.ID]
		if !ok {
			return nil
		}
		return prefRefs(ramp.Preferences().Preferences())
	case netsim.KindWorker:
		w, ok := f.workers[r.ID]
		if !ok {
			return nil
		}
		return prefRefs(w.Preferences().Preferences())
	default:
		return nil
	}
}

func prefRefs(entries []routing.Entry) []ref {
	out := make([]ref, len(entries))
	for i, e := range entries {
		out[i] = e.Handle
	}
	return out
}

// forwardReachable returns every node reachable from any of the given
// starting points by following outgoing edges (sender -> receiver).
func (f *Factory) forwardReachable(starts []ref) map[ref]bool {
	visited := make(map[ref]bool)
	queue := append([]ref(nil), starts...)
	for _, s := range starts {
		visited[s] = true
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range f.outEdges(cur) {
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return visited
}

// backwardReachable returns every node that can reach one of the given
// targets, by following edges in reverse (receiver <- sender).
func (f *Factory) backwardReachable(targets []ref) map[ref]bool {
	// Build the reverse adjacency once: for every sender, record an
	// edge from each of its receivers back to it.
	reverse := make(map[ref][]ref)
	for id := range f.ramps {
		from := rampRef(id)
		for _, to := range f.outEdges(from) {
			reverse[to] = append(reverse[to], from)
		}
	}
	for id := range f.workers {
		from := workerRef(id)
		for _, to := range f.outEdges(from) {
			reverse[to] = append(reverse[to], from)
		}
	}

	visited := make(map[ref]bool)
	queue := append([]ref(nil), targets...)
	for _, t := range targets {
		visited[t] = true
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, prev := range reverse[cur] {
			if visited[prev] {
				continue
			}
			visited[prev] = true
			queue = append(queue, prev)
		}
	}

	return visited
}
