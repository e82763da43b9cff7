// Command netsim is a batch CLI: it loads a topology from
// factory_structure.txt in the working directory, emits a structural
// report and a saved copy of the topology, runs a bounded simulation,
// and writes per-turn reports according to a notifier.
package main

func main() {
	Execute()
}
