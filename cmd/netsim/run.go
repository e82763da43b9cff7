package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/engine"
	"github.com/Pmrowka25/zpo-netsim/factory"
	"github.com/Pmrowka25/zpo-netsim/report"
	"github.com/Pmrowka25/zpo-netsim/topo"
	"github.com/syifan/goseth"
)

type runOptions struct {
	input          string
	output         string
	horizon        uint64
	reportMode     string
	reportInterval uint64
	reportTurns    []uint64
	dumpState      bool

	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

// run implements the CLI pipeline: load, report structure, save,
// simulate, report selected turns. It is kept independent of cobra so
// it can be unit tested without going through flag parsing.
func run(opts runOptions) error {
	in, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.input, err)
	}
	defer in.Close()

	f, err := topo.Load(in)
	if err != nil {
		return err
	}
	opts.logger.Printf("netsim: loaded topology from %s", opts.input)

	if err := report.Structural(f, opts.stdout); err != nil {
		return fmt.Errorf("write structural report: %w", err)
	}

	out, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.output, err)
	}
	defer out.Close()
	if err := topo.Save(f, out); err != nil {
		return fmt.Errorf("save topology to %s: %w", opts.output, err)
	}
	opts.logger.Printf("netsim: saved topology to %s", opts.output)

	if opts.dumpState {
		dumpState(f, opts.stderr)
	}

	notifier, err := buildNotifier(opts)
	if err != nil {
		return err
	}

	observer := engine.ObserverFunc(func(fac *factory.Factory, t netsim.Time) {
		if !notifier.ShouldReport(t) {
			return
		}
		if err := report.Turn(fac, t, opts.stdout); err != nil {
			opts.logger.Printf("netsim: write turn %d report: %v", t, err)
		}
	})

	eng := engine.New(opts.logger)
	if err := eng.Simulate(f, netsim.Time(opts.horizon), observer); err != nil {
		return err
	}

	return nil
}

func buildNotifier(opts runOptions) (engine.Notifier, error) {
	switch opts.reportMode {
	case "interval":
		if opts.reportInterval == 0 {
			return nil, fmt.Errorf("--report-interval must be >= 1")
		}
		return engine.NewIntervalNotifier(opts.reportInterval), nil
	case "turns":
		turns := make([]netsim.Time, len(opts.reportTurns))
		for i, t := range opts.reportTurns {
			turns[i] = netsim.Time(t)
		}
		return engine.NewSpecificTurnsNotifier(turns...), nil
	default:
		return nil, fmt.Errorf("unknown --report-mode %q, want interval or turns", opts.reportMode)
	}
}

// dumpState writes a reflective JSON dump of f to w for debugging
// hand-built topologies. It never feeds back into the simulation —
// purely an operator aid.
func dumpState(f *factory.Factory, w io.Writer) {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(f)
	serializer.SetMaxDepth(4)

	if err := serializer.Serialize(w); err != nil {
		fmt.Fprintf(w, "netsim: state dump failed: %v\n", err)
	}
}
