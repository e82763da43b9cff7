// Package report formats the two text reports a run produces: the
// structural report (a topology snapshot) and the per-turn report
// (worker and storehouse state at a given turn).
package report

import (
	"fmt"
	"io"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/factory"
	"github.com/Pmrowka25/zpo-netsim/node"
	"github.com/Pmrowka25/zpo-netsim/parcel"
	"github.com/Pmrowka25/zpo-netsim/routing"
)

// Structural writes the structural report for f to w: every ramp,
// worker, and storehouse, each with its configuration and its
// receivers sorted by (kind, id).
func Structural(f *factory.Factory, w io.Writer) error {
	if _, err := fmt.Fprint(w, "== LOADING RAMPS ==\n"); err != nil {
		return err
	}
	for _, r := range f.Ramps() {
		if err := writeRamp(w, r); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\n\n== WORKERS ==\n"); err != nil {
		return err
	}
	for _, wk := range f.Workers() {
		if err := writeWorkerStructure(w, wk); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\n\n== STOREHOUSES ==\n"); err != nil {
		return err
	}
	for _, s := range f.Storehouses() {
		if _, err := fmt.Fprintf(w, "\nSTOREHOUSE #%d\n", s.ID()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\n")
	return err
}

func writeRamp(w io.Writer, r *node.Ramp) error {
	if _, err := fmt.Fprintf(w, "\nLOADING RAMP #%d\n", r.ID()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Delivery interval: %d\n", r.DeliveryInterval()); err != nil {
		return err
	}
	return writeReceivers(w, r.Preferences())
}

func writeWorkerStructure(w io.Writer, wk *node.Worker) error {
	if _, err := fmt.Fprintf(w, "\nWORKER #%d\n", wk.ID()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Processing time: %d\n", wk.ProcessingDuration()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Queue type: %s\n", wk.QueueDiscipline()); err != nil {
		return err
	}
	return writeReceivers(w, wk.Preferences())
}

func writeReceivers(w io.Writer, prefs *routing.Preferences) error {
	if _, err := fmt.Fprint(w, "  Receivers:\n"); err != nil {
		return err
	}
	for _, e := range prefs.Preferences() {
		if _, err := fmt.Fprintf(w, "    %s\n", e.Handle); err != nil {
			return err
		}
	}
	return nil
}

// Turn writes the per-turn report for f at turn t to w: every worker's
// processing-buffer (with its reported processing time), input queue,
// and sending-buffer, followed by every storehouse's stock.
func Turn(f *factory.Factory, t netsim.Time, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "=== [ Turn: %d ] ===\n", t); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "\n== WORKERS ==\n"); err != nil {
		return err
	}
	for _, wk := range f.Workers() {
		if err := writeWorkerTurn(w, wk, t); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\n\n== STOREHOUSES ==\n"); err != nil {
		return err
	}
	for _, s := range f.Storehouses() {
		if err := writeStorehouseTurn(w, s); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "\n")
	return err
}

func writeWorkerTurn(w io.Writer, wk *node.Worker, t netsim.Time) error {
	if _, err := fmt.Fprintf(w, "\nWORKER #%d\n", wk.ID()); err != nil {
		return err
	}

	if p, pt, ok := wk.Processing(t); ok {
		if _, err := fmt.Fprintf(w, "  PBuffer: %s (pt = %d)\n", p, pt); err != nil {
			return err
		}
	} else if _, err := fmt.Fprint(w, "  PBuffer: (empty)\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "  Queue: %s\n", joinPackages(wk.Queue())); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "  SBuffer: "); err != nil {
		return err
	}
	if p, ok := wk.PeekPending(); ok {
		if _, err := fmt.Fprintf(w, "%s\n", p); err != nil {
			return err
		}
	} else if _, err := fmt.Fprint(w, "(empty)\n"); err != nil {
		return err
	}

	return nil
}

func writeStorehouseTurn(w io.Writer, s *node.Storehouse) error {
	if _, err := fmt.Fprintf(w, "\nSTOREHOUSE #%d\n", s.ID()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  Stock: %s\n", joinPackages(s.Stock()))
	return err
}

func joinPackages(pkgs []parcel.Package) string {
	if len(pkgs) == 0 {
		return "(empty)"
	}
	out := make([]byte, 0, len(pkgs)*4)
	for i, p := range pkgs {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = append(out, p.String()...)
	}
	return string(out)
}
