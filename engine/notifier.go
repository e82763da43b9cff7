package engine

import "github.com/Pmrowka25/zpo-netsim"

// Notifier decides, for a given turn, whether a per-turn report should
// be generated. A Notifier is typically wrapped in an ObserverFunc that
// only calls the report formatter when ShouldReport returns true.
type Notifier interface {
	ShouldReport(t netsim.Time) bool
}

// IntervalNotifier reports on turns t where (t-1) mod n == 0 — the same
// cadence formula a LoadingRamp uses for deliveries, reused here for
// report timing.
type IntervalNotifier struct {
	n uint64
}

// NewIntervalNotifier creates an IntervalNotifier. n must be >= 1.
func NewIntervalNotifier(n uint64) *IntervalNotifier {
	if n == 0 {
		panic("netsim: interval notifier period must be >= 1")
	}
	return &IntervalNotifier{n: n}
}

// ShouldReport implements Notifier.
func (in *IntervalNotifier) ShouldReport(t netsim.Time) bool {
	return (uint64(t)-1)%in.n == 0
}

// SpecificTurnsNotifier reports exactly on the turns named at
// construction.
type SpecificTurnsNotifier struct {
	turns map[netsim.Time]bool
}

// NewSpecificTurnsNotifier creates a SpecificTurnsNotifier that fires on
// every turn in turns.
func NewSpecificTurnsNotifier(turns ...netsim.Time) *SpecificTurnsNotifier {
	set := make(map[netsim.Time]bool, len(turns))
	for _, t := range turns {
		set[t] = true
	}
	return &SpecificTurnsNotifier{turns: set}
}

// ShouldReport implements Notifier.
func (sn *SpecificTurnsNotifier) ShouldReport(t netsim.Time) bool {
	return sn.turns[t]
}
