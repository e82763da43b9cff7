package netsim

import "errors"

// Error kinds NetSim raises. Each is a sentinel: callers compare with
// errors.Is, and every function that raises one wraps it with
// fmt.Errorf("%w: ...") to attach the detail that made it fire.
var (
	// ErrParse is returned by the topology loader on any malformed or
	// out-of-order directive. Fatal to the load that raised it.
	ErrParse = errors.New("netsim: parse error")

	// ErrDuplicateID is returned by a Factory mutator asked to add a
	// node whose id already exists within that node kind.
	ErrDuplicateID = errors.New("netsim: duplicate id")

	// ErrNotFound is returned by a Factory lookup that found nothing.
	ErrNotFound = errors.New("netsim: not found")

	// ErrEmptyBuffer is returned by PackageBuffer.Pop on an empty
	// buffer. Encountering it during a turn indicates a bug in the
	// phase that called Pop without checking Size first.
	ErrEmptyBuffer = errors.New("netsim: empty buffer")

	// ErrNoReceiver is returned by ReceiverPreferences.Choose when the
	// preference set is empty.
	ErrNoReceiver = errors.New("netsim: no receiver")

	// ErrInconsistentTopology is returned by Simulate when the Factory
	// fails its structural consistency check before turn 1 runs.
	ErrInconsistentTopology = errors.New("netsim: inconsistent topology")
)
