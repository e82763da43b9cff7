// Package topo implements the topology text format: the on-disk
// representation an analyst edits by hand and the CLI loads from and
// saves back to. Parsing fails the whole load on the first bad line,
// reporting the offending line number, rather than collecting every
// error.
package topo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Pmrowka25/zpo-netsim"
	"github.com/Pmrowka25/zpo-netsim/buffer"
	"github.com/Pmrowka25/zpo-netsim/factory"
	"github.com/Pmrowka25/zpo-netsim/node"
)

// Load parses a topology text stream into a new Factory.
func Load(r io.Reader) (*factory.Factory, error) {
	f := factory.New(nil)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	sawLink := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		fields := strings.Fields(line)
		directive := fields[0]
		args, err := parseArgs(fields[1:])
		if err != nil {
			return nil, parseErr(lineNo, "%v", err)
		}

		if directive == "LINK" {
			sawLink = true
			if err := applyLink(f, args); err != nil {
				return nil, parseErr(lineNo, "%v", err)
			}
			continue
		}

		if sawLink {
			return nil, parseErr(lineNo, "declaration %q after a LINK directive", directive)
		}

		switch directive {
		case "LOADING_RAMP":
			if err := applyRamp(f, args); err != nil {
				return nil, parseErr(lineNo, "%v", err)
			}
		case "WORKER":
			if err := applyWorker(f, args); err != nil {
				return nil, parseErr(lineNo, "%v", err)
			}
		case "STOREHOUSE":
			if err := applyStorehouse(f, args); err != nil {
				return nil, parseErr(lineNo, "%v", err)
			}
		default:
			return nil, parseErr(lineNo, "unknown directive %q", directive)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", netsim.ErrParse, err)
	}

	return f, nil
}

func parseErr(lineNo int, format string, a ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", netsim.ErrParse, lineNo, fmt.Sprintf(format, a...))
}

// parseArgs splits "key=value" tokens into a map. A malformed token
// (no '=') is a parse error at the call site's line.
func parseArgs(fields []string) (map[string]string, error) {
	out := make(map[string]string, len(fields))
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("malformed argument %q", field)
		}
		out[key] = value
	}
	return out, nil
}

func requireArg(args map[string]string, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing %q argument", key)
	}
	return v, nil
}

func parseUint(args map[string]string, key string) (uint64, error) {
	v, err := requireArg(args, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q must be a non-negative integer, got %q", key, v)
	}
	return n, nil
}

func applyRamp(f *factory.Factory, args map[string]string) error {
	id, err := parseUint(args, "id")
	if err != nil {
		return err
	}
	interval, err := parseUint(args, "delivery-interval")
	if err != nil {
		return err
	}
	if interval == 0 {
		return fmt.Errorf("delivery-interval must be >= 1")
	}

	r := node.NewRamp(netsim.ElementID(id), interval, nil)
	if err := f.AddRamp(r); err != nil {
		return err
	}
	return nil
}

func applyWorker(f *factory.Factory, args map[string]string) error {
	id, err := parseUint(args, "id")
	if err != nil {
		return err
	}
	duration, err := parseUint(args, "processing-time")
	if err != nil {
		return err
	}
	if duration == 0 {
		return fmt.Errorf("processing-time must be >= 1")
	}

	queueType, err := requireArg(args, "queue-type")
	if err != nil {
		return err
	}

	var discipline buffer.Discipline
	switch queueType {
	case "FIFO":
		discipline = buffer.FIFO
	case "LIFO":
		discipline = buffer.LIFO
	default:
		return fmt.Errorf("queue-type must be FIFO or LIFO, got %q", queueType)
	}

	w := node.NewWorker(netsim.ElementID(id), duration, discipline, nil)
	if err := f.AddWorker(w); err != nil {
		return err
	}
	return nil
}

func applyStorehouse(f *factory.Factory, args map[string]string) error {
	id, err := parseUint(args, "id")
	if err != nil {
		return err
	}

	s := node.NewStorehouse(netsim.ElementID(id))
	if err := f.AddStorehouse(s); err != nil {
		return err
	}
	return nil
}

func applyLink(f *factory.Factory, args map[string]string) error {
	src, err := requireArg(args, "src")
	if err != nil {
		return err
	}
	dst, err := requireArg(args, "dest")
	if err != nil {
		return err
	}

	srcKind, srcID, err := parseTagged(src)
	if err != nil {
		return fmt.Errorf("src: %v", err)
	}
	dstKind, dstID, err := parseTagged(dst)
	if err != nil {
		return fmt.Errorf("dest: %v", err)
	}

	if srcKind == netsim.KindStorehouse {
		return fmt.Errorf("link source cannot be a storehouse: %s", src)
	}
	if dstKind == netsim.KindRamp {
		return fmt.Errorf("link destination cannot be a loading ramp: %s", dst)
	}

	sender, err := findSender(f, srcKind, srcID)
	if err != nil {
		return err
	}

	if _, ok := f.Resolve(netsim.ReceiverHandle{Kind: dstKind, ID: dstID}); !ok {
		return fmt.Errorf("link destination %s is not a previously declared node", dst)
	}

	sender.Preferences().Add(netsim.ReceiverHandle{Kind: dstKind, ID: dstID})
	return nil
}

func findSender(f *factory.Factory, kind netsim.NodeKind, id netsim.ElementID) (node.Sender, error) {
	switch kind {
	case netsim.KindRamp:
		r, err := f.FindRampByID(id)
		if err != nil {
			return nil, fmt.Errorf("link source %s-%d is not a previously declared node", kind.Tag(), id)
		}
		return r, nil
	case netsim.KindWorker:
		w, err := f.FindWorkerByID(id)
		if err != nil {
			return nil, fmt.Errorf("link source %s-%d is not a previously declared node", kind.Tag(), id)
		}
		return w, nil
	default:
		return nil, fmt.Errorf("link source %s-%d cannot be a sender", kind.Tag(), id)
	}
}

// parseTagged splits a "<tag>-<n>" token such as "worker-3".
func parseTagged(token string) (netsim.NodeKind, netsim.ElementID, error) {
	tag, idStr, ok := strings.Cut(token, "-")
	if !ok {
		return 0, 0, fmt.Errorf("malformed node reference %q", token)
	}

	kind, ok := netsim.ParseTag(tag)
	if !ok {
		return 0, 0, fmt.Errorf("unknown node kind %q in %q", tag, token)
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed node id in %q", token)
	}

	return kind, netsim.ElementID(id), nil
}
