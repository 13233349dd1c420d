// Package workload produces the event records a simulation is seeded with:
// either parsed from a line-oriented event log or generated from cron
// schedules over a single store day.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/linolastella/checkout-sim/sim"
)

// Event log verbs.
const (
	verbJoin  = "join"
	verbClose = "close"
)

// LoadEventLog reads and parses an event log file.
func LoadEventLog(path string) ([]sim.EventRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading event log: %w", err)
	}
	defer f.Close()
	records, err := ParseEventLog(f)
	if err != nil {
		return nil, fmt.Errorf("parsing event log %s: %w", path, err)
	}
	return records, nil
}

// ParseEventLog parses one event per line:
//
//	<timestamp> join <customer-id> <items>
//	<timestamp> close <line-index>
//
// Blank lines and lines starting with '#' are skipped.
func ParseEventLog(r io.Reader) ([]sim.EventRecord, error) {
	var records []sim.EventRecord
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rec, err := parseEventLine(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseEventLine(fields []string) (sim.EventRecord, error) {
	if len(fields) < 2 {
		return sim.EventRecord{}, fmt.Errorf("expected '<timestamp> <verb> ...', got %q", strings.Join(fields, " "))
	}
	ts, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || ts < 0 {
		return sim.EventRecord{}, fmt.Errorf("invalid timestamp %q", fields[0])
	}

	switch verb := strings.ToLower(fields[1]); verb {
	case verbJoin:
		if len(fields) != 4 {
			return sim.EventRecord{}, fmt.Errorf("join expects '<timestamp> join <customer-id> <items>'")
		}
		items, err := strconv.Atoi(fields[3])
		if err != nil || items < 0 {
			return sim.EventRecord{}, fmt.Errorf("invalid item count %q", fields[3])
		}
		return sim.EventRecord{Kind: sim.KindArrival, Timestamp: ts, CustomerID: fields[2], Items: items}, nil
	case verbClose:
		if len(fields) != 3 {
			return sim.EventRecord{}, fmt.Errorf("close expects '<timestamp> close <line-index>'")
		}
		line, err := strconv.Atoi(fields[2])
		if err != nil || line < 0 {
			return sim.EventRecord{}, fmt.Errorf("invalid line index %q", fields[2])
		}
		return sim.EventRecord{Kind: sim.KindLineClosure, Timestamp: ts, Line: line}, nil
	default:
		return sim.EventRecord{}, fmt.Errorf("unknown event %q; valid: join, close", fields[1])
	}
}
