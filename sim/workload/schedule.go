package workload

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/linolastella/checkout-sim/sim"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ScheduleSpec describes a store day as cron-driven arrival streams and line
// closures. Generated timestamps are minutes since Opening.
// Loaded from YAML via LoadScheduleSpec(path).
type ScheduleSpec struct {
	Date     string          `yaml:"date"`    // day to expand, YYYY-MM-DD; matters for day-of-week fields
	Opening  string          `yaml:"opening"` // HH:MM; firings before opening are ignored
	Arrivals []ArrivalStream `yaml:"arrivals"`
	Closures []ClosureSpec   `yaml:"closures,omitempty"`
}

// ArrivalStream emits one customer per cron firing. Item counts are taken
// from Items in order, wrapping around.
type ArrivalStream struct {
	Name  string `yaml:"name"` // customer ID prefix
	Cron  string `yaml:"cron"`
	Items []int  `yaml:"items"`
}

// ClosureSpec closes Line at the first firing of Cron on or after opening.
type ClosureSpec struct {
	Cron string `yaml:"cron"`
	Line int    `yaml:"line"`
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// LoadScheduleSpec reads and parses a YAML schedule specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScheduleSpec(path string) (*ScheduleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule spec: %w", err)
	}
	var spec ScheduleSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing schedule spec: %w", err)
	}
	return &spec, nil
}

// Validate checks stream names, item lists and cron expressions.
func (s *ScheduleSpec) Validate() error {
	if _, _, err := s.window(); err != nil {
		return err
	}
	if len(s.Arrivals) == 0 {
		return fmt.Errorf("at least one arrival stream required")
	}
	names := make(map[string]bool, len(s.Arrivals))
	for i, a := range s.Arrivals {
		prefix := fmt.Sprintf("arrivals[%d]", i)
		if a.Name == "" {
			return fmt.Errorf("%s: name is required", prefix)
		}
		if names[a.Name] {
			return fmt.Errorf("%s: duplicate stream name %q", prefix, a.Name)
		}
		names[a.Name] = true
		if len(a.Items) == 0 {
			return fmt.Errorf("%s: items must list at least one count", prefix)
		}
		for _, n := range a.Items {
			if n < 0 {
				return fmt.Errorf("%s: item count must be >= 0, got %d", prefix, n)
			}
		}
		if _, err := cronParser.Parse(a.Cron); err != nil {
			return fmt.Errorf("%s: invalid cron %q: %w", prefix, a.Cron, err)
		}
	}
	for i, c := range s.Closures {
		prefix := fmt.Sprintf("closures[%d]", i)
		if c.Line < 0 {
			return fmt.Errorf("%s: line must be >= 0, got %d", prefix, c.Line)
		}
		if _, err := cronParser.Parse(c.Cron); err != nil {
			return fmt.Errorf("%s: invalid cron %q: %w", prefix, c.Cron, err)
		}
	}
	return nil
}

// window returns the opening instant and the end of the day.
func (s *ScheduleSpec) window() (time.Time, time.Time, error) {
	day := time.Date(2015, time.October, 15, 0, 0, 0, 0, time.UTC)
	if s.Date != "" {
		d, err := time.ParseInLocation(dateLayout, s.Date, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q; want YYYY-MM-DD", s.Date)
		}
		day = d
	}
	opening := day
	if s.Opening != "" {
		t, err := time.ParseInLocation(clockLayout, s.Opening, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid opening %q; want HH:MM", s.Opening)
		}
		opening = day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}
	return opening, day.AddDate(0, 0, 1), nil
}

// Generate expands the spec into event records sorted by timestamp. Records
// sharing a timestamp keep stream order, so output is deterministic.
func Generate(spec *ScheduleSpec) ([]sim.EventRecord, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	opening, end, _ := spec.window()

	var records []sim.EventRecord
	for _, a := range spec.Arrivals {
		schedule, _ := cronParser.Parse(a.Cron)
		n := 0
		for _, at := range firings(schedule, opening, end) {
			records = append(records, sim.EventRecord{
				Kind:       sim.KindArrival,
				Timestamp:  minutesSince(opening, at),
				CustomerID: fmt.Sprintf("%s-%d", a.Name, n),
				Items:      a.Items[n%len(a.Items)],
			})
			n++
		}
		logrus.Debugf("stream %s: %d arrivals", a.Name, n)
	}
	for _, c := range spec.Closures {
		schedule, _ := cronParser.Parse(c.Cron)
		next := schedule.Next(opening.Add(-time.Second))
		if next.IsZero() || !next.Before(end) {
			logrus.Warnf("closure of line %d (%q) never fires on %s", c.Line, c.Cron, opening.Format(dateLayout))
			continue
		}
		records = append(records, sim.EventRecord{
			Kind:      sim.KindLineClosure,
			Timestamp: minutesSince(opening, next),
			Line:      c.Line,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
	return records, nil
}

// firings lists every activation of schedule in [from, to).
func firings(schedule cron.Schedule, from, to time.Time) []time.Time {
	var out []time.Time
	for t := schedule.Next(from.Add(-time.Second)); !t.IsZero() && t.Before(to); t = schedule.Next(t) {
		out = append(out, t)
	}
	return out
}

func minutesSince(opening, t time.Time) int64 {
	return int64(t.Sub(opening) / time.Minute)
}
