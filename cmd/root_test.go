package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, eventsPath, schedulePath = "config.yaml", "", ""
	logLevel, traceLevel, strict = "warn", "none", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_EventLog_PrintsStats(t *testing.T) {
	// GIVEN one cashier and a single customer with 10 items
	cfg := writeFile(t, "store.yaml", "cashier_count: 1\nline_capacity: 5\n")
	events := writeFile(t, "events.txt", "0 join A 10\n")

	// WHEN the run command executes
	out, err := execute(t, "run", "--config", cfg, "--events", events)

	// THEN the stats are printed
	require.NoError(t, err)
	assert.Contains(t, out, "=== Simulation Stats ===")
	assert.Contains(t, out, "Customers            : 1")
	assert.Contains(t, out, "Total Time           : 17")
	assert.Contains(t, out, "Max Wait             : 17")
	assert.Contains(t, out, "=== Checkout Lines ===")
	assert.NotContains(t, out, "=== Decision Trace ===")
}

func TestRun_TraceAndClosure(t *testing.T) {
	cfg := writeFile(t, "store.json", `{"cashier_count": 2, "express_count": 0, "self_serve_count": 0, "line_capacity": 5}`)
	events := writeFile(t, "events.txt", "0 join a 3\n0 join b 3\n1 join c 1\n2 close 0\n")

	out, err := execute(t, "run", "-c", cfg, "-e", events, "--trace-level", "decisions")

	require.NoError(t, err)
	assert.Contains(t, out, "Max Wait             : 27")
	assert.Contains(t, out, "closed@2")
	assert.Contains(t, out, "=== Decision Trace ===")
	assert.Contains(t, out, "Closures             : 1 (2 customers displaced)")
}

func TestRun_StrandedCustomer_StrictFails(t *testing.T) {
	// GIVEN an express-only store and a basket that is too big
	cfg := writeFile(t, "store.yaml", "express_count: 1\nline_capacity: 1\n")
	events := writeFile(t, "events.txt", "5 join B 9\n")

	// WHEN run without --strict, the report is printed and the command succeeds
	out, err := execute(t, "run", "-c", cfg, "-e", events)
	require.NoError(t, err)
	assert.Contains(t, out, "n/a (no customer finished)")
	assert.Contains(t, out, "=== Unresolved Customers ===")

	// AND with --strict the command fails
	_, err = execute(t, "run", "-c", cfg, "-e", events, "--strict")
	assert.Error(t, err)
}

func TestRun_Schedule(t *testing.T) {
	cfg := writeFile(t, "store.yaml", "cashier_count: 1\nexpress_count: 1\nline_capacity: 5\n")
	schedule := writeFile(t, "schedule.yaml", `
opening: "09:00"
arrivals:
  - name: early
    cron: "*/20 9 * * *"
    items: [3, 12]
closures:
  - cron: "30 9 * * *"
    line: 1
`)

	out, err := execute(t, "run", "-c", cfg, "--schedule", schedule)

	require.NoError(t, err)
	assert.Contains(t, out, "Customers            : 3")
	assert.Contains(t, out, "Total Time           : 50")
}

func TestRun_InputErrors(t *testing.T) {
	cfg := writeFile(t, "store.yaml", "cashier_count: 1\nline_capacity: 5\n")
	events := writeFile(t, "events.txt", "0 join A 1\n")
	badEvents := writeFile(t, "bad.txt", "0 close 4\n")

	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"run", "-c", cfg}},
		{"both inputs", []string{"run", "-c", cfg, "-e", events, "--schedule", events}},
		{"bad log level", []string{"run", "-c", cfg, "-e", events, "--log", "loud"}},
		{"bad trace level", []string{"run", "-c", cfg, "-e", events, "--trace-level", "all"}},
		{"unknown line", []string{"run", "-c", cfg, "-e", badEvents}},
		{"missing config", []string{"run", "-c", cfg + ".missing", "-e", events}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
