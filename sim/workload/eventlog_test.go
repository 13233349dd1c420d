package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linolastella/checkout-sim/sim"
)

const sampleLog = `# opening rush
0 join alice 10
5 join bob 3

7 close 1
9 JOIN carol 0
`

func TestParseEventLog_ValidLog(t *testing.T) {
	// GIVEN a log with comments, blank lines and both verbs
	// WHEN parsed
	records, err := ParseEventLog(strings.NewReader(sampleLog))

	// THEN each event line becomes one record in file order
	require.NoError(t, err)
	want := []sim.EventRecord{
		{Kind: sim.KindArrival, Timestamp: 0, CustomerID: "alice", Items: 10},
		{Kind: sim.KindArrival, Timestamp: 5, CustomerID: "bob", Items: 3},
		{Kind: sim.KindLineClosure, Timestamp: 7, Line: 1},
		{Kind: sim.KindArrival, Timestamp: 9, CustomerID: "carol", Items: 0},
	}
	assert.Equal(t, want, records)
}

func TestParseEventLog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"bad timestamp", "x join a 1", "line 1: invalid timestamp"},
		{"negative timestamp", "0 join a 1\n-4 join b 1", "line 2: invalid timestamp"},
		{"join arity", "3 join a", "line 1: join expects"},
		{"bad items", "3 join a many", "line 1: invalid item count"},
		{"negative items", "3 join a -1", "line 1: invalid item count"},
		{"close arity", "3 close", "line 1: close expects"},
		{"bad line", "3 close -1", "line 1: invalid line index"},
		{"unknown verb", "\n\n3 leave a 1", "line 3: unknown event"},
		{"verb only", "3", "line 1: expected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEventLog(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseEventLog_Empty(t *testing.T) {
	records, err := ParseEventLog(strings.NewReader("# nothing today\n\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadEventLog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o644))

	records, err := LoadEventLog(path)

	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestLoadEventLog_MissingFile(t *testing.T) {
	_, err := LoadEventLog(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
