package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry(input string) Entry {
	return Entry{
		Timestamp: time.Date(2022, 4, 6, 9, 30, 0, 0, time.UTC),
		Input:     input,
		Output:    "20220406-093000_" + input + "_out.txt",
		Rows:      120,
		Lines:     118,
		Skipped:   2,
		Status:    "ok",
	}
}

func TestMarshalRoundtrip(t *testing.T) {
	e := sampleEntry("sample.xlsx")

	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"too", "short"})
	assert.Error(t, err)

	row := MarshalEntry(sampleEntry("a.xlsx"))
	row[colTimestamp] = "not-a-time"
	_, err = UnmarshalEntry(row)
	assert.Error(t, err)

	row = MarshalEntry(sampleEntry("a.xlsx"))
	row[colRows] = "many"
	_, err = UnmarshalEntry(row)
	assert.Error(t, err)
}

func TestAppendRead(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, Append(root, []Entry{sampleEntry("a.xlsx")}))
	require.NoError(t, Append(root, []Entry{sampleEntry("b.xlsx"), sampleEntry("c.xlsx")}))

	entries, err := Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a.xlsx", entries[0].Input)
	assert.Equal(t, "c.xlsx", entries[2].Input)

	data, err := os.ReadFile(filepath.Join(root, "logs", "run-log.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4, "one header plus three entries")
	assert.Equal(t, Header, strings.TrimSpace(lines[0]))
}

func TestRead_NoLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
