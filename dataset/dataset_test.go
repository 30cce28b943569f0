package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabulab/cellstate/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "Name,Date,Value\nalice,2020-01-02,10\nbob,2020-02-03,20\n")

	d, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Date", "Value"}, d.Columns())
	assert.Equal(t, 2, d.RowCount())
	assert.Equal(t, 3, d.ColumnCount())
	assert.Equal(t, "bob", d.Value(1, 0))
	assert.Equal(t, "10", d.Value(0, 2))
}

func TestLoadCSVRaggedRows(t *testing.T) {
	path := writeCSV(t, "A,B,C\n1,2\n1,2,3\n")

	d, err := LoadCSV(path)
	require.NoError(t, err)

	// Short rows are padded so Value stays total.
	assert.Equal(t, "", d.Value(0, 2))
	assert.Equal(t, "3", d.Value(1, 2))
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeDatasetNotFound))
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeDatasetParse))
}

func TestValueOutOfRange(t *testing.T) {
	d := New([]string{"A"}, [][]string{{"x"}})
	assert.Equal(t, "", d.Value(-1, 0))
	assert.Equal(t, "", d.Value(0, 5))
	assert.Nil(t, d.Row(7))
}

func TestWatcherSeesRewrite(t *testing.T) {
	path := writeCSV(t, "A\n1\n")

	changed := make(chan struct{}, 8)
	w, err := Watch(path, func() { changed <- struct{}{} })
	require.NoError(t, err)
	defer w.Close()

	// Give the watcher a moment to establish before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("A\n2\n"), 0644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the rewrite")
	}
}
