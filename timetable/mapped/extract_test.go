package mapped

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archive(t *testing.T, names ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range names {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	parent := t.TempDir()
	directory := filepath.Join(parent, "timetable")

	err := extract(archive(t, append(requiredFiles, "../evil.txt")...), directory)
	assert.ErrorContains(t, err, "escapes")

	_, statErr := os.Stat(filepath.Join(parent, "evil.txt"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestExtractWritesNestedEntries(t *testing.T) {
	directory := t.TempDir()

	require.NoError(t, extract(archive(t, append(requiredFiles, "2025-03-18/trips.bin")...), directory))

	data, err := os.ReadFile(filepath.Join(directory, "2025-03-18", "trips.bin"))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-18/trips.bin", string(data))
}
