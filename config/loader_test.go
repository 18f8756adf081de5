package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
timetable:
  directory: /var/lib/csa/timetable
  archiveURL: https://example.org/timetable.zip
  cache: false
routing:
  limit: 3
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/csa/timetable", cfg.Timetable.Directory)
	assert.Equal(t, "https://example.org/timetable.zip", cfg.Timetable.ArchiveURL)
	assert.False(t, cfg.Timetable.Cache)
	assert.Equal(t, 3, cfg.Routing.Limit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("timetable:\n  directory: timetable\n"))
	require.NoError(t, err)

	assert.Equal(t, Default("timetable"), cfg)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"missing directory": "routing:\n  limit: 2\n",
		"bad url":           "timetable:\n  directory: t\n  archiveURL: not a url\n",
		"negative limit":    "timetable:\n  directory: t\nrouting:\n  limit: -1\n",
		"unknown level":     "timetable:\n  directory: t\nlog:\n  level: loud\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			var validationErrors validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrors)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("timetable: [directory"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("timetable:\n  directory: data\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.Timetable.Directory)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
