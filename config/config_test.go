package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cartoworks/geolog/core"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := Load()
		require.NoError(t, err)
		require.Equal(t, "INFO", s.LogLevel)
		require.Equal(t, "data/raw/input_data.csv", s.InputData)
		require.Equal(t, "data/processed/output_data.csv", s.OutputData)
		require.Equal(t, "data/logs", s.LogDir)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("GEOLOG_LOG_LEVEL", "DEBUG")
		t.Setenv("GEOLOG_INPUT_DATA", "/srv/raw/contacts.csv")
		s, err := Load()
		require.NoError(t, err)
		require.Equal(t, "DEBUG", s.LogLevel)
		require.Equal(t, "/srv/raw/contacts.csv", s.InputData)
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		t.Setenv("GEOLOG_LOG_LEVEL", "TRACE")
		_, err := Load()
		require.Error(t, err)
		require.ErrorIs(t, err, core.ErrInvalidLevel)
	})

	t.Run("numeric level accepted", func(t *testing.T) {
		t.Setenv("GEOLOG_LOG_LEVEL", "30")
		s, err := Load()
		require.NoError(t, err)
		lvl, err := s.Level()
		require.NoError(t, err)
		require.Equal(t, core.WarningLevel, lvl)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("overlay wins over environment", func(t *testing.T) {
		t.Setenv("GEOLOG_LOG_LEVEL", "DEBUG")

		path := filepath.Join(t.TempDir(), "geolog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: WARNING\nlog_dir: /var/log/geolog\n"), 0o644))

		s, err := LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, "WARNING", s.LogLevel)
		require.Equal(t, "/var/log/geolog", s.LogDir)
		// keys absent from the file keep their environment values
		require.Equal(t, "data/raw/input_data.csv", s.InputData)
	})

	t.Run("empty path skips overlay", func(t *testing.T) {
		s, err := LoadFile("")
		require.NoError(t, err)
		require.Equal(t, "INFO", s.LogLevel)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		require.ErrorIs(t, err, ErrNotValid)
	})

	t.Run("invalid level in file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "geolog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: chatty\n"), 0o644))

		_, err := LoadFile(path)
		require.ErrorIs(t, err, core.ErrInvalidLevel)
	})
}

func TestLogfilePath(t *testing.T) {
	s := &Settings{LogDir: "data/logs"}
	now := time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)
	require.Equal(t, filepath.Join("data", "logs", "make_data_20260824T093000.log"), s.LogfilePath("make_data", now))
}
