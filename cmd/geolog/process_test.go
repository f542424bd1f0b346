package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartoworks/geolog/config"
	"github.com/cartoworks/geolog/logger"
)

func TestRunProcess(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "raw", "input_data.csv")
	output := filepath.Join(dir, "processed", "output_data.csv")

	require.NoError(t, os.MkdirAll(filepath.Dir(input), 0o755))
	require.NoError(t, os.WriteFile(input, []byte("name,longitude,latitude\nada,13.4,52.5\ngrace,-71.1,42.4\n"), 0o644))

	settings := &config.Settings{InputData: input, OutputData: output}
	logPath := filepath.Join(dir, "logs", "process.log")

	reg := logger.NewRegistry()
	log, err := reg.Get("process", logger.Config{
		Level:       "DEBUG",
		LogfilePath: logPath,
		NoConsole:   true,
	})
	require.NoError(t, err)

	require.NoError(t, runProcess(log, settings))
	require.NoError(t, log.Close())

	copied, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(copied), "ada,13.4,52.5")

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(logged), "successfully processed 2 rows")
	// tabular preview lands in the log, indented under its title
	require.Contains(t, string(logged), "Input preview:")
	require.Contains(t, string(logged), "\t\t")
}

func TestRunProcess_MissingInput(t *testing.T) {
	dir := t.TempDir()
	settings := &config.Settings{
		InputData:  filepath.Join(dir, "absent.csv"),
		OutputData: filepath.Join(dir, "out.csv"),
	}

	reg := logger.NewRegistry()
	log, err := reg.Get("process", logger.Config{NoConsole: true})
	require.NoError(t, err)

	err = runProcess(log, settings)
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestLoadSettings_FlagOverride(t *testing.T) {
	t.Setenv("GEOLOG_LOG_LEVEL", "INFO")

	flag := &rootFlags{logLevel: "WARNING"}
	settings, err := flag.loadSettings()
	require.NoError(t, err)
	require.Equal(t, "WARNING", settings.LogLevel)

	flag = &rootFlags{logLevel: "chatty"}
	_, err = flag.loadSettings()
	require.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"bogus"})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	require.Error(t, cmd.Execute())
}
