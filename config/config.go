package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/cartoworks/geolog/core"
)

var ErrNotValid = errors.New("configuration not valid")

// Settings holds the scaffold-level knobs of a data-processing script:
// where its data lives, where its logs go, and how chatty it is.
// Values come from the environment, optionally overlaid by a YAML file.
type Settings struct {
	LogLevel   string `env:"GEOLOG_LOG_LEVEL" envDefault:"INFO" yaml:"log_level"`
	InputData  string `env:"GEOLOG_INPUT_DATA" envDefault:"data/raw/input_data.csv" yaml:"input_data"`
	OutputData string `env:"GEOLOG_OUTPUT_DATA" envDefault:"data/processed/output_data.csv" yaml:"output_data"`
	LogDir     string `env:"GEOLOG_LOG_DIR" envDefault:"data/logs" yaml:"log_dir"`
}

// Load reads Settings from the environment, falling back to the
// defaults baked into the struct tags.
func Load() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotValid, err.Error())
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads Settings from the environment and then overlays the
// keys present in the YAML file at path. An empty path skips the
// overlay.
func LoadFile(path string) (*Settings, error) {
	s, err := Load()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotValid, err.Error())
	}
	if err := yaml.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrNotValid, path, err.Error())
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if _, err := core.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("GEOLOG_LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the parsed severity threshold.
func (s *Settings) Level() (core.Level, error) {
	return core.ParseLevel(s.LogLevel)
}

// LogfilePath builds the timestamped logfile path for a script run,
// e.g. data/logs/make_data_20260824T093000.log.
func (s *Settings) LogfilePath(script string, now time.Time) string {
	return filepath.Join(s.LogDir, fmt.Sprintf("%s_%s.log", script, now.Format("20060102T150405")))
}
