// Package config loads taskboard settings from a YAML file, falling back to
// defaults for anything the file leaves out.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"github.com/td0m/taskboard/pkg/report"
	"github.com/td0m/taskboard/pkg/tracker"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// StudyType names the task type whose tasks may hold subtasks
	StudyType string `yaml:"study_type"`
	// DueSoonDays is the look-ahead of the "due soon" report
	DueSoonDays int `yaml:"due_soon_days"`
	// Seed is a seed document to load instead of the bundled demo data
	Seed     string `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

func DefaultConfig() Config {
	return Config{
		StudyType:   tracker.DefaultStudyType,
		DueSoonDays: report.DefaultDueWithin,
		LogLevel:    "info",
	}
}

// Load reads the config at path over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("study_type", c.StudyType, notBlank),
		criterio.Run("due_soon_days", c.DueSoonDays, notNegative),
		criterio.Run("log_level", c.LogLevel, logLevel),
		criterio.Run("seed", c.Seed, fileOrEmpty),
	)
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func notNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}

func logLevel(s string) error {
	_, err := zerolog.ParseLevel(s)
	return err
}

// fileOrEmpty validates that a path is unset or points to a regular file
func fileOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}
