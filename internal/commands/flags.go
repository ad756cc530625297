package commands

import (
	"os"
	"path/filepath"

	"github.com/td0m/taskboard/internal/config"
	"github.com/td0m/taskboard/pkg/tracker"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Seed       string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Tracker holds the seeded board every command works on
	Tracker *tracker.Tracker
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskboard", "config.yaml")
}
