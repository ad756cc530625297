package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/matryer/is"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	is.NoErr(err)
	is.Equal(*cfg, DefaultConfig())

	cfg, err = Load("")
	is.NoErr(err)
	is.Equal(cfg.StudyType, "Study")
	is.Equal(cfg.DueSoonDays, 7)
}

func TestLoad_Overrides(t *testing.T) {
	is := is.New(t)
	seed := write(t, "seed.yaml", "people: []\n")
	path := write(t, "config.yaml", "study_type: Estudio\ndue_soon_days: 3\nseed: "+seed+"\n")

	cfg, err := Load(path)
	is.NoErr(err)
	is.Equal(cfg.StudyType, "Estudio")
	is.Equal(cfg.DueSoonDays, 3)
	is.Equal(cfg.Seed, seed)
	is.Equal(cfg.LogLevel, "info") // untouched keys keep their default
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		fields  int
	}{
		{"blank study type", "study_type: ' '\n", 1},
		{"negative window", "due_soon_days: -1\n", 1},
		{"unknown level and missing seed", "log_level: loud\nseed: /nonexistent/seed.yaml\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			_, err := Load(write(t, "config.yaml", tt.content))
			var fieldErrs criterio.FieldErrors
			is.True(errors.As(err, &fieldErrs))
			is.Equal(len(fieldErrs), tt.fields)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	is := is.New(t)
	_, err := Load(write(t, "config.yaml", "study_type: [\n"))
	is.True(err != nil)
}
