package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/seed"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/tracker"
)

// Seed builds a fresh tracker from flags.Config and fills it. The --seed
// flag wins over the config file; with neither, the bundled demo data is
// used.
func Seed(flags *Flags) error {
	cfg := flags.Config
	tr := tracker.New(person.NewDirectory(), task.NewCatalog(), tracker.WithStudyType(cfg.StudyType))

	path := flags.Seed
	if path == "" {
		path = cfg.Seed
	}
	var err error
	if path == "" {
		err = seed.Default(tr)
	} else {
		err = seed.LoadFile(path, tr)
	}
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	log.Debug().
		Str("seed", path).
		Str("study_type", cfg.StudyType).
		Int("people", tr.People.Len()).
		Msg("board ready")

	flags.Tracker = tr
	return nil
}
