// Package seed fills a tracker with people, task types and tasks read from a
// YAML document, and writes the state of a tracker back in the same shape.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/td0m/taskboard/internal/logging"
	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/tracker"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalid     = errors.New("invalid seed document")
	ErrUnknownType = errors.New("unknown task type")
)

//go:embed default.yaml
var defaultSeed []byte

// Default loads the demo data bundled with the binary
func Default(tr *tracker.Tracker) error {
	return Decode(bytes.NewReader(defaultSeed), tr)
}

// LoadFile loads the seed document at path
func LoadFile(path string, tr *tracker.Tracker) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Decode(f, tr); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Decode reads a YAML seed document and loads it into tr. The whole document
// is validated before the tracker is touched.
func Decode(r io.Reader, tr *tracker.Tracker) error {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return Load(doc, tr)
}

// Load validates doc and inserts its contents into tr
func Load(doc Document, tr *tracker.Tracker) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	log := logging.Component("seed")
	for _, t := range doc.Types {
		if _, err := tr.InsertType(t.Name, t.Description); err != nil && !errors.Is(err, tracker.ErrTypeExists) {
			return err
		}
	}
	rejected := func(p *person.Person, t *task.Task, err error) {
		log.Warn().Err(err).
			Int("person", p.ID).
			Int("task", t.ID).
			Str("type", t.TypeName()).
			Msg("subtask skipped")
	}
	for _, p := range doc.People {
		if err := p.load(tr, rejected); err != nil {
			return err
		}
	}
	log.Debug().
		Int("types", tr.Types.Len()).
		Int("people", tr.People.Len()).
		Msg("seed loaded")
	return nil
}

// Dump writes the state of tr as a seed document
func Dump(w io.Writer, tr *tracker.Tracker) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(tr)); err != nil {
		return err
	}
	return enc.Close()
}
