package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/td0m/taskboard/pkg/list"
	"github.com/td0m/taskboard/pkg/task/date"
)

var ErrUnknownImportance = errors.New("unknown importance")

type Importance int

const (
	High Importance = iota
	Medium
	Low
)

// Importances lists every importance from most to least important
var Importances = []Importance{High, Medium, Low}

func (i Importance) String() string {
	switch i {
	case High:
		return "High"
	case Medium:
		return "Medium"
	case Low:
		return "Low"
	}
	return fmt.Sprintf("Importance(%d)", int(i))
}

// ParseImportance accepts the english names as well as alto, medio and bajo
func ParseImportance(s string) (Importance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "alto", "alta":
		return High, nil
	case "medium", "medio", "media":
		return Medium, nil
	case "low", "bajo", "baja":
		return Low, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownImportance, s)
}

func (i Importance) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Importance) UnmarshalText(bs []byte) error {
	v, err := ParseImportance(string(bs))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

type Task struct {
	// ID is unique within the list the task currently lives in. It is set
	// once, when the task first enters a list.
	ID          int
	Description string
	Importance  Importance
	Date        date.Date
	Time        date.Clock

	// Type is shared with the catalog and every other task of that type
	Type     *Type
	Subtasks *list.List[*SubTask]
}

func New(description string, importance Importance, d date.Date, c date.Clock, typ *Type) *Task {
	return &Task{
		Description: description,
		Importance:  importance,
		Date:        d,
		Time:        c,
		Type:        typ,
		Subtasks:    list.New[*SubTask](nil),
	}
}

// ID returns the identifier of t; used as the key of task lists
func ID(t *Task) int {
	return t.ID
}

// NewList creates an empty task list keyed by task id
func NewList() *list.List[*Task] {
	return list.New(ID)
}

func (t *Task) Due() date.Moment {
	return date.Moment{Date: t.Date, Clock: t.Time}
}

// TypeName returns the name of the task type, or "" when the task has none
func (t *Task) TypeName() string {
	if t.Type == nil {
		return ""
	}
	return t.Type.Name
}

// SubtasksDone reports whether the task has subtasks and all of them are
// complete.
func (t *Task) SubtasksDone() bool {
	if t.Subtasks.Len() == 0 {
		return false
	}
	for _, s := range t.Subtasks.Items() {
		if !s.Completed() {
			return false
		}
	}
	return true
}

func (t *Task) String() string {
	return fmt.Sprintf("#%d %s", t.ID, t.Description)
}

// ByDue orders tasks by their due moment
func ByDue(a, b *Task) int {
	return a.Due().Compare(b.Due())
}
