// Package tracker moves tasks through their lifecycle: it numbers new tasks,
// gates subtasks on study tasks and completes tasks either on request or
// once all of their subtasks are done.
package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/td0m/taskboard/pkg/list"
	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
)

// DefaultStudyType is the only task type allowed to carry subtasks unless
// overridden with WithStudyType.
const DefaultStudyType = "Study"

var (
	ErrNotFound        = errors.New("not found")
	ErrPersonNotFound  = fmt.Errorf("person %w", ErrNotFound)
	ErrTaskNotFound    = fmt.Errorf("task %w", ErrNotFound)
	ErrSubtaskNotFound = fmt.Errorf("subtask %w", ErrNotFound)

	// ErrTypeMismatch is returned when a subtask is added to a task that is
	// not of the study type. The subtask is not stored.
	ErrTypeMismatch = errors.New("subtasks can only be added to study tasks")

	ErrPersonExists = errors.New("person already exists")
	ErrTypeExists   = errors.New("task type already exists")
	ErrInvalidAge   = errors.New("age must be between 0 and 150")
	ErrBlankName    = errors.New("name must not be blank")
)

const maxAge = 150

type Manager interface {
	Person(personID int) (*person.Person, error)
	Task(personID, taskID int) (*task.Task, error)

	InsertPerson(id int, name, lastname string, age int) (*person.Person, error)
	RemovePerson(personID int) (*person.Person, error)
	InsertType(name, description string) (*task.Type, error)

	AttachSubTask(t *task.Task, s *task.SubTask) error
	InsertTask(personID int, t *task.Task, completed bool) (int, error)
	InsertSubTask(personID, taskIndex int, s *task.SubTask) error
	Reschedule(personID, taskIndex int, newDate, newTime string) error
	CompleteTask(personID, taskID int) error
	UpdateProgress(personID, taskID, subIndex int, progress float64) (bool, error)
	CompleteSubTask(personID, taskID, subIndex int) (bool, error)
	DeleteTask(personID, taskID int) (*task.Task, error)
}

var _ Manager = &Tracker{}

// Tracker drives the task lifecycle of everyone in a directory
type Tracker struct {
	People *person.Directory
	Types  *task.Catalog

	study string
}

type Option func(*Tracker)

// WithStudyType designates the task type whose tasks may hold subtasks
func WithStudyType(name string) Option {
	return func(t *Tracker) {
		t.study = name
	}
}

func New(people *person.Directory, types *task.Catalog, opts ...Option) *Tracker {
	t := &Tracker{
		People: people,
		Types:  types,
		study:  DefaultStudyType,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (tr *Tracker) StudyType() string {
	return tr.study
}

// IsStudy reports whether t may hold subtasks
func (tr *Tracker) IsStudy(t *task.Task) bool {
	return t.TypeName() == tr.study
}

// InsertPerson adds a person with empty task lists. Ids must be unique.
func (tr *Tracker) InsertPerson(id int, name, lastname string, age int) (*person.Person, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(lastname) == "" {
		return nil, fmt.Errorf("%w: person %d", ErrBlankName, id)
	}
	if age < 0 || age > maxAge {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAge, age)
	}
	if _, ok := tr.People.FindByID(id); ok {
		return nil, fmt.Errorf("%w: id %d", ErrPersonExists, id)
	}
	return tr.People.Insert(id, name, lastname, age), nil
}

// RemovePerson unlinks a person together with all of their tasks and hands
// it to the caller
func (tr *Tracker) RemovePerson(personID int) (*person.Person, error) {
	p, ok := tr.People.RemoveByID(personID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrPersonNotFound, personID)
	}
	return p, nil
}

// InsertType adds a task type to the catalog. Names are unique.
func (tr *Tracker) InsertType(name, description string) (*task.Type, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: task type", ErrBlankName)
	}
	if _, ok := tr.Types.Find(name); ok {
		return nil, fmt.Errorf("%w: %q", ErrTypeExists, name)
	}
	return tr.Types.Insert(name, description), nil
}

func (tr *Tracker) Person(personID int) (*person.Person, error) {
	p, ok := tr.People.FindByID(personID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrPersonNotFound, personID)
	}
	return p, nil
}

// Task looks up an active task by id
func (tr *Tracker) Task(personID, taskID int) (*task.Task, error) {
	p, err := tr.Person(personID)
	if err != nil {
		return nil, err
	}
	t, ok := p.Active.FindByID(taskID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrTaskNotFound, taskID)
	}
	return t, nil
}

func (tr *Tracker) activeAt(personID, taskIndex int) (*task.Task, error) {
	p, err := tr.Person(personID)
	if err != nil {
		return nil, err
	}
	t, ok := p.Active.Get(taskIndex)
	if !ok {
		return nil, fmt.Errorf("%w: index %d", ErrTaskNotFound, taskIndex)
	}
	return t, nil
}

// nextID allocates the id for a task entering l
func nextID(l *list.List[*task.Task]) int {
	last, ok := l.Get(-1)
	if !ok {
		return 1
	}
	return last.ID + 1
}

// InsertTask numbers t after the last task of the target list and appends
// it. It returns the id given to the task.
func (tr *Tracker) InsertTask(personID int, t *task.Task, completed bool) (int, error) {
	p, err := tr.Person(personID)
	if err != nil {
		return 0, err
	}
	target := p.Active
	if completed {
		target = p.Completed
	}
	ensureSubtasks(t)
	t.ID = nextID(target)
	target.Append(t)
	return t.ID, nil
}

// InsertSubTask adds s to the active task at taskIndex. Only study tasks
// take subtasks; anything else returns ErrTypeMismatch.
func (tr *Tracker) InsertSubTask(personID, taskIndex int, s *task.SubTask) error {
	t, err := tr.activeAt(personID, taskIndex)
	if err != nil {
		return err
	}
	return tr.AttachSubTask(t, s)
}

// AttachSubTask appends s to t when t is a study task. It works on tasks
// that are not in any list yet, such as completed tasks being loaded.
func (tr *Tracker) AttachSubTask(t *task.Task, s *task.SubTask) error {
	if !tr.IsStudy(t) {
		return fmt.Errorf("%w: task %d is of type %q", ErrTypeMismatch, t.ID, t.TypeName())
	}
	ensureSubtasks(t)
	t.Subtasks.Append(s)
	return nil
}

// ensureSubtasks gives tasks built without task.New an empty subtask list
func ensureSubtasks(t *task.Task) {
	if t.Subtasks == nil {
		t.Subtasks = list.New[*task.SubTask](nil)
	}
}

// Reschedule changes the due date and time of the active task at taskIndex.
// Both values are validated before the task is touched.
func (tr *Tracker) Reschedule(personID, taskIndex int, newDate, newTime string) error {
	t, err := tr.activeAt(personID, taskIndex)
	if err != nil {
		return err
	}
	d, err := date.Parse(newDate)
	if err != nil {
		return err
	}
	c, err := date.ParseClock(newTime)
	if err != nil {
		return err
	}
	t.Date = d
	t.Time = c
	return nil
}

// CompleteTask moves an active task to the completed list. The task keeps
// its id.
func (tr *Tracker) CompleteTask(personID, taskID int) error {
	p, err := tr.Person(personID)
	if err != nil {
		return err
	}
	return complete(p, taskID)
}

func complete(p *person.Person, taskID int) error {
	t, ok := p.Active.RemoveByID(taskID)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrTaskNotFound, taskID)
	}
	p.Completed.Append(t)
	return nil
}

// UpdateProgress sets the progress of a subtask of an active task. When every
// subtask of the task is complete afterwards, the task itself is completed
// and true is returned.
func (tr *Tracker) UpdateProgress(personID, taskID, subIndex int, progress float64) (bool, error) {
	p, err := tr.Person(personID)
	if err != nil {
		return false, err
	}
	t, ok := p.Active.FindByID(taskID)
	if !ok {
		return false, fmt.Errorf("%w: id %d", ErrTaskNotFound, taskID)
	}
	s, ok := t.Subtasks.Get(subIndex)
	if !ok {
		return false, fmt.Errorf("%w: index %d of task %d", ErrSubtaskNotFound, subIndex, taskID)
	}
	if err := s.SetProgress(progress); err != nil {
		return false, err
	}
	if !t.SubtasksDone() {
		return false, nil
	}
	return true, complete(p, taskID)
}

// CompleteSubTask sets a subtask to full progress, completing the task when
// it was the last one pending.
func (tr *Tracker) CompleteSubTask(personID, taskID, subIndex int) (bool, error) {
	return tr.UpdateProgress(personID, taskID, subIndex, task.Complete)
}

// DeleteTask removes an active task and hands it to the caller
func (tr *Tracker) DeleteTask(personID, taskID int) (*task.Task, error) {
	p, err := tr.Person(personID)
	if err != nil {
		return nil, err
	}
	t, ok := p.Active.RemoveByID(taskID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrTaskNotFound, taskID)
	}
	return t, nil
}
