package seed

import (
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
	"github.com/td0m/taskboard/pkg/tracker"
)

// Document is the on-disk shape of seed data. The tracker keeps types as
// shared pointers and tasks inside per-person lists; here types are
// referenced by name so the data can be written by hand.
type Document struct {
	Types  []Type   `yaml:"types"`
	People []Person `yaml:"people"`
}

type Type struct {
	Name        string `yaml:"name" valid:"required"`
	Description string `yaml:"description"`
}

type Person struct {
	ID        int    `yaml:"id" valid:"required"`
	Name      string `yaml:"name" valid:"required"`
	Lastname  string `yaml:"lastname" valid:"required"`
	Age       int    `yaml:"age" valid:"range(0|150)"`
	Active    []Task `yaml:"active,omitempty"`
	Completed []Task `yaml:"completed,omitempty"`
}

type Task struct {
	Description string    `yaml:"description" valid:"required"`
	Importance  string    `yaml:"importance" valid:"required"`
	Date        string    `yaml:"date" valid:"required"`
	Time        string    `yaml:"time" valid:"required"`
	Type        string    `yaml:"type" valid:"required"`
	Subtasks    []SubTask `yaml:"subtasks,omitempty"`
}

type SubTask struct {
	Name     string  `yaml:"name" valid:"required"`
	Comments string  `yaml:"comments"`
	Progress float64 `yaml:"progress" valid:"range(0|100)"`
}

// Validate checks required fields and ranges of the whole document
func (d Document) Validate() error {
	if _, err := govalidator.ValidateStruct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// newDocument captures the current state of a tracker
func newDocument(tr *tracker.Tracker) Document {
	var doc Document
	for _, t := range tr.Types.Items() {
		doc.Types = append(doc.Types, Type{Name: t.Name, Description: t.Description})
	}
	for _, p := range tr.People.Items() {
		doc.People = append(doc.People, Person{
			ID:        p.ID,
			Name:      p.Name,
			Lastname:  p.Lastname,
			Age:       p.Age,
			Active:    tasksOf(p.Active.Items()),
			Completed: tasksOf(p.Completed.Items()),
		})
	}
	return doc
}

func tasksOf(ts []*task.Task) []Task {
	var out []Task
	for _, t := range ts {
		doc := Task{
			Description: t.Description,
			Importance:  t.Importance.String(),
			Date:        t.Date.String(),
			Time:        t.Time.String(),
			Type:        t.TypeName(),
		}
		for _, s := range t.Subtasks.Items() {
			doc.Subtasks = append(doc.Subtasks, SubTask{Name: s.Name, Comments: s.Comments, Progress: s.Progress()})
		}
		out = append(out, doc)
	}
	return out
}

func (t Task) build(types *task.Catalog) (*task.Task, error) {
	typ, ok := types.Find(t.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t.Type)
	}
	importance, err := task.ParseImportance(t.Importance)
	if err != nil {
		return nil, err
	}
	d, err := date.Parse(t.Date)
	if err != nil {
		return nil, err
	}
	c, err := date.ParseClock(t.Time)
	if err != nil {
		return nil, err
	}
	return task.New(t.Description, importance, d, c, typ), nil
}

func (s SubTask) build() (*task.SubTask, error) {
	return task.NewSubTask(s.Name, s.Comments, s.Progress)
}

// load inserts p and its tasks through the tracker, so ids, duplicate
// checks and the study gate are applied exactly as they are at runtime.
func (p Person) load(tr *tracker.Tracker, rejected func(*person.Person, *task.Task, error)) error {
	if _, err := tr.InsertPerson(p.ID, p.Name, p.Lastname, p.Age); err != nil {
		return err
	}
	for _, doc := range p.Active {
		t, err := doc.build(tr.Types)
		if err != nil {
			return fmt.Errorf("person %d: task %q: %w", p.ID, doc.Description, err)
		}
		if _, err := tr.InsertTask(p.ID, t, false); err != nil {
			return err
		}
		for _, sdoc := range doc.Subtasks {
			s, err := sdoc.build()
			if err != nil {
				return fmt.Errorf("person %d: task %q: %w", p.ID, doc.Description, err)
			}
			if err := tr.InsertSubTask(p.ID, -1, s); err != nil {
				owner, _ := tr.Person(p.ID)
				rejected(owner, t, err)
			}
		}
	}
	for _, doc := range p.Completed {
		t, err := doc.build(tr.Types)
		if err != nil {
			return fmt.Errorf("person %d: task %q: %w", p.ID, doc.Description, err)
		}
		for _, sdoc := range doc.Subtasks {
			s, err := sdoc.build()
			if err != nil {
				return fmt.Errorf("person %d: task %q: %w", p.ID, doc.Description, err)
			}
			if err := tr.AttachSubTask(t, s); err != nil {
				owner, _ := tr.Person(p.ID)
				rejected(owner, t, err)
			}
		}
		if _, err := tr.InsertTask(p.ID, t, true); err != nil {
			return err
		}
	}
	return nil
}
