package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/taskboard/pkg/dateinput"
	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
	"github.com/td0m/taskboard/pkg/tracker"
)

var (
	errRequired    = errors.New("is required")
	errNotANumber  = errors.New("must be a number")
	errUnknownType = errors.New("unknown task type")
)

// new tasks are due at this time unless the input names one
var defaultClock = date.Clock{Hour: 9}

func required(label, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%s %w", label, errRequired)
	}
	return v, nil
}

func number(label, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s %w: %q", label, errNotANumber, v)
	}
	return n, nil
}

func (m *Model) openForm(f *form) tea.Cmd {
	m.form = f
	m.mode = modeForm
	m.status = ""
	m.failed = false
	return textinput.Blink
}

// formUpdate submits the form once its last field is confirmed. A failed
// submit keeps the form open with the error next to it.
func (m *Model) formUpdate(msg tea.KeyMsg) tea.Cmd {
	cmd, submit := m.form.update(msg)
	if !submit {
		return cmd
	}
	if err := m.form.submit(m.form.values()); err != nil {
		m.fail(err)
		return nil
	}
	m.form = nil
	m.mode = modeNormal
	return nil
}

func (m *Model) newTask() tea.Cmd {
	p, ok := m.current()
	if !ok || m.tabs.Value() != tabActive {
		return nil
	}
	at := m.typeAt
	typeName := func() string {
		if t, ok := m.tr.Types.Get(at); ok {
			return t.Name
		}
		return ""
	}
	f := newForm("new task", func(v []string) error { return m.addTask(p, v) }).
		add("description", "").
		add("importance", task.Medium.String()).
		add("due", "tomorrow").
		add("type", typeName()).
		choose(func(step int) string {
			if step > 0 {
				at = m.tr.Types.Next(at)
			} else {
				at = m.tr.Types.Prev(at)
			}
			return typeName()
		})
	return m.openForm(f)
}

func (m *Model) addTask(p *person.Person, v []string) error {
	description, err := required("description", v[0])
	if err != nil {
		return err
	}
	importance, err := task.ParseImportance(v[1])
	if err != nil {
		return err
	}
	due, err := dateinput.Parse(v[2], m.today, defaultClock)
	if err != nil {
		return err
	}
	typ, ok := m.tr.Types.Find(strings.TrimSpace(v[3]))
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownType, v[3])
	}
	t := task.New(description, importance, due.Date, due.Clock, typ)
	if _, err := m.tr.InsertTask(p.ID, t, false); err != nil {
		return err
	}
	m.log.Info().Int("person", p.ID).Int("task", t.ID).Str("type", typ.Name).Msg("task added")
	m.ok(fmt.Sprintf("added %s", t))
	m.refresh()
	m.setCursor(len(m.rows))
	return nil
}

func (m *Model) newSubTask() tea.Cmd {
	p, r, ok := m.editable()
	if !ok {
		return nil
	}
	t := r.task
	f := newForm(fmt.Sprintf("new subtask for #%d", t.ID), func(v []string) error { return m.addSubTask(p, t, v) }).
		add("name", "").
		add("comments", "").
		add("progress", "0")
	return m.openForm(f)
}

// addSubTask reports a subtask refused by the study gate in the status line
// and closes the form, since no other input would be accepted.
func (m *Model) addSubTask(p *person.Person, t *task.Task, v []string) error {
	name, err := required("name", v[0])
	if err != nil {
		return err
	}
	progress, err := strconv.ParseFloat(strings.TrimSpace(v[2]), 64)
	if err != nil {
		return fmt.Errorf("%w: %q", task.ErrInvalidProgress, v[2])
	}
	s, err := task.NewSubTask(name, strings.TrimSpace(v[1]), progress)
	if err != nil {
		return err
	}
	index := p.Active.Index(func(a *task.Task) bool { return a.ID == t.ID })
	err = m.tr.InsertSubTask(p.ID, index, s)
	switch {
	case errors.Is(err, tracker.ErrTypeMismatch):
		m.fail(fmt.Errorf("%s is a %s task, only %s tasks take subtasks: %w", t, t.TypeName(), m.tr.StudyType(), err))
		return nil
	case err != nil:
		return err
	}
	m.ok(fmt.Sprintf("added subtask %s to %s", s.Name, t))
	m.expanded[t.ID] = true
	m.refresh()
	return nil
}

func (m *Model) newPerson() tea.Cmd {
	f := newForm("new person", m.addPerson).
		add("id", "").
		add("name", "").
		add("lastname", "").
		add("age", "")
	return m.openForm(f)
}

func (m *Model) addPerson(v []string) error {
	id, err := number("id", v[0])
	if err != nil {
		return err
	}
	age, err := number("age", v[3])
	if err != nil {
		return err
	}
	p, err := m.tr.InsertPerson(id, strings.TrimSpace(v[1]), strings.TrimSpace(v[2]), age)
	if err != nil {
		return err
	}
	m.log.Info().Int("person", p.ID).Msg("person added")
	m.ok(fmt.Sprintf("added %s", p.FullName()))
	m.setPerson(m.tr.People.Len() - 1)
	return nil
}

func (m *Model) removePerson() {
	p, ok := m.current()
	if !ok {
		return
	}
	if _, err := m.tr.RemovePerson(p.ID); err != nil {
		m.fail(err)
		return
	}
	m.log.Info().Int("person", p.ID).Msg("person removed")
	m.ok(fmt.Sprintf("removed %s", p.FullName()))
	m.person = min(m.person, max(m.tr.People.Len()-1, 0))
	m.cursor = 0
	clear(m.expanded)
	m.refresh()
}

func (m *Model) newType() tea.Cmd {
	if m.tabs.Value() != tabTypes {
		return nil
	}
	f := newForm("new type", m.addType).
		add("name", "").
		add("description", "")
	return m.openForm(f)
}

func (m *Model) addType(v []string) error {
	typ, err := m.tr.InsertType(strings.TrimSpace(v[0]), strings.TrimSpace(v[1]))
	if err != nil {
		return err
	}
	m.log.Info().Str("type", typ.Name).Msg("type added")
	m.ok(fmt.Sprintf("added type %s", typ.Name))
	m.typeAt = m.tr.Types.Len() - 1
	return nil
}
