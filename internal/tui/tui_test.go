package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
	"github.com/td0m/taskboard/pkg/tracker"
)

var today = date.MustNew(10, time.October, 2024)

// board has Ana with a study task of two subtasks and a chore, and Luis
// with nothing assigned.
func board(t *testing.T) (*tracker.Tracker, *Model) {
	t.Helper()
	types := task.NewCatalog()
	study := types.Insert("Study", "")
	home := types.Insert("Home", "")
	people := person.NewDirectory()
	people.Insert(1, "Ana", "Lopez", 30)
	people.Insert(2, "Luis", "Perez", 41)
	tr := tracker.New(people, types)

	read := task.New("Leer", task.Low, today, date.Clock{Hour: 10}, study)
	if _, err := tr.InsertTask(1, read, false); err != nil {
		t.Fatal(err)
	}
	for _, p := range []float64{50, 100} {
		s, _ := task.NewSubTask("Cap", "", p)
		if err := tr.InsertSubTask(1, 0, s); err != nil {
			t.Fatal(err)
		}
	}
	sweep := task.New("Barrer", task.High, today.AddDays(3), date.Clock{Hour: 8}, home)
	if _, err := tr.InsertTask(1, sweep, false); err != nil {
		t.Fatal(err)
	}

	m := New(tr, today)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return tr, m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+u":
			msg = tea.KeyMsg{Type: tea.KeyCtrlU}
		case "ctrl+n":
			msg = tea.KeyMsg{Type: tea.KeyCtrlN}
		case "ctrl+p":
			msg = tea.KeyMsg{Type: tea.KeyCtrlP}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func ana(t *testing.T, tr *tracker.Tracker) *person.Person {
	p, err := tr.Person(1)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNavigation(t *testing.T) {
	is := is.New(t)
	_, m := board(t)
	is.Equal(len(m.rows), 2)
	is.True(strings.Contains(m.View(), "Ana Lopez: 1 (1/2)"))

	press(m, "l")
	is.Equal(m.person, 1)
	is.Equal(len(m.rows), 0)
	press(m, "l")
	is.Equal(m.person, 0) // wraps around
	press(m, "h")
	is.Equal(m.person, 1)
	press(m, "l")

	press(m, "j", "j", "j")
	is.Equal(m.cursor, 1)
	press(m, "k", "k")
	is.Equal(m.cursor, 0)

	press(m, "enter")
	is.Equal(len(m.rows), 4)
	is.Equal(m.rows[1].sub, 0)
	press(m, "enter")
	is.Equal(len(m.rows), 2)
}

func TestCompleteSubtaskCascades(t *testing.T) {
	is := is.New(t)
	tr, m := board(t)

	press(m, "enter", "j", "c")
	p := ana(t, tr)
	is.Equal(p.Active.Len(), 1)
	is.Equal(p.Completed.Len(), 1)
	done, _ := p.Completed.Get(0)
	is.Equal(done.Description, "Leer")
	is.True(!m.failed)
	is.True(strings.Contains(m.status, "completed #1 Leer"))
	is.Equal(len(m.rows), 1)
}

func TestProgressKeys(t *testing.T) {
	is := is.New(t)
	tr, m := board(t)
	read, _ := tr.Task(1, 1)
	first, _ := read.Subtasks.Get(0)

	press(m, "enter", "j", "+")
	is.Equal(first.Progress(), 60.0)

	press(m, "-", "-", "-", "-", "-", "-", "-")
	is.Equal(first.Progress(), 0.0) // clamped

	press(m, "+", "+", "+", "+", "+", "+", "+", "+", "+", "+")
	is.Equal(ana(t, tr).Completed.Len(), 1) // reaching 100 cascades

	// progress keys do nothing on a task row
	press(m, "g", "+")
	sweep, _ := tr.Task(1, 2)
	is.Equal(sweep.Description, "Barrer")
}

func TestCompleteAndDelete(t *testing.T) {
	is := is.New(t)
	tr, m := board(t)

	press(m, "j", "c")
	p := ana(t, tr)
	is.Equal(p.Completed.Len(), 1)
	done, _ := p.Completed.Get(0)
	is.Equal(done.ID, 2)

	press(m, "x")
	is.Equal(p.Active.Len(), 0)
	is.True(strings.Contains(m.status, "deleted #1 Leer"))

	// completed tasks are read only
	press(m, "tab", "x", "c")
	is.Equal(p.Completed.Len(), 1)
	is.Equal(len(m.rows), 1)
}

func TestReschedule(t *testing.T) {
	is := is.New(t)
	tr, m := board(t)

	press(m, "d")
	is.Equal(m.mode, modeDue)
	press(m, "ctrl+u", "t", "o", "m", "enter")
	is.Equal(m.mode, modeNormal)

	read, _ := tr.Task(1, 1)
	is.Equal(read.Due().String(), "11-10-2024 10:00:00")

	press(m, "d", "ctrl+u", "z", "z", "enter")
	is.True(m.failed)
	is.Equal(read.Due().String(), "11-10-2024 10:00:00")

	press(m, "d", "esc")
	is.Equal(m.mode, modeNormal)
}

func TestTypesTab(t *testing.T) {
	is := is.New(t)
	_, m := board(t)

	press(m, "tab", "tab")
	is.Equal(m.tabs.Value(), tabTypes)
	is.True(strings.Contains(m.View(), "most Study tasks: Ana Lopez (1)"))

	press(m, "]", "]")
	is.Equal(m.typeAt, 0) // two types, wrapped
	press(m, "[")
	is.Equal(m.typeAt, 1)
	is.True(strings.Contains(m.View(), "most Home tasks: Ana Lopez (1)"))
}

func TestAddTask(t *testing.T) {
	is := is.New(t)
	tr, m := board(t)

	press(m, "a")
	is.Equal(m.mode, modeForm)
	press(m, "Repasar", "enter")
	press(m, "ctrl+u", "alto", "enter")
	press(m, "ctrl+u", "in 2 days 18:30", "enter")
	press(m, "ctrl+n", "ctrl+n", "ctrl+p") // Study -> Home -> Study -> Home
	press(m, "enter")
	is.Equal(m.mode, modeNormal)
	is.True(!m.failed)
	is.True(strings.Contains(m.status, "added #3 Repasar"))

	added, err := tr.Task(1, 3)
	is.NoErr(err)
	is.Equal(added.Importance, task.High)
	is.Equal(added.Due().String(), "12-10-2024 18:30:00")
	is.Equal(added.TypeName(), "Home")
	is.Equal(m.cursor, 2)

	t.Run("fields are checked on submit", func(t *testing.T) {
		is := is.New(t)
		tr, m := board(t)
		press(m, "a", "enter", "enter", "enter", "enter")
		is.Equal(m.mode, modeForm)
		is.True(m.failed)
		is.Equal(m.status, "description is required")
		is.Equal(ana(t, tr).Active.Len(), 2)

		press(m, "shift+tab", "shift+tab", "shift+tab", "Leer mas")
		press(m, "enter", "enter", "enter", "enter")
		is.Equal(m.mode, modeNormal)
		added, err := tr.Task(1, 3)
		is.NoErr(err)
		is.Equal(added.Due().String(), "11-10-2024 09:00:00")
		is.Equal(added.TypeName(), "Study")
	})

	t.Run("esc cancels", func(t *testing.T) {
		is := is.New(t)
		tr, m := board(t)
		press(m, "a", "Nada", "esc")
		is.Equal(m.mode, modeNormal)
		is.True(m.form == nil)
		is.Equal(ana(t, tr).Active.Len(), 2)
	})
}

func TestAddSubTask(t *testing.T) {
	is := is.New(t)
	tr, m := board(t)

	press(m, "s", "Cap3", "enter", "enter", "ctrl+u", "30", "enter")
	is.Equal(m.mode, modeNormal)
	read, _ := tr.Task(1, 1)
	is.Equal(read.Subtasks.Len(), 3)
	third, _ := read.Subtasks.Get(2)
	is.Equal(third.Progress(), 30.0)
	is.True(strings.Contains(m.status, "added subtask Cap3 to #1 Leer"))
	is.Equal(len(m.rows), 5) // expanded

	// only study tasks take subtasks
	press(m, "G", "s", "Escoba", "enter", "enter", "enter")
	is.Equal(m.mode, modeNormal)
	is.True(m.failed)
	is.True(strings.Contains(m.status, "only Study tasks take subtasks"))
	sweep, _ := tr.Task(1, 2)
	is.Equal(sweep.Subtasks.Len(), 0)

	press(m, "g", "s", "Cap4", "enter", "enter", "ctrl+u", "abc", "enter")
	is.Equal(m.mode, modeForm)
	is.True(strings.Contains(m.status, "progress"))
	press(m, "esc")
	is.Equal(read.Subtasks.Len(), 3)
}

func TestPeople(t *testing.T) {
	is := is.New(t)
	tr, m := board(t)

	press(m, "p", "3", "enter", "Eva", "enter", "Ruiz", "enter", "27", "enter")
	is.Equal(m.mode, modeNormal)
	is.Equal(tr.People.Len(), 3)
	is.Equal(m.person, 2)
	is.True(strings.Contains(m.View(), "Eva Ruiz: 3 (3/3)"))

	press(m, "p", "1", "enter", "Otra", "enter", "Ana", "enter", "20", "enter")
	is.Equal(m.mode, modeForm)
	is.True(strings.Contains(m.status, "already exists"))
	press(m, "esc")
	is.Equal(tr.People.Len(), 3)

	press(m, "P")
	is.Equal(tr.People.Len(), 2)
	is.Equal(m.person, 1)
	is.True(strings.Contains(m.status, "removed Eva Ruiz"))

	press(m, "P", "P", "P")
	is.Equal(tr.People.Len(), 0)
	is.True(strings.Contains(m.View(), "no people"))
	press(m, "a", "s")
	is.Equal(m.mode, modeNormal)
}

func TestNewType(t *testing.T) {
	is := is.New(t)
	tr, m := board(t)

	press(m, "t")
	is.Equal(m.mode, modeNormal) // only from the types tab

	press(m, "tab", "tab", "t", "Work", "enter", "Office", "enter")
	is.Equal(m.mode, modeNormal)
	is.Equal(tr.Types.Len(), 3)
	is.Equal(m.typeAt, 2)
	is.True(strings.Contains(m.View(), "Office"))

	press(m, "t", "Study", "enter", "enter")
	is.Equal(m.mode, modeForm)
	is.True(strings.Contains(m.status, "already exists"))
	is.Equal(tr.Types.Len(), 3)
}
