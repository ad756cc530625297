// Package tui is the interactive board: one person at a time, their active
// and completed tasks, and the task type catalog.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/td0m/taskboard/internal/logging"
	"github.com/td0m/taskboard/internal/ui"
	"github.com/td0m/taskboard/pkg/dateinput"
	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/report"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
	"github.com/td0m/taskboard/pkg/tracker"
)

const (
	headerHeight = 3
	footerHeight = 2

	progressStep = 10.0
)

const (
	tabActive = iota
	tabCompleted
	tabTypes
)

type mode int

const (
	modeNormal mode = iota
	modeDue
	modeForm
)

// row is one line of the task list. sub is -1 for the task itself.
type row struct {
	task *task.Task
	sub  int
}

type Model struct {
	tr      *tracker.Tracker
	reports *report.Reporter
	today   date.Date
	log     zerolog.Logger

	mode     mode
	tabs     ui.Tabs
	viewport viewport.Model
	due      dateinput.Model
	form     *form

	person   int
	cursor   int
	rows     []row
	expanded map[int]bool
	typeAt   int

	status string
	failed bool
}

// New builds the board over tr. today anchors relative dates and due colours.
func New(tr *tracker.Tracker, today date.Date) *Model {
	m := &Model{
		tr:       tr,
		reports:  report.New(tr),
		today:    today,
		log:      logging.Component("tui"),
		tabs:     ui.NewTabs([]string{"Active", "Completed", "Types"}),
		viewport: viewport.New(0, 0),
		due:      dateinput.New(today),
		expanded: map[int]bool{},
	}
	m.refresh()
	return m
}

// Run starts the board on the alternate screen and blocks until it quits
func Run(tr *tracker.Tracker, today date.Date) error {
	p := tea.NewProgram(New(tr, today), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.tabs.Width = msg.Width
		m.setCursor(m.cursor)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.mode = modeNormal
			m.form = nil
		default:
			cmd = m.keyUpdate(msg)
		}
	}
	m.render()
	return m, cmd
}

// handle keys differently based on the current mode
func (m *Model) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	if m.mode == modeDue {
		if msg.Type == tea.KeyEnter {
			m.reschedule()
			m.mode = modeNormal
			return nil
		}
		var cmd tea.Cmd
		m.due, cmd = m.due.Update(msg)
		return cmd
	}
	if m.mode == modeForm {
		return m.formUpdate(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "tab":
		m.tabs.Next()
		m.cursor = 0
		clear(m.expanded)
		m.refresh()
	case "l":
		m.setPerson(m.person + 1)
	case "h":
		m.setPerson(m.person - 1)
	case "j":
		m.setCursor(m.cursor + 1)
	case "k":
		m.setCursor(m.cursor - 1)
	case "g":
		m.setCursor(0)
	case "G":
		m.setCursor(len(m.rows))
	case "]":
		m.typeAt = m.tr.Types.Next(m.typeAt)
	case "[":
		m.typeAt = m.tr.Types.Prev(m.typeAt)
	case "enter":
		if r, ok := m.atCursor(); ok {
			m.expanded[r.task.ID] = !m.expanded[r.task.ID]
			m.refresh()
		}
	case "c":
		m.complete()
	case "+", "=":
		m.stepProgress(progressStep)
	case "-":
		m.stepProgress(-progressStep)
	case "d":
		m.editDue()
	case "x":
		m.delete()
	case "a":
		return m.newTask()
	case "s":
		return m.newSubTask()
	case "p":
		return m.newPerson()
	case "P":
		m.removePerson()
	case "t":
		return m.newType()
	}
	return nil
}

func (m *Model) current() (*person.Person, bool) {
	return m.tr.People.Get(m.person)
}

func (m *Model) setPerson(i int) {
	n := m.tr.People.Len()
	if n == 0 {
		return
	}
	m.person = ((i % n) + n) % n
	m.cursor = 0
	clear(m.expanded)
	m.refresh()
}

// editable reports whether the cursor is on an active task row
func (m *Model) editable() (*person.Person, row, bool) {
	p, ok := m.current()
	if !ok || m.tabs.Value() != tabActive {
		return nil, row{}, false
	}
	r, ok := m.atCursor()
	return p, r, ok
}

func (m *Model) complete() {
	p, r, ok := m.editable()
	if !ok {
		return
	}
	if r.sub < 0 {
		if err := m.tr.CompleteTask(p.ID, r.task.ID); err != nil {
			m.fail(err)
			return
		}
		m.log.Debug().Int("person", p.ID).Int("task", r.task.ID).Msg("task completed")
		m.ok(fmt.Sprintf("completed %s", r.task))
		m.refresh()
		return
	}
	cascaded, err := m.tr.CompleteSubTask(p.ID, r.task.ID, r.sub)
	if err != nil {
		m.fail(err)
		return
	}
	m.afterProgress(p, r, cascaded)
}

func (m *Model) stepProgress(delta float64) {
	p, r, ok := m.editable()
	if !ok || r.sub < 0 {
		return
	}
	s, ok := r.task.Subtasks.Get(r.sub)
	if !ok {
		return
	}
	next := min(max(s.Progress()+delta, 0), task.Complete)
	cascaded, err := m.tr.UpdateProgress(p.ID, r.task.ID, r.sub, next)
	if err != nil {
		m.fail(err)
		return
	}
	m.afterProgress(p, r, cascaded)
}

func (m *Model) afterProgress(p *person.Person, r row, cascaded bool) {
	m.log.Debug().
		Int("person", p.ID).
		Int("task", r.task.ID).
		Int("subtask", r.sub).
		Bool("cascaded", cascaded).
		Msg("progress updated")
	if cascaded {
		m.ok(fmt.Sprintf("all subtasks done, completed %s", r.task))
		m.refresh()
		return
	}
	m.status = ""
}

func (m *Model) editDue() {
	_, r, ok := m.editable()
	if !ok {
		return
	}
	due := r.task.Due()
	m.due = dateinput.New(m.today)
	m.due.SetValue(&due)
	m.mode = modeDue
}

func (m *Model) reschedule() {
	p, r, ok := m.editable()
	if !ok {
		return
	}
	v := m.due.Value()
	if v == nil {
		m.fail(fmt.Errorf("%w: not rescheduled", date.ErrInvalidDate))
		return
	}
	index := p.Active.Index(func(t *task.Task) bool { return t.ID == r.task.ID })
	if err := m.tr.Reschedule(p.ID, index, v.Date.String(), v.Clock.String()); err != nil {
		m.fail(err)
		return
	}
	m.ok(fmt.Sprintf("%s due %s", r.task, v))
}

func (m *Model) delete() {
	p, r, ok := m.editable()
	if !ok || r.sub >= 0 {
		return
	}
	t, err := m.tr.DeleteTask(p.ID, r.task.ID)
	if err != nil {
		m.fail(err)
		return
	}
	m.log.Info().Int("person", p.ID).Int("task", t.ID).Msg("task deleted")
	m.ok(fmt.Sprintf("deleted %s", t))
	m.refresh()
}

func (m *Model) ok(msg string) {
	m.status = msg
	m.failed = false
}

func (m *Model) fail(err error) {
	m.log.Warn().Err(err).Msg("action failed")
	m.status = err.Error()
	m.failed = true
}

// refresh rebuilds the visible rows from the tracker
func (m *Model) refresh() {
	m.rows = m.rows[:0]
	p, ok := m.current()
	if !ok {
		m.setCursor(0)
		return
	}
	var l []*task.Task
	switch m.tabs.Value() {
	case tabActive:
		l = p.Active.Items()
	case tabCompleted:
		l = p.Completed.Items()
	}
	for _, t := range l {
		m.rows = append(m.rows, row{task: t, sub: -1})
		if !m.expanded[t.ID] {
			continue
		}
		for i, n := 0, t.Subtasks.Len(); i < n; i++ {
			m.rows = append(m.rows, row{task: t, sub: i})
		}
	}
	m.setCursor(m.cursor)
}

func (m *Model) atCursor() (row, bool) {
	if m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) setCursor(value int) {
	m.cursor = clamp(value, 0, max(len(m.rows)-1, 0))
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = m.cursor + 1 - m.viewport.Height
	}
	if m.cursor < m.viewport.YOffset {
		m.viewport.YOffset = m.cursor
	}
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}
