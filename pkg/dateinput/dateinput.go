// Package dateinput is a one-line prompt for due dates. It accepts the
// formats of Parse and shows whether the current input is valid.
package dateinput

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/taskboard/pkg/task/date"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.
		Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "#FF5047"}).
		Render("✗")

	faded = lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"}
)

type Model struct {
	i     textinput.Model
	from  date.Date
	clock date.Clock
	value *date.Moment
}

// New returns a focused prompt resolving relative input against from
func New(from date.Date) Model {
	i := textinput.New()
	i.Focus()
	i.CharLimit = 32
	i.Prompt = ""
	i.Placeholder = "dd-mm-yyyy, tomorrow, in 3 days"
	return Model{
		i:    i,
		from: from,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received. Key presses edit the input
// and re-parse it.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.i, cmd = m.i.Update(msg)
		m.value = m.parse()
		return m, cmd
	}
	m.i, cmd = m.i.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	indicator := cross
	if m.i.Value() == "" {
		indicator = ""
	} else if m.value != nil {
		indicator = checkmark + " " + m.value.String() + " (" + describe(m.from, m.value.Date) + ")"
	}
	prefix := "due"
	return lipgloss.NewStyle().Foreground(faded).Render(prefix+": ") + m.i.View() + indicator
}

// Value is the parsed input, nil while it is empty or invalid
func (m Model) Value() *date.Moment {
	return m.value
}

// SetValue prefills the prompt, typically with a task's current due moment.
// Its clock becomes the default for input that names no time.
func (m *Model) SetValue(v *date.Moment) {
	m.value = v
	if v == nil {
		m.i.SetValue("")
		return
	}
	m.clock = v.Clock
	m.i.SetValue(v.Date.String())
}

func (m Model) parse() *date.Moment {
	v, err := Parse(m.i.Value(), m.from, m.clock)
	if err != nil {
		return nil
	}
	return &v
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
