package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/taskboard/internal/ui"
)

var formTitle = lipgloss.NewStyle().Foreground(ui.Blue).Bold(true)

type field struct {
	label string
	input textinput.Model

	// cycle, when set, replaces the value with the next (+1) or previous
	// (-1) choice
	cycle func(step int) string
}

// form asks for a few values one field at a time. enter moves to the next
// field and submits on the last one.
type form struct {
	title  string
	fields []field
	focus  int
	submit func(values []string) error
}

func newForm(title string, submit func(values []string) error) *form {
	return &form{title: title, submit: submit}
}

func (f *form) add(label, value string) *form {
	i := textinput.New()
	i.Prompt = ""
	i.CharLimit = 64
	i.SetValue(value)
	i.CursorEnd()
	if len(f.fields) == 0 {
		i.Focus()
	}
	f.fields = append(f.fields, field{label: label, input: i})
	return f
}

// choose makes the last added field cycle through choices
func (f *form) choose(cycle func(step int) string) *form {
	f.fields[len(f.fields)-1].cycle = cycle
	return f
}

func (f *form) values() []string {
	out := make([]string, len(f.fields))
	for i, fl := range f.fields {
		out[i] = fl.input.Value()
	}
	return out
}

func (f *form) focusOn(i int) tea.Cmd {
	f.fields[f.focus].input.Blur()
	f.focus = i
	return f.fields[i].input.Focus()
}

func (f *form) last() bool {
	return f.focus == len(f.fields)-1
}

// update feeds a key to the focused field. It reports whether the key asks
// for the form to be submitted.
func (f *form) update(msg tea.KeyMsg) (tea.Cmd, bool) {
	fl := &f.fields[f.focus]
	switch msg.String() {
	case "enter":
		if f.last() {
			return nil, true
		}
		return f.focusOn(f.focus + 1), false
	case "shift+tab", "up":
		if f.focus > 0 {
			return f.focusOn(f.focus - 1), false
		}
		return nil, false
	case "ctrl+n", "ctrl+p":
		if fl.cycle == nil {
			return nil, false
		}
		step := 1
		if msg.String() == "ctrl+p" {
			step = -1
		}
		fl.input.SetValue(fl.cycle(step))
		fl.input.CursorEnd()
		return nil, false
	}
	var cmd tea.Cmd
	fl.input, cmd = fl.input.Update(msg)
	return cmd, false
}

func (f *form) View() string {
	fl := f.fields[f.focus]
	s := fmt.Sprintf("%s (%d/%d) %s: %s", formTitle.Render(f.title), f.focus+1, len(f.fields), fl.label, fl.input.View())
	if fl.cycle != nil {
		s += help.Render("  ctrl+n/ctrl+p to cycle")
	}
	return s
}
