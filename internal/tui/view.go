package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/taskboard/internal/ui"
)

var (
	statusOK   = lipgloss.NewStyle().Foreground(ui.Green)
	statusErr  = lipgloss.NewStyle().Foreground(ui.Red)
	help       = lipgloss.NewStyle().Foreground(ui.Faded)
	typeMarker = lipgloss.NewStyle().Foreground(ui.Blue).Bold(true)
)

const (
	keys     = "h/l person • j/k move • tab view • enter subtasks • c complete • +/- progress • d due • x delete • a task • s subtask • p/P person • [/] types • t new type • q quit"
	formKeys = "enter next/save • shift+tab back • esc cancel"
)

func (m *Model) render() {
	m.viewport.SetContent(m.viewBody())
}

func (m *Model) viewBody() string {
	if m.tabs.Value() == tabTypes {
		return m.viewTypes()
	}
	if len(m.rows) == 0 {
		return help.Render("  nothing here")
	}
	completed := m.tabs.Value() == tabCompleted
	var b strings.Builder
	for i, r := range m.rows {
		selected := i == m.cursor
		if r.sub < 0 {
			b.WriteString(ui.TaskLine(r.task, m.today, selected, completed))
		} else if s, ok := r.task.Subtasks.Get(r.sub); ok {
			b.WriteString(ui.SubTaskLine(s, selected))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewTypes() string {
	var b strings.Builder
	for i, t := range m.tr.Types.Items() {
		marker := "  "
		if i == m.typeAt {
			marker = typeMarker.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(ui.TaskIcon.Render(string(ui.Icon(t.Name))))
		b.WriteString(ui.TaskTitle.Render(t.Name))
		if t.Description != "" {
			b.WriteString(ui.TaskDivider + help.Render(t.Description))
		}
		if t.Name == m.tr.StudyType() {
			b.WriteString(ui.TaskDivider + help.Render("takes subtasks"))
		}
		b.WriteString("\n")
	}
	if t, ok := m.tr.Types.Get(m.typeAt); ok {
		b.WriteString("\n  ")
		if r, ok := m.reports.BusiestFor(t.Name); ok {
			b.WriteString(fmt.Sprintf("most %s tasks: %s (%d)", t.Name, r.Person.FullName(), r.Count))
		} else {
			b.WriteString(help.Render("no active " + t.Name + " tasks"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) info() string {
	p, ok := m.current()
	if !ok {
		return "no people"
	}
	return fmt.Sprintf("%s (%d/%d)", p, m.person+1, m.tr.People.Len())
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m *Model) View() string {
	m.tabs.Info = m.info()
	statusline := ""
	footer := keys
	switch {
	case m.mode == modeDue:
		statusline = m.due.View()
	case m.mode == modeForm:
		statusline = m.form.View()
		if m.failed {
			statusline += " " + statusErr.Render(m.status)
		}
		footer = formKeys
	case m.status != "" && m.failed:
		statusline = statusErr.Render(m.status)
	case m.status != "":
		statusline = statusOK.Render(m.status)
	}
	return m.tabs.View() + m.viewport.View() + "\n" + statusline + "\n" + help.Render(footer)
}
