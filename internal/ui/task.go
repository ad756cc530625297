package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
)

var (
	TaskIcon     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	TaskTitle    = lipgloss.NewStyle().Bold(true)
	SubTaskTitle = lipgloss.NewStyle().Foreground(Secondary)

	TaskDivider = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1).Render("∙")
	Selected    = lipgloss.NewStyle().Background(Faded)

	barFilled = lipgloss.NewStyle().Foreground(Green)
	barEmpty  = lipgloss.NewStyle().Foreground(Faded)
)

var icons = map[string]rune{
	"Study":    '📚',
	"Work":     '👔',
	"Home":     '🧹',
	"Exercise": '🏃',
	"Leisure":  '🎮',
}

// Icon returns the glyph shown before tasks of the named type
func Icon(typeName string) rune {
	if r, ok := icons[typeName]; ok {
		return r
	}
	return '∙'
}

// DueColor colours a due date by how close it is to today
func DueColor(today, due date.Date) lipgloss.Color {
	switch days := today.DaysUntil(due); {
	case days < 0:
		return Red
	case days <= 2:
		return Orange
	case days <= 14:
		return Yellow
	default:
		return Faded
	}
}

// FormatDue describes due relative to today
func FormatDue(today, due date.Date) string {
	switch days := today.DaysUntil(due); {
	case days == 0:
		return "today"
	case days < 0:
		return plural(-days, "day") + " late"
	case days < 14:
		return plural(days, "day")
	// max 1 month
	case days <= 31:
		return plural(days/7, "week")
	default:
		return plural(days/31, "month")
	}
}

func plural(n int, unit string) string {
	s := strconv.Itoa(n) + " " + unit
	if n > 1 {
		s += "s"
	}
	return s
}

// ProgressBar draws p (0 to 100) as a bar of the given width
func ProgressBar(p float64, width int) string {
	filled := int(p / task.Complete * float64(width))
	filled = min(max(filled, 0), width)
	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled))
}

// TaskLine renders one task row. Completed tasks are struck through.
func TaskLine(t *task.Task, today date.Date, selected, completed bool) string {
	title := TaskTitle.Foreground(ImportanceColor(t.Importance))
	if selected {
		title = title.Inherit(Selected)
	}
	if completed {
		title = title.Strikethrough(true)
	}
	s := TaskIcon.Render(string(Icon(t.TypeName())))
	s += title.Render(fmt.Sprintf("#%d %s", t.ID, t.Description))
	s += TaskDivider
	s += lipgloss.NewStyle().Foreground(Secondary).Render(t.Importance.String())
	s += TaskDivider
	due := t.Due()
	if completed {
		s += lipgloss.NewStyle().Foreground(Faded).Render(due.String())
	} else {
		s += lipgloss.NewStyle().Foreground(DueColor(today, due.Date)).
			Render(due.String() + " (" + FormatDue(today, due.Date) + ")")
	}
	if n := t.Subtasks.Len(); n > 0 {
		s += TaskDivider + SubTaskTitle.Render(plural(n, "subtask"))
	}
	return s
}

// SubTaskLine renders a subtask row, indented below its task
func SubTaskLine(s *task.SubTask, selected bool) string {
	title := SubTaskTitle
	if selected {
		title = title.Inherit(Selected)
	}
	if s.Completed() {
		title = title.Strikethrough(true)
	}
	line := "      " + title.Render(s.Name) + " " + ProgressBar(s.Progress(), 20) +
		fmt.Sprintf(" %5.1f%%", s.Progress())
	if s.Comments != "" {
		line += TaskDivider + lipgloss.NewStyle().Foreground(Faded).Render(s.Comments)
	}
	return line
}
