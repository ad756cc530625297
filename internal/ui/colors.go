package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/taskboard/pkg/task"
)

const (
	Background = lipgloss.Color("#000")

	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Blue   = lipgloss.Color("#4db7ff")
	Green  = lipgloss.Color("#00a352")
	Red    = lipgloss.Color("#c42912")
	Yellow = lipgloss.Color("#c4b810")
	Orange = lipgloss.Color("#c27510")
)

// ImportanceColor maps task importance to a foreground colour
func ImportanceColor(i task.Importance) lipgloss.Color {
	switch i {
	case task.High:
		return Red
	case task.Medium:
		return Yellow
	default:
		return Secondary
	}
}
