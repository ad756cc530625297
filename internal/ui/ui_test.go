package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
)

func TestTabs(t *testing.T) {
	is := is.New(t)
	tabs := NewTabs([]string{"Active", "Completed", "Types"})
	tabs.Set(5)
	is.Equal(tabs.Value(), 2)
	tabs.Next()
	is.Equal(tabs.Value(), 0)
	tabs.Set(-1)
	is.Equal(tabs.Value(), 0)
	is.True(strings.Contains(tabs.View(), "Completed"))
}

func TestFormatDue(t *testing.T) {
	today := date.MustNew(30, time.December, 2024)
	tests := []struct {
		days  int
		want  string
		color string
	}{
		{0, "today", string(Orange)},
		{1, "1 day", string(Orange)},
		{-3, "3 days late", string(Red)},
		{10, "10 days", string(Yellow)},
		{21, "3 weeks", string(Faded)},
		{93, "3 months", string(Faded)},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			is := is.New(t)
			due := today.AddDays(tt.days)
			is.Equal(FormatDue(today, due), tt.want)
			is.Equal(string(DueColor(today, due)), tt.color)
		})
	}
}

func TestProgressBar(t *testing.T) {
	is := is.New(t)
	bar := ProgressBar(50, 10)
	is.Equal(strings.Count(bar, "█"), 5)
	is.Equal(strings.Count(bar, "░"), 5)
	is.Equal(strings.Count(ProgressBar(100, 4), "█"), 4)
}

func TestLines(t *testing.T) {
	is := is.New(t)
	today := date.MustNew(1, time.September, 2024)
	tk := task.New("Examenes", task.Medium, today, date.Clock{Hour: 12}, &task.Type{Name: "Study"})
	tk.ID = 3
	s, _ := task.NewSubTask("Calculo", "ultimo tema", 65)
	tk.Subtasks.Append(s)

	line := TaskLine(tk, today, true, false)
	is.True(strings.Contains(line, "#3 Examenes"))
	is.True(strings.Contains(line, "today"))
	is.True(strings.Contains(line, "1 subtask"))

	sub := SubTaskLine(s, false)
	is.True(strings.Contains(sub, "Calculo"))
	is.True(strings.Contains(sub, "65.0%"))
	is.True(strings.Contains(sub, "ultimo tema"))
}
