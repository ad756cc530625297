package commands

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/task"
)

func newTable(w io.Writer, headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	row := make(table.Row, len(headers))
	for i, h := range headers {
		row[i] = text.FgGreen.Sprint(h)
	}
	t.AppendHeader(row)
	return t
}

func importance(i task.Importance) string {
	switch i {
	case task.High:
		return text.FgHiRed.Sprint(i)
	case task.Medium:
		return text.FgHiYellow.Sprint(i)
	default:
		return i.String()
	}
}

func taskRow(t *task.Task) table.Row {
	return table.Row{t.ID, t.Description, importance(t.Importance), t.Due(), t.TypeName(), subtasks(t)}
}

var taskHeaders = []string{"ID", "Description", "Importance", "Due", "Type", "Subtasks"}

func subtasks(t *task.Task) string {
	n := t.Subtasks.Len()
	if n == 0 {
		return ""
	}
	done := t.Subtasks.Filter(func(s *task.SubTask) bool { return s.Completed() }).Len()
	return strconv.Itoa(done) + "/" + strconv.Itoa(n)
}

func renderTasks(w io.Writer, ts []*task.Task) {
	t := newTable(w, taskHeaders...)
	for _, tk := range ts {
		t.AppendRow(taskRow(tk))
	}
	t.Render()
}

func renderPeople(w io.Writer, ps []*person.Person) {
	t := newTable(w, "ID", "Name", "Age", "Active", "Completed")
	for _, p := range ps {
		t.AppendRow(table.Row{p.ID, p.FullName(), p.Age, p.Active.Len(), p.Completed.Len()})
	}
	t.Render()
}
