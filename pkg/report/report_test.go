package report

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/seed"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
	"github.com/td0m/taskboard/pkg/tracker"
)

const (
	fabian = 208620694
	ana    = 208620695
)

func demo(t *testing.T) (*tracker.Tracker, *Reporter) {
	t.Helper()
	tr := tracker.New(person.NewDirectory(), task.NewCatalog())
	if err := seed.Default(tr); err != nil {
		t.Fatal(err)
	}
	return tr, New(tr)
}

func sept(day int) date.Date {
	return date.MustNew(day, time.September, 2024)
}

func TestAgenda(t *testing.T) {
	is := is.New(t)
	_, r := demo(t)

	ts, err := r.Agenda(fabian)
	is.NoErr(err)
	var ids []int
	for _, tk := range ts {
		ids = append(ids, tk.ID)
	}
	is.Equal(ids, []int{1, 3, 4, 5, 2})

	_, err = r.Agenda(1)
	is.True(errors.Is(err, tracker.ErrPersonNotFound))
}

func TestIdle(t *testing.T) {
	is := is.New(t)
	tr, r := demo(t)
	is.Equal(len(r.Idle()), 0)

	for id := 1; id <= 5; id++ {
		is.NoErr(tr.CompleteTask(ana, id))
	}
	idle := r.Idle()
	is.Equal(len(idle), 1)
	is.Equal(idle[0].Name, "Ana")
	is.Equal(len(r.People()), 5)
}

func TestDueWithin(t *testing.T) {
	tests := []struct {
		name string
		from date.Date
		days int
		want int
	}{
		{"week from mid september", sept(15), DefaultDueWithin, 12},
		{"same day only", sept(15), 0, 2},
		{"nothing after", date.MustNew(1, time.October, 2024), DefaultDueWithin, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			_, r := demo(t)
			is.Equal(len(r.DueWithin(tt.from, tt.days)), tt.want)
		})
	}
}

func TestSubtasks(t *testing.T) {
	is := is.New(t)
	_, r := demo(t)

	subs, err := r.Subtasks(fabian, 1)
	is.NoErr(err)
	is.Equal(len(subs), 7)

	_, err = r.Subtasks(fabian, 99)
	is.True(errors.Is(err, tracker.ErrTaskNotFound))
}

func TestCompleted(t *testing.T) {
	is := is.New(t)
	_, r := demo(t)

	done, err := r.Completed(fabian)
	is.NoErr(err)
	is.Equal(len(done), 5)
	is.Equal(done[0].Description, "Examenes")
	is.Equal(len(r.AllCompleted()), 25)
}

func TestBusiest(t *testing.T) {
	is := is.New(t)
	_, r := demo(t)

	// everyone has five, the first one wins
	got, ok := r.Busiest()
	is.True(ok)
	is.Equal(got.Person.ID, fabian)
	is.Equal(got.Count, 5)

	got, ok = r.BusiestFor("Study")
	is.True(ok)
	is.Equal(got.Person.ID, fabian)
	is.Equal(got.Count, 2)

	got, ok = r.BusiestFor("Work")
	is.True(ok)
	is.Equal(got.Person.ID, ana)

	_, ok = r.BusiestFor("Gardening")
	is.True(!ok)
}

func TestMostOverdue(t *testing.T) {
	is := is.New(t)
	_, r := demo(t)

	got, ok := r.MostOverdue("Study", sept(10))
	is.True(ok)
	is.Equal(got.Person.ID, fabian)
	is.Equal(got.Count, 1)

	// strictly before: a task due on the date is not overdue
	_, ok = r.MostOverdue("Study", sept(1))
	is.True(!ok)
}

func TestCommon(t *testing.T) {
	is := is.New(t)
	_, r := demo(t)

	is.Equal(r.CommonTypes(), Top[string]{Keys: []string{"Study"}, Count: 6})
	is.Equal(r.CommonOverdueTypes(sept(13)), Top[string]{Keys: []string{"Study"}, Count: 3})
	is.True(r.CommonOverdueTypes(sept(1)).Empty())
	is.Equal(r.CommonImportances(), Top[task.Importance]{Keys: []task.Importance{task.Low}, Count: 10})

	// tie, first seen first
	is.Equal(r.CommonTypesFor(task.Medium), Top[string]{Keys: []string{"Study", "Exercise"}, Count: 4})
	is.Equal(r.CommonCompletedTypesFor(task.High), Top[string]{Keys: []string{"Work"}, Count: 4})
}

func TestTally(t *testing.T) {
	is := is.New(t)
	tl := newTally("a", "b", "c")
	is.True(tl.top().Empty())

	tl.add("c")
	tl.add("b")
	tl.add("d")
	is.Equal(tl.top(), Top[string]{Keys: []string{"b", "c", "d"}, Count: 1})
	tl.add("d")
	is.Equal(tl.top().Keys, []string{"d"})
}
