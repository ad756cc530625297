// Package report answers read-only questions about the people in a tracker
// and their tasks. Nothing here mutates state.
package report

import (
	"fmt"

	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
	"github.com/td0m/taskboard/pkg/tracker"
)

// DefaultDueWithin is the look-ahead window, in days, of DueWithin
const DefaultDueWithin = 7

// Assignment pairs a task with the person holding it
type Assignment struct {
	Person *person.Person
	Task   *task.Task
}

// Ranked is the outcome of a "which person has the most" query
type Ranked struct {
	Person *person.Person
	Count  int
}

// Reporter runs reports over a tracker
type Reporter struct {
	tr *tracker.Tracker
}

func New(tr *tracker.Tracker) *Reporter {
	return &Reporter{tr: tr}
}

func (r *Reporter) Types() []*task.Type {
	return r.tr.Types.Items()
}

func (r *Reporter) People() []*person.Person {
	return r.tr.People.Items()
}

// Idle lists people without active tasks
func (r *Reporter) Idle() []*person.Person {
	return r.tr.People.Filter(func(p *person.Person) bool {
		return p.Active.Len() == 0
	}).Items()
}

// Agenda returns the active tasks of a person, earliest due first
func (r *Reporter) Agenda(personID int) ([]*task.Task, error) {
	p, err := r.tr.Person(personID)
	if err != nil {
		return nil, err
	}
	return p.Active.SortedBy(task.ByDue).Items(), nil
}

// DueWithin lists active tasks due between from and days later, both ends
// included.
func (r *Reporter) DueWithin(from date.Date, days int) []Assignment {
	return r.active(func(t *task.Task) bool {
		n := from.DaysUntil(t.Date)
		return n >= 0 && n <= days
	})
}

// Subtasks returns the subtasks of a task, looked up among active tasks
// first and then among completed ones.
func (r *Reporter) Subtasks(personID, taskID int) ([]*task.SubTask, error) {
	p, err := r.tr.Person(personID)
	if err != nil {
		return nil, err
	}
	t, ok := p.Active.FindByID(taskID)
	if !ok {
		t, ok = p.Completed.FindByID(taskID)
	}
	if !ok {
		return nil, fmt.Errorf("%w: id %d", tracker.ErrTaskNotFound, taskID)
	}
	return t.Subtasks.Items(), nil
}

func (r *Reporter) Completed(personID int) ([]*task.Task, error) {
	p, err := r.tr.Person(personID)
	if err != nil {
		return nil, err
	}
	return p.Completed.Items(), nil
}

// AllCompleted lists the completed tasks of everyone, person by person
func (r *Reporter) AllCompleted() []Assignment {
	var out []Assignment
	for _, p := range r.tr.People.Items() {
		for _, t := range p.Completed.Items() {
			out = append(out, Assignment{Person: p, Task: t})
		}
	}
	return out
}

// Busiest finds the person with most active tasks. On ties the first
// person wins. ok is false when nobody has active tasks.
func (r *Reporter) Busiest() (Ranked, bool) {
	return r.rank(func(*task.Task) bool { return true })
}

// BusiestFor is Busiest counting only tasks of the named type
func (r *Reporter) BusiestFor(typeName string) (Ranked, bool) {
	return r.rank(func(t *task.Task) bool { return t.TypeName() == typeName })
}

// MostOverdue finds the person with most active tasks of the named type due
// strictly before the given date.
func (r *Reporter) MostOverdue(typeName string, before date.Date) (Ranked, bool) {
	return r.rank(func(t *task.Task) bool {
		return t.TypeName() == typeName && t.Date.Before(before)
	})
}

// CommonTypes returns the most frequent type(s) among active tasks
func (r *Reporter) CommonTypes() Top[string] {
	return r.types(r.active(nil))
}

// CommonOverdueTypes returns the most frequent type(s) among active tasks due
// strictly before the given date.
func (r *Reporter) CommonOverdueTypes(before date.Date) Top[string] {
	return r.types(r.active(func(t *task.Task) bool { return t.Date.Before(before) }))
}

// CommonImportances returns the most frequent importance level(s) among
// active tasks. Ties are listed from High to Low.
func (r *Reporter) CommonImportances() Top[task.Importance] {
	t := newTally(task.Importances...)
	for _, a := range r.active(nil) {
		t.add(a.Task.Importance)
	}
	return t.top()
}

// CommonTypesFor returns the most frequent type(s) among active tasks of the
// given importance.
func (r *Reporter) CommonTypesFor(i task.Importance) Top[string] {
	return r.types(r.active(func(t *task.Task) bool { return t.Importance == i }))
}

// CommonCompletedTypesFor returns the most frequent type(s) among completed
// tasks of the given importance.
func (r *Reporter) CommonCompletedTypesFor(i task.Importance) Top[string] {
	var matched []Assignment
	for _, a := range r.AllCompleted() {
		if a.Task.Importance == i {
			matched = append(matched, a)
		}
	}
	return r.types(matched)
}

// active walks the active tasks of everyone. A nil keep matches all.
func (r *Reporter) active(keep func(*task.Task) bool) []Assignment {
	var out []Assignment
	for _, p := range r.tr.People.Items() {
		for _, t := range p.Active.Items() {
			if keep == nil || keep(t) {
				out = append(out, Assignment{Person: p, Task: t})
			}
		}
	}
	return out
}

func (r *Reporter) types(as []Assignment) Top[string] {
	t := newTally[string]()
	for _, a := range as {
		t.add(a.Task.TypeName())
	}
	return t.top()
}

func (r *Reporter) rank(count func(*task.Task) bool) (Ranked, bool) {
	var best Ranked
	for _, p := range r.tr.People.Items() {
		n := p.Active.Filter(count).Len()
		if n > best.Count {
			best = Ranked{Person: p, Count: n}
		}
	}
	return best, best.Count > 0
}
