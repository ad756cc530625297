// Package person holds the people tasks are assigned to.
package person

import (
	"fmt"

	"github.com/td0m/taskboard/pkg/list"
	"github.com/td0m/taskboard/pkg/task"
)

type Person struct {
	ID       int
	Name     string
	Lastname string
	Age      int

	// Active and Completed own the person's tasks. Each list numbers its
	// tasks independently.
	Active    *list.List[*task.Task]
	Completed *list.List[*task.Task]
}

func New(id int, name, lastname string, age int) *Person {
	return &Person{
		ID:        id,
		Name:      name,
		Lastname:  lastname,
		Age:       age,
		Active:    task.NewList(),
		Completed: task.NewList(),
	}
}

func (p *Person) FullName() string {
	return p.Name + " " + p.Lastname
}

func (p *Person) String() string {
	return fmt.Sprintf("%s: %d", p.FullName(), p.ID)
}

// Directory is the ordered set of people, keyed by person id. Ids are
// expected to be unique; the directory does not check.
type Directory struct {
	*list.List[*Person]
}

func NewDirectory() *Directory {
	return &Directory{List: list.New(func(p *Person) int { return p.ID })}
}

// Insert creates a person with empty task lists and appends it
func (d *Directory) Insert(id int, name, lastname string, age int) *Person {
	p := New(id, name, lastname, age)
	d.Append(p)
	return p
}
