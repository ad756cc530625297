package task

import (
	"github.com/td0m/taskboard/pkg/list"
)

// Type is a category of tasks, such as "Study" or "Work"
type Type struct {
	Name        string
	Description string
}

func (t *Type) String() string {
	return t.Name
}

// Catalog holds the known task types. Browsing it wraps around at both ends.
type Catalog struct {
	*list.Ring[*Type]
}

func NewCatalog() *Catalog {
	return &Catalog{Ring: list.NewRing[*Type]()}
}

// Insert appends a new type and returns it
func (c *Catalog) Insert(name, description string) *Type {
	t := &Type{Name: name, Description: description}
	c.Append(t)
	return t
}

// Find looks a type up by name
func (c *Catalog) Find(name string) (*Type, bool) {
	i := c.Index(func(t *Type) bool { return t.Name == name })
	if i < 0 {
		return nil, false
	}
	return c.List.Get(i)
}
