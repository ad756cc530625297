package list

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

type item struct {
	id   int
	name string
}

func newItems(names ...string) *List[*item] {
	l := New(func(i *item) int { return i.id })
	for i, n := range names {
		l.Append(&item{id: i + 1, name: n})
	}
	return l
}

func TestList_Append(t *testing.T) {
	is := is.New(t)
	l := newItems()
	for i := 1; i <= 3; i++ {
		it := &item{id: i}
		l.Append(it)
		is.Equal(l.Len(), i)
		last, ok := l.Get(-1)
		is.True(ok)
		is.Equal(last, it)
	}
}

func TestList_Get(t *testing.T) {
	t.Run("empty list never finds anything", func(t *testing.T) {
		is := is.New(t)
		l := newItems()
		for _, i := range []int{-2, -1, 0, 1, 100} {
			_, ok := l.Get(i)
			is.True(!ok)
		}
	})

	l := newItems("a", "b", "c")
	tests := []struct {
		index  int
		want   string
		wantOK bool
	}{
		{0, "a", true},
		{1, "b", true},
		{2, "c", true},
		{-1, "c", true},
		{3, "", false},
		{-2, "", false},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.index), func(t *testing.T) {
			is := is.New(t)
			got, ok := l.Get(tt.index)
			is.Equal(ok, tt.wantOK)
			if ok {
				is.Equal(got.name, tt.want)
			}
		})
	}
}

func TestList_FindByID(t *testing.T) {
	is := is.New(t)
	l := newItems("a", "b", "c")

	got, ok := l.FindByID(2)
	is.True(ok)
	is.Equal(got.name, "b")

	_, ok = l.FindByID(42)
	is.True(!ok)

	// positional lists cannot be searched by id
	p := New[*item](nil)
	p.Append(&item{id: 1})
	_, ok = p.FindByID(1)
	is.True(!ok)
}

func TestList_RemoveByID(t *testing.T) {
	t.Run("removes and returns the item", func(t *testing.T) {
		is := is.New(t)
		l := newItems("a", "b", "c")
		got, ok := l.RemoveByID(2)
		is.True(ok)
		is.Equal(got.name, "b")
		is.Equal(l.Len(), 2)
		is.Equal(l.String(func(i *item) string { return i.name }), "a, c")
	})

	t.Run("missing id leaves list unchanged", func(t *testing.T) {
		is := is.New(t)
		l := newItems("a", "b")
		_, ok := l.RemoveByID(7)
		is.True(!ok)
		is.Equal(l.Len(), 2)
	})
}

func TestList_Filter(t *testing.T) {
	is := is.New(t)
	l := newItems("apple", "bean", "avocado", "corn")
	before := l.Items()

	view := l.Filter(func(i *item) bool { return i.name[0] == 'a' })
	is.Equal(view.Len(), 2)
	first, _ := view.Get(0)
	second, _ := view.Get(1)
	is.Equal(first, before[0]) // same reference, not a copy
	is.Equal(second, before[2])

	// source untouched
	is.Equal(l.Len(), 4)
	is.Equal(l.Items(), before)

	none := l.Filter(func(*item) bool { return false })
	is.Equal(none.Len(), 0)
	is.Equal(l.Len(), 4)

	// view keeps id lookups
	got, ok := view.FindByID(3)
	is.True(ok)
	is.Equal(got.name, "avocado")
}

func TestList_SortedBy(t *testing.T) {
	is := is.New(t)
	l := newItems("c", "a", "b")
	sorted := l.SortedBy(func(a, b *item) int {
		switch {
		case a.name < b.name:
			return -1
		case a.name > b.name:
			return 1
		}
		return 0
	})
	name := func(i *item) string { return i.name }
	is.Equal(sorted.String(name), "a, b, c")
	is.Equal(l.String(name), "c, a, b")
}

func TestList_String(t *testing.T) {
	is := is.New(t)
	l := New[int](nil)
	is.Equal(l.String(nil), "")
	l.Append(1)
	l.Append(2)
	is.Equal(l.String(nil), "1, 2")
	is.Equal(l.String(func(i int) string { return "#" + strconv.Itoa(i) }), "#1, #2")
	// restartable
	is.Equal(l.String(nil), "1, 2")
}

func TestList_Index(t *testing.T) {
	is := is.New(t)
	l := newItems("a", "b")
	is.Equal(l.Index(func(i *item) bool { return i.name == "b" }), 1)
	is.Equal(l.Index(func(i *item) bool { return i.name == "z" }), -1)
}
