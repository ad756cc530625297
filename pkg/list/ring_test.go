package list

import (
	"testing"

	"github.com/matryer/is"
)

func TestRing_Get(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		is := is.New(t)
		r := NewRing[string]()
		_, ok := r.Get(0)
		is.True(!ok)
		_, ok = r.Get(-1)
		is.True(!ok)
	})

	r := NewRing[string]()
	r.Append("a")
	r.Append("b")
	r.Append("c")

	tests := []struct {
		index int
		want  string
	}{
		{0, "a"},
		{2, "c"},
		{3, "a"},
		{7, "b"},
		{-1, "c"},
		{-3, "a"},
		{-4, "c"},
	}
	for _, tt := range tests {
		is := is.New(t)
		got, ok := r.Get(tt.index)
		is.True(ok)
		is.Equal(got, tt.want)
	}
}

func TestRing_NextPrev(t *testing.T) {
	is := is.New(t)
	r := NewRing[int]()
	r.Append(10)
	r.Append(20)

	is.Equal(r.Next(0), 1)
	is.Equal(r.Next(1), 0)
	is.Equal(r.Prev(0), 1)
	is.Equal(r.Prev(1), 0)

	empty := NewRing[int]()
	is.Equal(empty.Next(5), 0)
}
