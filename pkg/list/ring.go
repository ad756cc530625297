package list

// Ring is a list whose positions wrap around: stepping past the last item
// lands on the first one and stepping before the first lands on the last.
type Ring[T any] struct {
	*List[T]
}

func NewRing[T any]() *Ring[T] {
	return &Ring[T]{List: New[T](nil)}
}

// Get returns the item at i modulo the ring length. Only an empty ring
// reports false.
func (r *Ring[T]) Get(i int) (T, bool) {
	var zero T
	if r.Len() == 0 {
		return zero, false
	}
	return r.List.Get(r.wrap(i))
}

// Next returns the position after i
func (r *Ring[T]) Next(i int) int {
	return r.wrap(i + 1)
}

// Prev returns the position before i
func (r *Ring[T]) Prev(i int) int {
	return r.wrap(i - 1)
}

func (r *Ring[T]) wrap(i int) int {
	n := r.Len()
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
