package report

// Top is the result of a "most common" query: every key sharing the highest
// count, in the order they were first seen.
type Top[K comparable] struct {
	Keys  []K
	Count int
}

// Empty reports whether nothing was counted
func (t Top[K]) Empty() bool {
	return t.Count == 0
}

type tally[K comparable] struct {
	order  []K
	counts map[K]int
}

func newTally[K comparable](keys ...K) *tally[K] {
	t := &tally[K]{counts: map[K]int{}}
	for _, k := range keys {
		t.register(k)
	}
	return t
}

func (t *tally[K]) register(k K) {
	if _, ok := t.counts[k]; ok {
		return
	}
	t.order = append(t.order, k)
	t.counts[k] = 0
}

func (t *tally[K]) add(k K) {
	t.register(k)
	t.counts[k]++
}

func (t *tally[K]) top() Top[K] {
	var res Top[K]
	for _, k := range t.order {
		switch n := t.counts[k]; {
		case n == 0:
		case n > res.Count:
			res = Top[K]{Keys: []K{k}, Count: n}
		case n == res.Count:
			res.Keys = append(res.Keys, k)
		}
	}
	return res
}
