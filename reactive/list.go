package reactive

// list is the underlying target behind a sequence-shaped handle. The list
// owns its items; the slice the caller wrapped is only the seed. Keeping
// ownership here means structural methods can grow the sequence without the
// identity of the target ever changing.
type list struct {
	items []any

	// origin is the identity of the raw slice this list was promoted from,
	// used to evict the promotion cache on Release.
	origin uintptr
}

func newList(items []any) *list {
	owned := make([]any, len(items))
	copy(owned, items)
	return &list{items: owned}
}

func (l *list) len() int { return len(l.items) }

func (l *list) at(i int) (any, bool) {
	if i < 0 || i >= len(l.items) {
		return nil, false
	}
	return l.items[i], true
}

// setAt writes slot i, growing the list with nils when i is past the end.
func (l *list) setAt(i int, v any) {
	for len(l.items) <= i {
		l.items = append(l.items, nil)
	}
	l.items[i] = v
}

func (l *list) setLen(n int) {
	if n < 0 {
		n = 0
	}
	for len(l.items) < n {
		l.items = append(l.items, nil)
	}
	l.items = l.items[:n]
}
