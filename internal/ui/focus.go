package ui

// FocusRing tracks and rotates focus across a fixed set of targets: the
// screen zones of the app and the fields of the term form.
type FocusRing[T comparable] struct {
	Current  T   // currently focused target
	Order    []T // rotation order
	OnChange func(from, to T)
}

// NewFocusRing creates a ring focused on the first target of order.
func NewFocusRing[T comparable](order ...T) *FocusRing[T] {
	r := &FocusRing[T]{Order: order}
	if len(order) > 0 {
		r.Current = order[0]
	}
	return r
}

// Next advances focus to the next target in order.
// Returns the new current target.
func (f *FocusRing[T]) Next() T {
	return f.step(1)
}

// Prev moves focus to the previous target in order.
func (f *FocusRing[T]) Prev() T {
	return f.step(-1)
}

func (f *FocusRing[T]) step(delta int) T {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := f.index()
	if idx < 0 {
		// Unknown current: Next lands on the first target, Prev on the last.
		if delta > 0 {
			idx = -1
		} else {
			idx = 0
		}
	}
	n := len(f.Order)
	f.move(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus sets focus to target.
// Returns true if target is part of the ring.
func (f *FocusRing[T]) SetFocus(target T) bool {
	for _, o := range f.Order {
		if o == target {
			f.move(target)
			return true
		}
	}
	return false
}

// index returns the position of the current target, or -1.
func (f *FocusRing[T]) index() int {
	for i, o := range f.Order {
		if o == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusRing[T]) move(to T) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
