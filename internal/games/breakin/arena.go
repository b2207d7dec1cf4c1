package breakin

// Arena is a fixed-capacity collection with swap-remove.
// Removal moves the last element into the freed index, so order is not
// preserved across removals.
type Arena[T any] struct {
	items []T
}

// NewArena creates an arena that holds at most capacity items.
func NewArena[T any](capacity int) Arena[T] {
	return Arena[T]{items: make([]T, 0, capacity)}
}

// Len returns the live count.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Cap returns the capacity.
func (a *Arena[T]) Cap() int {
	return cap(a.items)
}

// Full reports whether no more items fit.
func (a *Arena[T]) Full() bool {
	return len(a.items) == cap(a.items)
}

// Add appends v. It returns false and drops v when the arena is full.
func (a *Arena[T]) Add(v T) bool {
	if a.Full() {
		return false
	}
	a.items = append(a.items, v)
	return true
}

// At returns a pointer to item i.
func (a *Arena[T]) At(i int) *T {
	return &a.items[i]
}

// Remove deletes item i by moving the last item into its place.
func (a *Arena[T]) Remove(i int) {
	last := len(a.items) - 1
	a.items[i] = a.items[last]
	var zero T
	a.items[last] = zero
	a.items = a.items[:last]
}

// Reset removes every item.
func (a *Arena[T]) Reset() {
	clear(a.items)
	a.items = a.items[:0]
}
