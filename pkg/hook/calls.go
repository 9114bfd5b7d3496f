package hook

import "iter"

// Calls is the ordered, single-pass sequence of pending calls for one
// dispatch. Its length is known up front and it can be consumed from either
// end. An implementation runs only when its value is pulled.
//
// A Calls value is not safe for concurrent use.
type Calls[T any] struct {
	thunks []func() T
	front  int
	back   int
}

func newCalls[F, T any](impls []Impl[F], call func(F) T) *Calls[T] {
	thunks := make([]func() T, len(impls))
	for i, impl := range impls {
		fn := impl.Fn
		thunks[i] = func() T { return call(fn) }
	}
	return &Calls[T]{thunks: thunks, back: len(thunks)}
}

// Len returns the number of calls not yet consumed
func (c *Calls[T]) Len() int {
	return c.back - c.front
}

// Next runs the next call from the front
func (c *Calls[T]) Next() (T, bool) {
	if c.front >= c.back {
		var zero T
		return zero, false
	}
	thunk := c.thunks[c.front]
	c.front++
	return thunk(), true
}

// NextBack runs the next call from the back
func (c *Calls[T]) NextBack() (T, bool) {
	if c.front >= c.back {
		var zero T
		return zero, false
	}
	c.back--
	return c.thunks[c.back](), true
}

// All yields the remaining calls front to back, consuming them
func (c *Calls[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward yields the remaining calls back to front, consuming them
func (c *Calls[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
