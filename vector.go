package vec

import "iter"

// Vector is a resizable, contiguous, randomly-indexable sequence of T built
// on manually managed raw slot storage. It owns exactly one rawBlock at a
// time plus a live-element count; elements at indices [0, Len()) are live,
// slots [Len(), Cap()) are raw. Not goroutine-safe; callers needing
// concurrent access must synchronize externally.
type Vector[T any] struct {
	data rawBlock[T]
	size int
	lc   Lifecycle[T]
}

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithLifecycle sets the element lifecycle hooks.
func WithLifecycle[T any](lc Lifecycle[T]) Option[T] {
	return func(v *Vector[T]) {
		v.lc = lc
	}
}

// New creates an empty vector with capacity 0.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewSized creates a vector holding size value-constructed elements in
// exactly-sized storage. A construction failure destroys the elements
// built so far and returns the error; nothing is leaked.
func NewSized[T any](size int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	data, err := newRawBlock[T](size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		val, err := v.lc.construct()
		if err != nil {
			v.lc.destroyRange(data.view(0, i))
			data.release()
			return nil, err
		}
		data.slots[i] = val
	}
	v.data.swap(&data)
	v.size = size
	return v, nil
}

// Take move-constructs a vector from src, stealing its storage, size and
// lifecycle. src is left empty with capacity 0 and remains usable.
func Take[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{lc: src.lc}
	v.data.swap(&src.data)
	v.size, src.size = src.size, 0
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the capacity of the owned storage in elements.
func (v *Vector[T]) Cap() int {
	return v.data.cap()
}

// At returns the address of the live element at index i, for reading or
// writing in place. Indices outside [0, Len()) are a contract violation
// and panic.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.data.slot(i)
}

// All returns an index/value iterator over the live elements. The
// sequence is restartable; it is invalidated by any reallocating or
// shifting operation on v.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live elements. Same
// invalidation rules as All.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.slots[i]) {
				return
			}
		}
	}
}

// Swap exchanges all owned state with other in constant time. Storage and
// size always travel together.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.swap(&other.data)
	v.size, other.size = other.size, v.size
	v.lc, other.lc = other.lc, v.lc
}

// MoveFrom move-assigns from src by swapping all owned state. Constant
// time, cannot fail. src ends up holding the receiver's previous state,
// valid but unspecified as far as callers are concerned.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v != src {
		v.Swap(src)
	}
}

// Clone copy-constructs a deep copy of v in exactly-sized storage. A copy
// failure destroys the partially built copy and returns the error, leaving
// v untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{lc: v.lc}
	data, err := newRawBlock[T](v.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < v.size; i++ {
		val, err := v.lc.copyOf(v.data.slots[i])
		if err != nil {
			v.lc.destroyRange(data.view(0, i))
			data.release()
			return nil, err
		}
		data.slots[i] = val
	}
	c.data.swap(&data)
	c.size = v.size
	return c, nil
}

// CopyFrom copy-assigns from src.
//
// When src has more live elements than the receiver has capacity, a full
// deep copy of src is built first and swapped in, so a failure leaves the
// receiver untouched (strong guarantee). Otherwise elements are overwritten
// in place: the overlapping prefix is copied element-wise, then either the
// receiver's extra tail is destroyed or src's extra elements are
// copy-constructed into the spare capacity. A copy failure on the in-place
// path leaves already-overwritten prefix elements in place (basic
// guarantee, matching the staged nature of in-place assignment).
//
// The receiver keeps its own lifecycle hooks either way; CopyFrom assumes
// both vectors use equivalent hooks for the element type.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.data.cap() {
		c, err := src.Clone()
		if err != nil {
			return err
		}
		// Adopt the copy's storage and size but keep the receiver's hooks;
		// the receiver's old elements are torn down with the hooks that
		// created them.
		c.lc = v.lc
		v.data.swap(&c.data)
		v.size, c.size = c.size, v.size
		c.Release()
		return nil
	}
	overlap := min(v.size, src.size)
	for i := 0; i < overlap; i++ {
		val, err := v.lc.copyOf(src.data.slots[i])
		if err != nil {
			return err
		}
		v.lc.destroy(v.data.slot(i))
		v.data.slots[i] = val
	}
	if v.size > src.size {
		v.lc.destroyRange(v.data.view(src.size, v.size))
	} else {
		for i := v.size; i < src.size; i++ {
			val, err := v.lc.copyOf(src.data.slots[i])
			if err != nil {
				v.lc.destroyRange(v.data.view(v.size, i))
				return err
			}
			v.data.slots[i] = val
		}
	}
	v.size = src.size
	return nil
}

// Release destroys all live elements and drops the storage. The vector
// reverts to empty with capacity 0 and remains usable. Calling Release on
// an already-empty vector is a no-op.
func (v *Vector[T]) Release() {
	v.lc.destroyRange(v.live())
	v.size = 0
	v.data.release()
}

// live returns the window of live slots [0, size).
func (v *Vector[T]) live() []T {
	return v.data.view(0, v.size)
}
