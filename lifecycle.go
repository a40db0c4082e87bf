package vec

// Lifecycle describes how a vector constructs, copies, moves and destroys
// its elements. The zero value treats elements as plain Go values: value
// construction yields the zero value, copies are assignments, moves are
// assignments that re-zero the source, destruction re-zeroes the slot.
//
// Hooks exist for element types that own external resources or need deep
// copies. Any hook may be nil to keep the plain-value behavior for that
// operation.
type Lifecycle[T any] struct {
	// New value-constructs an element. Used by NewSized and by Resize
	// growth. May fail; a failure rolls back the triggering operation.
	New func() (T, error)

	// Copy deep-copies an element. Used by PushBack/Insert to copy the
	// argument in, by Clone and CopyFrom, and for relocation when no Move
	// hook is set. May fail.
	Copy func(T) (T, error)

	// Move transfers an element out of src, leaving src emptied. The
	// signature makes moves infallible, which is what lets the vector
	// relocate by moving without losing the strong failure guarantee.
	Move func(src *T) T

	// Destroy tears an element down. It runs exactly once per constructed
	// element and must tolerate moved-from (emptied) values. The slot is
	// re-zeroed after the hook returns.
	Destroy func(*T)
}

// construct value-constructs one element.
func (lc Lifecycle[T]) construct() (T, error) {
	if lc.New != nil {
		return lc.New()
	}
	var zero T
	return zero, nil
}

// copyOf deep-copies v.
func (lc Lifecycle[T]) copyOf(v T) (T, error) {
	if lc.Copy != nil {
		return lc.Copy(v)
	}
	return v, nil
}

// moveOut transfers the element out of src and returns src to raw state.
func (lc Lifecycle[T]) moveOut(src *T) T {
	if lc.Move != nil {
		return lc.Move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v
}

// destroy tears down the element at p and returns the slot to raw state.
// Re-zeroing drops any references so the garbage collector can reclaim
// what the element pointed at.
func (lc Lifecycle[T]) destroy(p *T) {
	if lc.Destroy != nil {
		lc.Destroy(p)
	}
	var zero T
	*p = zero
}

// destroyRange destroys every slot in s, first to last.
func (lc Lifecycle[T]) destroyRange(s []T) {
	for i := range s {
		lc.destroy(&s[i])
	}
}

// movesOnRelocate reports whether relocation between storage blocks uses
// the move path. Moving is preferred when a Move hook exists (it cannot
// fail) or when no Copy hook exists (plain assignment, also infallible).
// Only a copyable type without a declared move relocates by copying: a
// copy can fail mid-range and still be rolled back, which preserves the
// strong guarantee.
func (lc Lifecycle[T]) movesOnRelocate() bool {
	return lc.Move != nil || lc.Copy == nil
}

// relocate transfers the live elements in src into the same positions of
// dst. len(dst) must equal len(src).
//
// On the move path src's slots are left emptied and the call cannot fail.
// On the copy path a mid-range failure destroys the elements this call
// already placed into dst and leaves src fully intact, so the caller can
// abandon dst without any state change.
func (lc Lifecycle[T]) relocate(src, dst []T) error {
	if lc.movesOnRelocate() {
		for i := range src {
			dst[i] = lc.moveOut(&src[i])
		}
		return nil
	}
	for i := range src {
		c, err := lc.Copy(src[i])
		if err != nil {
			lc.destroyRange(dst[:i])
			return err
		}
		dst[i] = c
	}
	return nil
}
