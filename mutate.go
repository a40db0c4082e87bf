package vec

// Reserve grows the storage to exactly newCapacity elements. A no-op when
// newCapacity <= Cap(). Live elements are relocated per the lifecycle's
// relocation policy. Size never changes. Strong guarantee: on error the
// vector is untouched.
func (v *Vector[T]) Reserve(newCapacity int) error {
	if newCapacity <= v.data.cap() {
		return nil
	}
	data, err := newRawBlock[T](newCapacity)
	if err != nil {
		return err
	}
	if err := v.lc.relocate(v.live(), data.view(0, v.size)); err != nil {
		data.release()
		return err
	}
	v.adopt(&data)
	return nil
}

// Resize sets the live count to newSize.
//
// Shrinking destroys the elements in [newSize, Len()) and never
// reallocates or fails. Growing ensures capacity via Reserve, then
// value-constructs the elements in [Len(), newSize); a mid-range
// construction failure destroys the elements just built and returns the
// error with the size unchanged (a capacity increase from the successful
// reserve may persist). Negative sizes are a contract violation and panic.
func (v *Vector[T]) Resize(newSize int) error {
	if newSize < 0 {
		panic("vec: negative size")
	}
	if newSize <= v.size {
		v.lc.destroyRange(v.data.view(newSize, v.size))
		v.size = newSize
		return nil
	}
	if err := v.Reserve(newSize); err != nil {
		return err
	}
	for i := v.size; i < newSize; i++ {
		val, err := v.lc.construct()
		if err != nil {
			v.lc.destroyRange(v.data.view(v.size, i))
			return err
		}
		v.data.slots[i] = val
	}
	v.size = newSize
	return nil
}

// PushBack appends a copy of value and returns the stored element's
// address. Strong guarantee: on error the vector is untouched.
func (v *Vector[T]) PushBack(value T) (*T, error) {
	return v.EmplaceBack(func() (T, error) { return v.lc.copyOf(value) })
}

// EmplaceBack appends one element built by construct, growing the storage
// geometrically (1, 2, 4, ...) when full. A nil construct value-constructs
// the element. Returns the stored element's address.
//
// On growth the new element is built first, directly into its final slot
// in the new block; a construction failure discards the new block with the
// vector untouched, and a relocation failure additionally destroys the new
// element before propagating. Strong guarantee either way.
func (v *Vector[T]) EmplaceBack(construct func() (T, error)) (*T, error) {
	if construct == nil {
		construct = v.lc.construct
	}
	if v.size < v.data.cap() {
		val, err := construct()
		if err != nil {
			return nil, err
		}
		v.data.slots[v.size] = val
		v.size++
		return v.data.slot(v.size - 1), nil
	}
	data, err := newRawBlock[T](v.grownCapacity())
	if err != nil {
		return nil, err
	}
	val, err := construct()
	if err != nil {
		data.release()
		return nil, err
	}
	data.slots[v.size] = val
	if err := v.lc.relocate(v.live(), data.view(0, v.size)); err != nil {
		v.lc.destroy(data.slot(v.size))
		data.release()
		return nil, err
	}
	v.adopt(&data)
	v.size++
	return v.data.slot(v.size - 1), nil
}

// PopBack destroys the last live element. A no-op when empty. Never
// reallocates, never fails.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.lc.destroy(v.data.slot(v.size - 1))
	v.size--
}

// Insert inserts a copy of value immediately before position i; i == Len()
// appends. Positions outside [0, Len()] are a non-failing no-op returning
// Len(). On success returns the index of the inserted element.
func (v *Vector[T]) Insert(i int, value T) (int, error) {
	return v.Emplace(i, func() (T, error) { return v.lc.copyOf(value) })
}

// Emplace inserts one element built by construct immediately before
// position i; i == Len() appends. Positions outside [0, Len()] are a
// non-failing no-op returning Len(). A nil construct value-constructs the
// element. On error the returned position is Len().
//
// When growth is required the insert is staged into the new block: the new
// element at its final index, then the prefix [0, i), then the suffix
// shifted right by one. Each stage rolls back everything the blown insert
// already placed, so a failure leaves the vector untouched. Without growth
// the element is built into a temporary first (a failure there changes
// nothing), then the tail is shifted right one slot, last to first, and
// the temporary moved into the vacated slot; the shift uses only
// infallible moves, so it cannot fail partway.
func (v *Vector[T]) Emplace(i int, construct func() (T, error)) (int, error) {
	if i < 0 || i > v.size {
		return v.size, nil
	}
	if construct == nil {
		construct = v.lc.construct
	}
	if v.size < v.data.cap() {
		val, err := construct()
		if err != nil {
			return v.size, err
		}
		for j := v.size; j > i; j-- {
			v.data.slots[j] = v.lc.moveOut(&v.data.slots[j-1])
		}
		v.data.slots[i] = val
		v.size++
		return i, nil
	}
	data, err := newRawBlock[T](v.grownCapacity())
	if err != nil {
		return v.size, err
	}
	val, err := construct()
	if err != nil {
		data.release()
		return v.size, err
	}
	data.slots[i] = val
	if err := v.lc.relocate(v.data.view(0, i), data.view(0, i)); err != nil {
		v.lc.destroy(data.slot(i))
		data.release()
		return v.size, err
	}
	if err := v.lc.relocate(v.data.view(i, v.size), data.view(i+1, v.size+1)); err != nil {
		v.lc.destroyRange(data.view(0, i+1))
		data.release()
		return v.size, err
	}
	v.adopt(&data)
	v.size++
	return i, nil
}

// Erase removes the element at position i, shifting the tail left by one.
// Positions outside [0, Len()) are a no-op returning Len(). On success
// returns i, now the position of the element that followed the removed
// one. Never reallocates, never fails.
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.size {
		return v.size
	}
	v.lc.destroy(v.data.slot(i))
	for j := i; j < v.size-1; j++ {
		v.data.slots[j] = v.lc.moveOut(&v.data.slots[j+1])
	}
	v.size--
	return i
}

// grownCapacity returns the geometric growth target: max(1, 2*size).
func (v *Vector[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	return v.size * 2
}

// adopt destroys the current live elements and swaps the storage for data,
// releasing the old block. The atomic-adoption step of every reallocating
// operation: data must already hold the relocated elements.
func (v *Vector[T]) adopt(data *rawBlock[T]) {
	v.lc.destroyRange(v.live())
	v.data.swap(data)
	data.release()
}
