package vec

import (
	"math"
	"unsafe"
)

// rawBlock owns a fixed slab of element slots. It hands out slot addresses
// and nothing else: it never constructs or destroys elements and never
// reasons about which slots hold live values. That split keeps allocation
// failure (here) separate from element-lifetime failure (Vector).
//
// A rawBlock is move-only. Ownership is transferred with swap; blocks are
// never copied after creation.
type rawBlock[T any] struct {
	slots []T // backing slab; len(slots) is the capacity in elements
}

// newRawBlock allocates raw storage for capacity elements. A capacity of
// zero yields a null block with no slab. Negative capacities and byte
// sizes that cannot be represented as an int fail with ErrCapacityOverflow
// before any allocation happens.
func newRawBlock[T any](capacity int) (rawBlock[T], error) {
	if capacity < 0 {
		return rawBlock[T]{}, ErrCapacityOverflow
	}
	if capacity == 0 {
		return rawBlock[T]{}, nil
	}
	elemSize := int(unsafe.Sizeof(*new(T)))
	if elemSize > 0 && capacity > math.MaxInt/elemSize {
		return rawBlock[T]{}, ErrCapacityOverflow
	}
	return rawBlock[T]{slots: make([]T, capacity)}, nil
}

// cap returns the capacity in elements.
func (b *rawBlock[T]) cap() int {
	return len(b.slots)
}

// slot returns the address of slot offset. Offsets outside [0, cap) are a
// contract violation and panic.
func (b *rawBlock[T]) slot(offset int) *T {
	if offset < 0 || offset >= len(b.slots) {
		panic("vec: raw block offset out of range")
	}
	return &b.slots[offset]
}

// view returns the raw slot window [from, to). Bounds outside
// [0, cap] are a contract violation and panic.
func (b *rawBlock[T]) view(from, to int) []T {
	if from < 0 || from > to || to > len(b.slots) {
		panic("vec: raw block window out of range")
	}
	return b.slots[from:to:to]
}

// release drops the slab. A no-op on a null block. Element state is not
// touched; callers must have destroyed all live elements first.
func (b *rawBlock[T]) release() {
	b.slots = nil
}

// swap exchanges the slab between two blocks in constant time.
func (b *rawBlock[T]) swap(other *rawBlock[T]) {
	b.slots, other.slots = other.slots, b.slots
}
