// Package vec implements a generic dynamic array built on manually managed
// raw slot storage.
//
// # Overview
//
// A Vector is a resizable, contiguous, randomly-indexable sequence of a
// single element type. Unlike a plain Go slice it manages its storage
// explicitly: a raw block owns a fixed slab of uninitialized element slots,
// and the vector tracks the live range [0, Len()) on top of it, pairing
// every element construction with exactly one destruction. This is useful
// for:
//
//   - Element types that own external resources and need deterministic
//     teardown (via lifecycle hooks)
//   - Deep-copy semantics on copy and assignment
//   - Precise control over when and how storage grows
//   - Strong failure guarantees on fallible element operations
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Destroy live elements, drop storage
//
//	// Append elements; storage doubles as needed (1, 2, 4, ...)
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3)
//
//	// Random access
//	*v.At(0) = 10
//
//	// Insert and remove at arbitrary positions
//	v.Insert(1, 99)
//	v.Erase(1)
//
//	// Traverse
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// # Element Lifecycle
//
// Element construction, copying, moving and destruction can be customized
// with Lifecycle hooks:
//
//	v := vec.New(vec.WithLifecycle(vec.Lifecycle[*os.File]{
//	    Destroy: func(f **os.File) { (*f).Close() },
//	}))
//
// All hooks default to plain-value behavior. Copy and New hooks may fail;
// operations that invoke them report the error and roll back.
//
// # Growth and Relocation
//
// When an append finds the storage full, the vector allocates a fresh block
// of twice the current size, builds the new element directly into its final
// slot, relocates the existing elements, and only then adopts the new block
// and discards the old one. Relocation moves elements when the lifecycle
// declares a Move hook (moves cannot fail) or has no Copy hook, and copies
// them otherwise, so that a mid-relocation failure can always be rolled
// back with the vector unchanged.
//
// # Failure Semantics
//
//   - Append, insert-with-growth, Reserve, Clone and growth via Resize give
//     the strong guarantee: on error the vector is observably untouched.
//   - In-place CopyFrom gives the basic guarantee: prefix elements already
//     overwritten before a copy failure stay overwritten.
//   - Out-of-range positions passed to Insert, Emplace and Erase are a
//     silent no-op returning Len(), not an error.
//   - Out-of-range indexed access via At is a contract violation and
//     panics.
//
// # Thread Safety
//
// Vector is not goroutine-safe. Callers needing concurrent access must
// supply their own synchronization.
//
// # Performance Characteristics
//
//   - Append: O(1) amortized
//   - Indexed access: O(1)
//   - Insert/Erase at position i: O(Len() - i)
//   - Release: O(Len())
//
// # Metrics and Monitoring
//
// The vector exposes storage statistics:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Live bytes: %d\n", m.SizeInUse)
//	fmt.Printf("Capacity bytes: %d\n", m.CapacityBytes)
package vec
