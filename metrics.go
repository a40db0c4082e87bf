package vec

import "unsafe"

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * int(unsafe.Sizeof(*new(T)))
}

// CapacityBytes returns the total byte size of the owned storage.
func (v *Vector[T]) CapacityBytes() int {
	return v.data.cap() * int(unsafe.Sizeof(*new(T)))
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 when the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.data.cap() == 0 {
		return 0
	}
	return float64(v.size) / float64(v.data.cap())
}

// VectorMetrics is a snapshot of vector storage statistics.
type VectorMetrics struct {
	Len           int
	Cap           int
	ElemSize      int
	SizeInUse     int
	CapacityBytes int
	Utilization   float64
}

// Metrics returns a snapshot of storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.size,
		Cap:           v.data.cap(),
		ElemSize:      int(unsafe.Sizeof(*new(T))),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
	}
}
