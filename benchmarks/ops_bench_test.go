package vec_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vec"
)

// BenchmarkAppend compares appends against the builtin slice for several
// working-set sizes
func BenchmarkAppend(b *testing.B) {
	sizes := []int{16, 256, 4096}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Vec_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := vec.New[int]()
				for j := 0; j < size; j++ {
					v.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < size; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}
}

// BenchmarkAppendPreReserved measures appends when growth is paid up front
func BenchmarkAppendPreReserved(b *testing.B) {
	const size = 4096

	b.Run("Vec", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := vec.New[int]()
			v.Reserve(size)
			for j := 0; j < size; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, size)
			for j := 0; j < size; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}

// BenchmarkInsertFront measures worst-case insertion, shifting the whole
// tail on every call
func BenchmarkInsertFront(b *testing.B) {
	const size = 1024

	b.Run("Vec", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := vec.New[int]()
			for j := 0; j < size; j++ {
				v.Insert(0, j)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < size; j++ {
				s = append(s, 0)
				copy(s[1:], s)
				s[0] = j
			}
			_ = s
		}
	})
}

// BenchmarkEraseFront measures worst-case removal
func BenchmarkEraseFront(b *testing.B) {
	const size = 1024

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := vec.New[int]()
		for j := 0; j < size; j++ {
			v.PushBack(j)
		}
		b.StartTimer()
		for v.Len() > 0 {
			v.Erase(0)
		}
	}
}

// BenchmarkIterate compares Values traversal against ranging over a slice
func BenchmarkIterate(b *testing.B) {
	const size = 4096
	v := vec.New[int]()
	s := make([]int, 0, size)
	for j := 0; j < size; j++ {
		v.PushBack(j)
		s = append(s, j)
	}

	b.Run("Vec", func(b *testing.B) {
		sum := 0
		for i := 0; i < b.N; i++ {
			for x := range v.Values() {
				sum += x
			}
		}
		_ = sum
	})

	b.Run("Builtin", func(b *testing.B) {
		sum := 0
		for i := 0; i < b.N; i++ {
			for _, x := range s {
				sum += x
			}
		}
		_ = sum
	})
}

// BenchmarkLifecycleOverhead measures the cost of hook dispatch on append
func BenchmarkLifecycleOverhead(b *testing.B) {
	const size = 1024

	b.Run("PlainValues", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := vec.New[int]()
			for j := 0; j < size; j++ {
				v.PushBack(j)
			}
		}
	})

	b.Run("WithHooks", func(b *testing.B) {
		lc := vec.Lifecycle[int]{
			Copy:    func(x int) (int, error) { return x, nil },
			Move:    func(p *int) int { x := *p; *p = 0; return x },
			Destroy: func(p *int) {},
		}
		for i := 0; i < b.N; i++ {
			v := vec.New(vec.WithLifecycle(lc))
			for j := 0; j < size; j++ {
				v.PushBack(j)
			}
		}
	})
}
