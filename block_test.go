package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRawBlock(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantCap  int
		wantErr  bool
	}{
		{"zero capacity", 0, 0, false},
		{"small capacity", 8, 8, false},
		{"negative capacity", -1, 0, true},
		{"overflowing capacity", math.MaxInt/8 + 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := newRawBlock[int64](tt.capacity)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrCapacityOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCap, b.cap())
		})
	}
}

func TestRawBlockZeroCapacityIsNull(t *testing.T) {
	b, err := newRawBlock[int](0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.cap())
	assert.Nil(t, b.slots)

	// release is a no-op on a null block
	b.release()
	assert.Equal(t, 0, b.cap())
}

func TestRawBlockSlot(t *testing.T) {
	b, err := newRawBlock[int](4)
	require.NoError(t, err)

	*b.slot(0) = 10
	*b.slot(3) = 40
	assert.Equal(t, 10, *b.slot(0))
	assert.Equal(t, 40, *b.slot(3))
	assert.NotSame(t, b.slot(0), b.slot(1))

	assert.Panics(t, func() { b.slot(-1) })
	assert.Panics(t, func() { b.slot(4) })
}

func TestRawBlockView(t *testing.T) {
	b, err := newRawBlock[int](4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		*b.slot(i) = i + 1
	}

	assert.Equal(t, []int{2, 3}, b.view(1, 3))
	assert.Empty(t, b.view(2, 2))
	assert.Equal(t, []int{1, 2, 3, 4}, b.view(0, 4))

	assert.Panics(t, func() { b.view(-1, 2) })
	assert.Panics(t, func() { b.view(3, 2) })
	assert.Panics(t, func() { b.view(0, 5) })
}

func TestRawBlockSwap(t *testing.T) {
	a, err := newRawBlock[int](2)
	require.NoError(t, err)
	b, err := newRawBlock[int](5)
	require.NoError(t, err)
	*a.slot(0) = 1
	*b.slot(0) = 9

	a.swap(&b)

	assert.Equal(t, 5, a.cap())
	assert.Equal(t, 2, b.cap())
	assert.Equal(t, 9, *a.slot(0))
	assert.Equal(t, 1, *b.slot(0))
}

func TestRawBlockRelease(t *testing.T) {
	b, err := newRawBlock[int](4)
	require.NoError(t, err)
	require.Equal(t, 4, b.cap())

	b.release()

	assert.Equal(t, 0, b.cap())
	assert.Panics(t, func() { b.slot(0) })
}
