package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocate(t *testing.T) {
	var h Heap[int]

	buf, err := h.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, buf)

	buf, err = h.Allocate(-3)
	require.NoError(t, err)
	assert.Nil(t, buf)

	buf, err = h.Allocate(5)
	require.NoError(t, err)
	assert.Len(t, buf, 5)
	for _, x := range buf {
		assert.Zero(t, x)
	}
	h.Deallocate(buf)
}

func TestHeapAllocateTooLarge(t *testing.T) {
	var h Heap[[1024]byte]
	_, err := h.Allocate(1 << 40)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestSlotsLifecycle(t *testing.T) {
	var s Slots[[]int]

	var a, b []int
	require.NoError(t, s.Construct(&a, []int{1, 2}))
	assert.Equal(t, []int{1, 2}, a)

	s.Move(&b, &a)
	assert.Equal(t, []int{1, 2}, b)
	assert.Nil(t, a, "moved-from slot is raw")

	s.Destroy(&b)
	assert.Nil(t, b)
}

func TestRequirePointerFree(t *testing.T) {
	type flat struct {
		A int64
		B [4]float32
		C struct{ D bool }
	}
	type withString struct {
		N int
		S string
	}

	assert.NoError(t, requirePointerFree[int]())
	assert.NoError(t, requirePointerFree[flat]())
	assert.NoError(t, requirePointerFree[[0]*int]())
	assert.NoError(t, requirePointerFree[struct{}]())

	assert.ErrorIs(t, requirePointerFree[*int](), ErrPointerElem)
	assert.ErrorIs(t, requirePointerFree[string](), ErrPointerElem)
	assert.ErrorIs(t, requirePointerFree[[]byte](), ErrPointerElem)
	assert.ErrorIs(t, requirePointerFree[map[int]int](), ErrPointerElem)
	assert.ErrorIs(t, requirePointerFree[any](), ErrPointerElem)
	assert.ErrorIs(t, requirePointerFree[withString](), ErrPointerElem)
	assert.ErrorIs(t, requirePointerFree[[2]withString](), ErrPointerElem)
}
