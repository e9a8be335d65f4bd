package heap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercut/heap"
)

func TestMaxHeap_EmptyTop(t *testing.T) {
	h := heap.New()
	_, _, ok := h.Top()
	assert.False(t, ok)
	assert.True(t, h.Empty())
}

func TestMaxHeap_PushTopTracksMax(t *testing.T) {
	h := heap.New()
	h.Push(3, 1)
	h.Push(7, 2)
	h.Push(5, 3)

	key, payload, ok := h.Top()
	require.True(t, ok)
	assert.Equal(t, int64(7), key)
	assert.Equal(t, uint64(2), payload)
	assert.Equal(t, 3, h.Len())
}

func TestMaxHeap_PopMaxDescendingOrder(t *testing.T) {
	h := heap.New()
	values := []int64{5, 1, 9, 3, 7}
	for i, v := range values {
		h.Push(v, uint64(i))
	}

	var popped []int64
	for !h.Empty() {
		k, _, ok := h.PopMax()
		require.True(t, ok)
		popped = append(popped, k)
	}

	assert.Equal(t, []int64{9, 7, 5, 3, 1}, popped)
}

func TestMaxHeap_IncreaseKeyPromotesElement(t *testing.T) {
	h := heap.New()
	hA := h.Push(1, 100)
	h.Push(10, 200)

	h.IncreaseKey(hA, 20)
	key, payload, ok := h.Top()
	require.True(t, ok)
	assert.Equal(t, int64(20), key)
	assert.Equal(t, uint64(100), payload)
}

func TestMaxHeap_IncreaseKeyBelowCurrentIsNoop(t *testing.T) {
	h := heap.New()
	hA := h.Push(10, 1)

	h.IncreaseKey(hA, 5)
	key, ok := h.Key(hA)
	require.True(t, ok)
	assert.Equal(t, int64(10), key)
}

func TestMaxHeap_KeyAfterRemoveIsNotOK(t *testing.T) {
	h := heap.New()
	hA := h.Push(4, 1)
	h.Remove(hA)

	_, ok := h.Key(hA)
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}

func TestMaxHeap_RemoveNonMaxElement(t *testing.T) {
	h := heap.New()
	hA := h.Push(3, 1)
	h.Push(9, 2)
	h.Push(6, 3)

	h.Remove(hA)
	assert.Equal(t, 2, h.Len())

	var popped []int64
	for !h.Empty() {
		k, _, _ := h.PopMax()
		popped = append(popped, k)
	}
	assert.Equal(t, []int64{9, 6}, popped)
}

func TestMaxHeap_ManyInsertsConsolidateCorrectly(t *testing.T) {
	h := heap.New()
	n := 200
	for i := 0; i < n; i++ {
		h.Push(int64(i), uint64(i))
	}

	var popped []int64
	for !h.Empty() {
		k, _, ok := h.PopMax()
		require.True(t, ok)
		popped = append(popped, k)
	}

	require.Len(t, popped, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, int64(n-1-i), popped[i])
	}
}

func TestMaxHeap_IncreaseKeyAfterCascadingCuts(t *testing.T) {
	h := heap.New()
	handles := make([]heap.Handle, 0, 10)
	for i := 0; i < 10; i++ {
		handles = append(handles, h.Push(int64(i), uint64(i)))
	}
	// Force consolidation into a multi-level tree, then raise the keys of
	// several nested nodes past their parents to exercise cut/cascading-cut.
	_, _, _ = h.PopMax()

	for _, hd := range handles[:5] {
		if k, ok := h.Key(hd); ok {
			h.IncreaseKey(hd, k+100)
		}
	}

	key, _, ok := h.Top()
	require.True(t, ok)
	assert.GreaterOrEqual(t, key, int64(100))
}
