package alloc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap(t *testing.T) {
	var h Heap

	buf, err := h.Alloc(4)
	require.NoError(t, err)
	require.Len(t, buf, 4)
	copy(buf, []int{1, 2, 3, 4})

	next, err := h.Realloc(buf, 8)
	require.NoError(t, err)
	require.Len(t, next, 8)
	assert.Equal(t, []int{1, 2, 3, 4}, next[:4])

	_, err = h.Alloc(0)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrExhausted))

	_, err = h.Alloc(MaxElems + 1)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestHeapLimit(t *testing.T) {
	h := Heap{MaxElems: 8}

	buf, err := h.Alloc(8)
	require.NoError(t, err)
	buf[0] = 7

	_, err = h.Realloc(buf, 16)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 7, buf[0])
	assert.Len(t, buf, 8)
}

func TestManual(t *testing.T) {
	m := NewManual()
	defer func() { require.NoError(t, m.Close()) }()

	buf, err := m.Alloc(4)
	require.NoError(t, err)
	require.Len(t, buf, 4)
	for i := range buf {
		buf[i] = i * 10
	}
	assert.Equal(t, 1, m.Live())

	next, err := m.Realloc(buf, 64)
	require.NoError(t, err)
	require.Len(t, next, 64)
	assert.Equal(t, []int{0, 10, 20, 30}, next[:4])
	assert.Equal(t, 1, m.Live())

	other, err := m.Alloc(2)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Live())

	m.Free(next)
	m.Free(other)
	assert.Zero(t, m.Live())

	assert.Panics(t, func() { m.Free(make([]int, 3)) })
}

func TestManualLimit(t *testing.T) {
	m := &Manual{MaxElems: 4}
	defer func() { require.NoError(t, m.Close()) }()

	buf, err := m.Alloc(4)
	require.NoError(t, err)
	buf[3] = 5

	_, err = m.Realloc(buf, 8)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 1, m.Live())
	assert.Equal(t, 5, buf[3])

	m.Free(buf)
	assert.Zero(t, m.Live())
}
