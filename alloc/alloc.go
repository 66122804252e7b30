// Package alloc provides the buffer allocators that back an intlist.List.
package alloc

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// IntSize is the size in bytes of a single int element.
const IntSize = bits.UintSize / 8

// MaxElems is the largest element count any allocator will hand out.
const MaxElems = math.MaxInt / IntSize

// ErrExhausted is the root cause of every refused allocation.
var ErrExhausted = errors.New("alloc: memory exhausted")

// Allocator hands out and takes back contiguous int buffers.
//
// Realloc returns a buffer of n elements whose prefix holds the contents of buf.
// When it fails, buf is left untouched and still belongs to the caller.
type Allocator interface {
	Alloc(n int) ([]int, error)
	Realloc(buf []int, n int) ([]int, error)
	Free(buf []int)
}

// Heap allocates buffers on the Go heap.
type Heap struct {
	// MaxElems caps the size of a single buffer. Zero means no cap beyond MaxElems.
	MaxElems int
}

// Alloc returns a zeroed buffer of n elements.
func (h Heap) Alloc(n int) (buf []int, err error) {
	if err := h.check(n); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, errors.Wrapf(ErrExhausted, "allocate %d ints: %v", n, r)
		}
	}()
	return make([]int, n), nil
}

// Realloc allocates a buffer of n elements and copies buf into it.
func (h Heap) Realloc(buf []int, n int) ([]int, error) {
	next, err := h.Alloc(n)
	if err != nil {
		return nil, err
	}
	copy(next, buf)
	return next, nil
}

// Free drops the reference; the garbage collector reclaims the memory.
func (Heap) Free([]int) {}

func (h Heap) check(n int) error {
	if n <= 0 {
		return errors.Errorf("alloc: invalid buffer size %d", n)
	}
	limit := MaxElems
	if h.MaxElems > 0 && h.MaxElems < limit {
		limit = h.MaxElems
	}
	if n > limit {
		return errors.Wrapf(ErrExhausted, "%d ints requested, limit is %d", n, limit)
	}
	return nil
}
