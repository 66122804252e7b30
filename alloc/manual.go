package alloc

import (
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"modernc.org/memory"
)

// Manual allocates buffers outside the Go heap using modernc.org/memory.
// Buffers must be handed back with Free; Close releases everything at once.
// A Manual must not be copied after first use.
type Manual struct {
	// MaxElems caps the size of a single buffer. Zero means no cap beyond MaxElems.
	MaxElems int

	mu   sync.Mutex
	heap memory.Allocator
	live map[uintptr]int
}

// NewManual returns an empty off-heap allocator.
func NewManual() *Manual {
	return &Manual{live: make(map[uintptr]int)}
}

// Alloc returns a buffer of n elements. Its contents are unspecified.
func (m *Manual) Alloc(n int) ([]int, error) {
	if err := (Heap{MaxElems: m.MaxElems}).check(n); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(n)
}

// Realloc moves buf into a new buffer of n elements. On failure buf stays live.
func (m *Manual) Realloc(buf []int, n int) ([]int, error) {
	if err := (Heap{MaxElems: m.MaxElems}).check(n); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := m.alloc(n)
	if err != nil {
		return nil, err
	}
	copy(next, buf)
	if len(buf) > 0 {
		m.free(buf)
	}
	return next, nil
}

// Free returns buf to the allocator. Freeing a buffer this allocator did not
// hand out panics.
func (m *Manual) Free(buf []int) {
	if len(buf) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.free(buf)
}

// Live reports the number of buffers handed out and not yet freed.
func (m *Manual) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// Close releases every arena held by the allocator, including live buffers.
func (m *Manual) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.live)
	return errors.Wrap(m.heap.Close(), "alloc: close manual allocator")
}

func (m *Manual) alloc(n int) ([]int, error) {
	if m.live == nil {
		m.live = make(map[uintptr]int)
	}
	raw, err := m.heap.Malloc(n * IntSize)
	if err != nil {
		return nil, errors.Wrapf(ErrExhausted, "malloc %d bytes: %v", n*IntSize, err)
	}
	ptr := unsafe.Pointer(unsafe.SliceData(raw))
	m.live[uintptr(ptr)] = n
	return unsafe.Slice((*int)(ptr), n), nil
}

func (m *Manual) free(buf []int) {
	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	n, ok := m.live[uintptr(ptr)]
	if !ok {
		panic("alloc: free of a buffer not owned by this allocator")
	}
	delete(m.live, uintptr(ptr))
	if err := m.heap.Free(unsafe.Slice((*byte)(ptr), n*IntSize)); err != nil {
		panic(errors.Wrap(err, "alloc: free"))
	}
}
