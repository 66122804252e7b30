// Package intlist implements a growable, contiguous list of ints whose
// operations report their outcome as explicit error codes.
//
// A List is owned by a single caller and is not safe for concurrent use.
// Append may move the backing buffer, so callers hold on to the *List only.
package intlist

import (
	"log/slog"
	"math"

	"github.com/codex-k8s/intlist/alloc"
)

// List is an append-only sequence of ints with a doubling growth policy.
// The zero value and nil are not usable; construct with New.
type List struct {
	// items has len == capacity; only items[:count] are live.
	items  []int
	count  uint
	alloc  alloc.Allocator
	logger *slog.Logger
}

// New constructs an empty list able to hold capacity elements before growing.
func New(capacity uint, opts ...Option) (*List, error) {
	if capacity == 0 {
		return nil, newError("new", InvalidCapacity, nil)
	}

	l := &List{
		alloc:  alloc.Heap{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}

	if capacity > uint(math.MaxInt) {
		return nil, newError("new", OutOfMemory, nil)
	}
	items, err := l.alloc.Alloc(int(capacity))
	if err != nil {
		return nil, newError("new", OutOfMemory, err)
	}
	l.items = items

	l.logger.Debug("intlist created", "capacity", capacity)
	return l, nil
}

// Destroy returns the backing buffer to the allocator. Any later call on l,
// including a second Destroy, fails with Null.
func (l *List) Destroy() error {
	if l.dead() {
		return newError("destroy", Null, nil)
	}
	l.alloc.Free(l.items)
	l.logger.Debug("intlist destroyed", "count", l.count, "capacity", len(l.items))
	l.items = nil
	l.count = 0
	return nil
}

// Count returns the number of stored elements.
func (l *List) Count() (uint, error) {
	if l.dead() {
		return 0, newError("count", Null, nil)
	}
	return l.count, nil
}

// Capacity returns the number of elements the current buffer can hold.
func (l *List) Capacity() (uint, error) {
	if l.dead() {
		return 0, newError("capacity", Null, nil)
	}
	return uint(len(l.items)), nil
}

// Append stores v after the last element, doubling the capacity first when the
// buffer is full. If growth fails the list is left exactly as it was.
func (l *List) Append(v int) (*List, error) {
	if l.dead() {
		return nil, newError("append", Null, nil)
	}
	if l.count == uint(len(l.items)) {
		if err := l.grow(); err != nil {
			return nil, err
		}
	}
	l.items[l.count] = v
	l.count++
	return l, nil
}

// Get returns the element at index i.
func (l *List) Get(i uint) (int, error) {
	if l.dead() {
		return 0, newError("get", Null, nil)
	}
	if i >= l.count {
		return 0, newError("get", OutOfBounds, nil)
	}
	return l.items[i], nil
}

func (l *List) grow() error {
	from := len(l.items)
	if from > math.MaxInt/2 {
		return newError("append", OutOfMemory, alloc.ErrExhausted)
	}
	to := from * 2

	items, err := l.alloc.Realloc(l.items, to)
	if err != nil {
		l.logger.Debug("intlist growth failed", "from", from, "to", to, "error", err)
		return newError("append", OutOfMemory, err)
	}
	l.items = items

	l.logger.Debug("intlist grown", "from", from, "to", to)
	return nil
}

func (l *List) dead() bool {
	return l == nil || l.items == nil
}
