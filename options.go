package intlist

import (
	"log/slog"

	"github.com/codex-k8s/intlist/alloc"
)

// Option configures a List at construction.
type Option func(*List)

// WithAllocator sets the allocator for the backing buffer. A nil allocator
// keeps the default Go heap allocator.
func WithAllocator(a alloc.Allocator) Option {
	return func(l *List) {
		if a != nil {
			l.alloc = a
		}
	}
}

// WithLogger sets the logger used for lifecycle and growth records at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}
