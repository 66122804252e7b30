package intlist

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code is the outcome of a list operation.
type Code uint8

const (
	// Ok means the operation succeeded.
	Ok Code = iota
	// Null means the operation was invoked on an absent or destroyed list.
	Null
	// OutOfMemory means an initial or growth allocation failed.
	OutOfMemory
	// OutOfBounds means a read index was not below the element count.
	OutOfBounds
	// InvalidCapacity means construction was requested with capacity zero.
	InvalidCapacity
)

var codeNames = [...]string{
	Ok:              "ok",
	Null:            "null",
	OutOfMemory:     "out of memory",
	OutOfBounds:     "out of bounds",
	InvalidCapacity: "invalid capacity",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Error is returned by every failed list operation.
type Error struct {
	// Op is the operation that failed (new, destroy, count, capacity, append, get).
	Op string
	// Code classifies the failure.
	Code Code
	// Err is the allocator error behind an OutOfMemory failure, if any.
	Err error
}

// Sentinels for errors.Is; each matches any *Error carrying the same Code.
var (
	ErrNull            = &Error{Code: Null}
	ErrOutOfMemory     = &Error{Code: OutOfMemory}
	ErrOutOfBounds     = &Error{Code: OutOfBounds}
	ErrInvalidCapacity = &Error{Code: InvalidCapacity}
)

func (e *Error) Error() string {
	msg := "intlist: "
	if e.Op != "" {
		msg += e.Op + ": "
	}
	msg += e.Code.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a sentinel with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Op == "" && t.Err == nil && t.Code == e.Code
}

// CodeOf extracts the list Code from err. A nil err yields Ok. The boolean is
// false when err is non-nil but carries no *Error.
func CodeOf(err error) (Code, bool) {
	if err == nil {
		return Ok, true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return Ok, false
}

func newError(op string, code Code, cause error) *Error {
	return &Error{Op: op, Code: code, Err: cause}
}
