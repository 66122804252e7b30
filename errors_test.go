package intlist

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/codex-k8s/intlist/alloc"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "ok", Ok.String())
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "out of memory", OutOfMemory.String())
	assert.Equal(t, "out of bounds", OutOfBounds.String())
	assert.Equal(t, "invalid capacity", InvalidCapacity.String())
	assert.Equal(t, "code(42)", Code(42).String())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "intlist: get: out of bounds", newError("get", OutOfBounds, nil).Error())
	assert.Equal(t, "intlist: null", ErrNull.Error())
	assert.Equal(t,
		"intlist: append: out of memory: alloc: memory exhausted",
		newError("append", OutOfMemory, alloc.ErrExhausted).Error())
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("step: %w", newError("append", OutOfMemory, alloc.ErrExhausted))

	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.ErrorIs(t, err, alloc.ErrExhausted)
	assert.NotErrorIs(t, err, ErrNull)
	assert.NotErrorIs(t, ErrNull, newError("count", Null, nil))
}

func TestCodeOf(t *testing.T) {
	code, ok := CodeOf(nil)
	assert.True(t, ok)
	assert.Equal(t, Ok, code)

	code, ok = CodeOf(errors.Wrap(newError("get", OutOfBounds, nil), "read back"))
	assert.True(t, ok)
	assert.Equal(t, OutOfBounds, code)

	_, ok = CodeOf(errors.New("unrelated"))
	assert.False(t, ok)
}
