package utils_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/robertof/go-factory-demos/utils"
	"github.com/stretchr/testify/assert"
)

func TestFirstMatchingError(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	wrapped := fmt.Errorf("while reading: %w", errB)

	target, ok := utils.FirstMatchingError(wrapped, errA, errB, fs.ErrNotExist)
	assert.True(t, ok)
	assert.Same(t, errB, target)

	_, ok = utils.FirstMatchingError(wrapped, errA, fs.ErrNotExist)
	assert.False(t, ok)

	_, ok = utils.FirstMatchingError(nil, errA)
	assert.False(t, ok)
}
