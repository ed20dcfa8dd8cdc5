package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseOutput(t *testing.T) {
	diskFull := errors.New("disk full")
	failing := closerFunc(func() error { return diskFull })

	t.Run("close error is reported", func(t *testing.T) {
		var err error
		closeOutput(failing, &err)
		require.Error(t, err)
		assert.ErrorIs(t, err, diskFull)
		assert.Contains(t, err.Error(), "close output")
	})

	t.Run("write error wins", func(t *testing.T) {
		writeErr := errors.New("short write")
		err := writeErr
		closeOutput(failing, &err)
		assert.Same(t, writeErr, err)
	})

	t.Run("clean close", func(t *testing.T) {
		var err error
		closeOutput(closerFunc(func() error { return nil }), &err)
		assert.NoError(t, err)
	})
}
