package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriteCloser struct {
	writeErr error
	closeErr error
	written  []byte
	closed   bool
}

func (f *fakeWriteCloser) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.written = append(f.written, p...)
	return len(p), nil
}

func (f *fakeWriteCloser) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteAndClose(t *testing.T) {
	w := &fakeWriteCloser{}

	err := writeAndClose(w, []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), w.written)
	assert.True(t, w.closed)
}

func TestWriteAndClose_ClosesOnWriteError(t *testing.T) {
	writeErr := errors.New("connection reset")
	w := &fakeWriteCloser{writeErr: writeErr}

	err := writeAndClose(w, []byte("payload"))
	assert.ErrorIs(t, err, writeErr)
	assert.True(t, w.closed)
}

func TestWriteAndClose_ReturnsCloseError(t *testing.T) {
	closeErr := errors.New("upload aborted")
	w := &fakeWriteCloser{closeErr: closeErr}

	err := writeAndClose(w, []byte("payload"))
	assert.ErrorIs(t, err, closeErr)
}
