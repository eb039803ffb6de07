package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errGone = New("gone")
	errBusy = New("busy")
)

func TestIsAny(t *testing.T) {
	err := Wrap(errGone, "load nft")

	assert.True(t, IsAny(err, errBusy, errGone))
	assert.False(t, IsAny(err, errBusy))
	assert.False(t, IsAny(err))
}

func TestRetryable(t *testing.T) {
	assert.NoError(t, Retryable(nil))

	err := Retryable(Wrap(errBusy, "rpc"))
	assert.True(t, IsRetryable(err))
	assert.True(t, Is(err, errBusy))
	assert.Equal(t, "retryable: rpc: busy", err.Error())

	wrapped := fmt.Errorf("reconcile: %w", err)
	assert.True(t, IsRetryable(wrapped))

	assert.False(t, IsRetryable(errGone))
}
