package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsIdentity(t *testing.T) {
	err := Clone(ErrAPI, "Not found")
	err.Status = http.StatusNotFound

	assert.Equal(t, "Not found", err.Error())
	assert.True(t, errors.Is(err, ErrAPI))
	assert.False(t, errors.Is(err, ErrNetwork))
	assert.Equal(t, FallbackMessage, ErrAPI.Message)
}

func TestMessagePrefersTypedMessage(t *testing.T) {
	wrapped := fmt.Errorf("load students: %w", Wrap(errors.New("dial tcp"), ErrNetwork.Code, ErrNetwork.Status, ErrNetwork.Message))

	assert.Equal(t, "network request failed", Message(wrapped))
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Equal(t, "", Message(nil))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, StatusOf(ErrDecode))
	assert.Equal(t, 0, StatusOf(errors.New("plain")))
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))
	assert.Equal(t, ErrInternal.Code, FromError(errors.New("x")).Code)
	assert.Same(t, ErrBusy, FromError(ErrBusy))
}
