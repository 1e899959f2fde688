package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessage(t *testing.T) {
	err := Validation("Please enter a product name")
	assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(err))
	assert.Equal(t, "Please enter a product name", MessageOf(err))
	assert.Equal(t, "Please enter a product name", err.Error())

	wrapped := fmt.Errorf("add product: %w", err)
	assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(wrapped))
	assert.ErrorIs(t, wrapped, err)

	plain := errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, StatusOf(plain))
	assert.Equal(t, SystemErrorMessage, MessageOf(plain))
}

func TestWrapStorage(t *testing.T) {
	assert.NoError(t, WrapStorage(nil))

	cause := errors.New("database is locked")
	err := WrapStorage(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	assert.Equal(t, StorageErrorMessage, MessageOf(err))
	assert.Equal(t, "storage operation failed: database is locked", err.Error())
}
