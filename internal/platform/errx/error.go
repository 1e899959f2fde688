package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is shown on the page or in an API body when the
	// failure has no message of its own.
	SystemErrorMessage = "internal server error"
	// StorageErrorMessage is shown when a document could not be saved.
	StorageErrorMessage = "storage operation failed"
)

// AppError pairs a cause with the status code and text a client may see.
// Message never includes the cause.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Validation is a rejected form or API input. Its message is shown verbatim.
func Validation(message string) *AppError {
	return New(nil, http.StatusUnprocessableEntity, message)
}

// WrapStorage marks err as a failed document write. nil stays nil.
func WrapStorage(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusInternalServerError, StorageErrorMessage)
}

// StatusOf finds the first AppError in err's chain; other errors are 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf is the client-safe text for err, SystemErrorMessage if it has none.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return SystemErrorMessage
}
