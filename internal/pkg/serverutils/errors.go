package serverutils

import (
	"errors"
	"net/http"
)

// AppError is a failure that maps onto an HTTP status.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NewBadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func NewUnauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

func NewNotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func NewConflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}

// AsAppError unwraps err looking for an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
