package apperr

import (
	"fmt"
	"net/http"
)

// Error is the domain error carried from the point of detection to the HTTP
// boundary. Code is the stable machine-readable value rendered on the wire.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Status  int    `json:"-"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

// Validation reports malformed input; field names which field failed.
func Validation(field, message string) *Error {
	return &Error{
		Code:    "ValidationError",
		Message: message,
		Details: map[string]string{"field": field},
		Status:  http.StatusBadRequest,
	}
}

func UsernameTaken() *Error {
	return New("UsernameTaken", http.StatusConflict, "username is already taken")
}

func EmailTaken() *Error {
	return New("EmailTaken", http.StatusConflict, "email is already registered")
}

func InvalidCredentials() *Error {
	return New("InvalidCredentials", http.StatusUnauthorized, "invalid username or password")
}

func Unauthorized(message string) *Error {
	return New("Unauthorized", http.StatusUnauthorized, message)
}

func InvalidToken() *Error {
	return New("InvalidToken", http.StatusUnauthorized, "invalid token")
}

func TokenExpired() *Error {
	return New("TokenExpired", http.StatusUnauthorized, "token has expired")
}

func NotFound(code, message string) *Error {
	return New(code, http.StatusNotFound, message)
}

func UserNotFound() *Error {
	return NotFound("UserNotFound", "user not found")
}

func CartItemNotFound() *Error {
	return NotFound("CartItemNotFound", "cart item not found")
}

// Internal wraps an unexpected failure. The underlying error is kept out of
// the message so it is never rendered to the caller.
func Internal(err error) *Error {
	e := New("InternalError", http.StatusInternalServerError, "internal server error")
	e.cause = err
	return e
}

// Storage wraps an I/O failure from the record store.
func Storage(err error) *Error {
	e := New("StorageError", http.StatusInternalServerError, "storage failure")
	e.cause = err
	return e
}
