package app_error

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindConflict
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return 404
	case KindValidation:
		return 400
	case KindConflict:
		return 409
	default:
		return 500
	}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf("internal error: %v", err), err: err}
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// WithHTTPStatus writes the error response, folding gorm's record-not-found
// into a 404 so repositories can surface it unmodified.
func WithHTTPStatus(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
		return
	}
	c.JSON(500, gin.H{"error": err.Error()})
}
