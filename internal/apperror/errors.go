// Package apperror carries the domain failure kinds raised by repositories and use
// cases. Each error names an i18n message ID so the transport layer can localise it.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindInvalidOperation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Sentinels for errors.Is checks against a kind.
var (
	ErrInvalidArgument  = &Error{Kind: KindInvalidArgument}
	ErrInvalidOperation = &Error{Kind: KindInvalidOperation}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrConflict         = &Error{Kind: KindConflict}
)

type Error struct {
	Kind      Kind
	MessageID string
	Message   string
	Params    map[string]interface{}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works for
// every not-found error regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, id string, params map[string]interface{}, format string, args ...interface{}) *Error {
	return &Error{
		Kind:      kind,
		MessageID: id,
		Message:   fmt.Sprintf(format, args...),
		Params:    params,
	}
}

func InvalidArgument(id string, params map[string]interface{}, format string, args ...interface{}) *Error {
	return newError(KindInvalidArgument, id, params, format, args...)
}

func InvalidOperation(id string, params map[string]interface{}, format string, args ...interface{}) *Error {
	return newError(KindInvalidOperation, id, params, format, args...)
}

func NotFound(id string, params map[string]interface{}, format string, args ...interface{}) *Error {
	return newError(KindNotFound, id, params, format, args...)
}

func Conflict(id string, params map[string]interface{}, format string, args ...interface{}) *Error {
	return newError(KindConflict, id, params, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
