package service

import "fmt"

// Kind classifies the errors returned by the birthday service.
type Kind int

const (
	// KindInvalidArgument means that required input is missing or malformed.
	KindInvalidArgument Kind = iota + 1
	// KindValidationFailed means that the input is well-formed but out of range.
	KindValidationFailed
	// KindNotFound means that the referenced record does not exist.
	KindNotFound
	// KindFormat means that the photo payload could not be decoded.
	KindFormat
)

// Error is an error caused by the caller's input. Its message is meant for end users.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind, so that the sentinels below can be
// used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidArgument  = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
	ErrValidationFailed = &Error{Kind: KindValidationFailed, Message: "validation failed"}
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "not found"}
	ErrFormat           = &Error{Kind: KindFormat, Message: "invalid format"}
)

func invalidArgument(msg string) error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

func validationFailed(msg string) error {
	return &Error{Kind: KindValidationFailed, Message: msg}
}

func notFound(id int64) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("record with id %d not found", id)}
}

func formatError(msg string) error {
	return &Error{Kind: KindFormat, Message: msg}
}
