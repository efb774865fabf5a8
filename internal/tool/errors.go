package tool

import (
	"errors"
	"fmt"
)

// Parse error kinds. Match them with errors.Is.
var (
	ErrEmptyID          = errors.New("tool id is empty")
	ErrMissingSeparator = errors.New("missing '/' separator")
	ErrInvalidProvider  = errors.New("artifact provider is invalid")
	ErrInvalidAuthor    = errors.New("author is empty or invalid")
	ErrInvalidName      = errors.New("name is empty or invalid")

	ErrEmptySpec      = errors.New("tool spec is empty")
	ErrMissingVersion = errors.New("missing '@' version separator")
	ErrInvalidVersion = errors.New("version is invalid")
	ErrEmptyAlias     = errors.New("tool alias is empty")
	ErrInvalidAlias   = errors.New("tool alias is invalid")
)

// IDParseError describes why a tool id could not be parsed.
type IDParseError struct {
	Kind  error
	Input string
	// Value is the offending segment, after trimming.
	Value string
	// Err is the provider parser failure, if any.
	Err error
}

func (e *IDParseError) Error() string {
	switch e.Kind {
	case ErrInvalidProvider:
		return fmt.Sprintf("artifact provider '%s' is invalid", e.Value)
	case ErrInvalidAuthor:
		return fmt.Sprintf("author '%s' is empty or invalid", e.Value)
	case ErrInvalidName:
		return fmt.Sprintf("name '%s' is empty or invalid", e.Value)
	case nil:
		return "invalid tool id"
	default:
		return e.Kind.Error()
	}
}

func (e *IDParseError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *IDParseError) Unwrap() error {
	return e.Err
}

func idParseError(kind error, input, value string, cause error) *IDParseError {
	return &IDParseError{Kind: kind, Input: input, Value: value, Err: cause}
}
