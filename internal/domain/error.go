package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zip"
	"github.com/pelletier/go-toml/v2"
)

// ErrorKind is the closed set of failure kinds shared across rokit.
type ErrorKind string

const (
	KindHomeNotFound         ErrorKind = "HOME_NOT_FOUND"
	KindFileNotFound         ErrorKind = "FILE_NOT_FOUND"
	KindExtractUnknownFormat ErrorKind = "EXTRACT_UNKNOWN_FORMAT"
	KindExtractFileMissing   ErrorKind = "EXTRACT_FILE_MISSING"
	KindInvalidUTF8          ErrorKind = "INVALID_UTF8"
	KindTaskJoin             ErrorKind = "TASK_JOIN"
	KindTOMLParse            ErrorKind = "TOML_PARSE"
	KindIO                   ErrorKind = "IO"
	KindJSON                 ErrorKind = "JSON"
	KindZip                  ErrorKind = "ZIP"
)

// Kinds lists every error kind.
func Kinds() []ErrorKind {
	return []ErrorKind{
		KindHomeNotFound,
		KindFileNotFound,
		KindExtractUnknownFormat,
		KindExtractFileMissing,
		KindInvalidUTF8,
		KindTaskJoin,
		KindTOMLParse,
		KindIO,
		KindJSON,
		KindZip,
	}
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrHomeNotFound         = &Error{Kind: KindHomeNotFound}
	ErrFileNotFound         = &Error{Kind: KindFileNotFound}
	ErrExtractUnknownFormat = &Error{Kind: KindExtractUnknownFormat}
	ErrExtractFileMissing   = &Error{Kind: KindExtractFileMissing}
	ErrInvalidUTF8          = &Error{Kind: KindInvalidUTF8}
	ErrTaskJoin             = &Error{Kind: KindTaskJoin}
	ErrTOMLParse            = &Error{Kind: KindTOMLParse}
	ErrIO                   = &Error{Kind: KindIO}
	ErrJSON                 = &Error{Kind: KindJSON}
	ErrZip                  = &Error{Kind: KindZip}
)

// Error is the domain error returned by fallible rokit operations.
type Error struct {
	Kind  ErrorKind
	Op    string
	Path  string
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.message()
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) message() string {
	switch e.Kind {
	case KindHomeNotFound:
		return "home directory not found"
	case KindFileNotFound:
		return fmt.Sprintf("file not found: %s", e.Path)
	case KindExtractUnknownFormat:
		return "failed to extract artifact: unknown format"
	case KindExtractFileMissing:
		return "failed to extract artifact: missing binary file"
	case KindInvalidUTF8:
		return "unexpected invalid UTF-8"
	case KindTaskJoin:
		return "task join error: " + causeText(e.Cause)
	case KindTOMLParse:
		return "TOML parse error: " + causeText(e.Cause)
	case KindIO:
		return "I/O error: " + causeText(e.Cause)
	case KindJSON:
		return "JSON error: " + causeText(e.Cause)
	case KindZip:
		return "Zip file error: " + causeText(e.Cause)
	default:
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches any *Error with the same kind, so the kind sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var other *Error
	if e == nil || !errors.As(target, &other) || other == nil {
		return false
	}
	return e.Kind == other.Kind
}

func causeText(err error) string {
	if err == nil {
		return "unknown cause"
	}
	return err.Error()
}

func HomeNotFound(op string) *Error {
	return &Error{Kind: KindHomeNotFound, Op: op}
}

func FileNotFound(op, path string) *Error {
	return &Error{Kind: KindFileNotFound, Op: op, Path: path}
}

func ExtractUnknownFormat(op string) *Error {
	return &Error{Kind: KindExtractUnknownFormat, Op: op}
}

func ExtractFileMissing(op string) *Error {
	return &Error{Kind: KindExtractFileMissing, Op: op}
}

func InvalidUTF8(op string) *Error {
	return &Error{Kind: KindInvalidUTF8, Op: op}
}

// FromTOML wraps a structured configuration parse failure.
func FromTOML(op string, err error) *Error {
	return from(KindTOMLParse, op, err)
}

// FromIO wraps a filesystem or stream failure.
func FromIO(op string, err error) *Error {
	return from(KindIO, op, err)
}

// FromJSON wraps a JSON parse failure.
func FromJSON(op string, err error) *Error {
	return from(KindJSON, op, err)
}

// FromZip wraps an archive container failure.
func FromZip(op string, err error) *Error {
	return from(KindZip, op, err)
}

// FromTaskJoin wraps a unit of work that panicked or was cancelled before completing.
func FromTaskJoin(op string, err error) *Error {
	return from(KindTaskJoin, op, err)
}

func from(kind ErrorKind, op string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Cause: err}
}

// joinFailure is reported by task runners for units that panicked or were aborted.
type joinFailure interface {
	error
	JoinFailure()
}

// Wrap converts err into a domain error, classifying external failures by type.
// Errors that match no wrapped library are treated as I/O failures.
func Wrap(op string, err error) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		if existing.Op != "" || op == "" {
			return existing
		}
		return &Error{
			Kind:  existing.Kind,
			Op:    op,
			Path:  existing.Path,
			Cause: existing.Cause,
		}
	}
	kind, _ := classify(err)
	return from(kind, op, err)
}

// KindOf reports the domain kind of err, if it has one.
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return "", false
	}
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Kind != "" {
		return domainErr.Kind, true
	}
	kind, ok := classify(err)
	if !ok {
		return "", false
	}
	return kind, true
}

func classify(err error) (ErrorKind, bool) {
	var (
		join          joinFailure
		tomlDecode    *toml.DecodeError
		tomlStrict    *toml.StrictMissingError
		jsonSyntax    *json.SyntaxError
		jsonType      *json.UnmarshalTypeError
		jsonInvalid   *json.InvalidUnmarshalError
		jsonMarshaler *json.MarshalerError
		jsonValue     *json.UnsupportedValueError
		jsonUnsupType *json.UnsupportedTypeError
	)
	switch {
	case errors.As(err, &join):
		return KindTaskJoin, true
	case errors.As(err, &tomlDecode), errors.As(err, &tomlStrict):
		return KindTOMLParse, true
	case errors.As(err, &jsonSyntax), errors.As(err, &jsonType), errors.As(err, &jsonInvalid),
		errors.As(err, &jsonMarshaler), errors.As(err, &jsonValue), errors.As(err, &jsonUnsupType):
		return KindJSON, true
	case errors.Is(err, zip.ErrFormat), errors.Is(err, zip.ErrAlgorithm), errors.Is(err, zip.ErrChecksum):
		return KindZip, true
	default:
		return KindIO, false
	}
}
