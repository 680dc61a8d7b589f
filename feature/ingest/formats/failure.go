package formats

import (
	"errors"
	"fmt"
)

// ErrEndOfInput signals that a parser has no more rows for its entity type.
// It terminates the group loop cleanly and is never logged as a problem.
var ErrEndOfInput = errors.New("end of input")

// FailureKind classifies parse failures by how the pipeline must react.
type FailureKind string

const (
	// FailureRead is a row-level content problem (e.g. a required field is
	// empty). The record is skipped and parsing continues.
	FailureRead FailureKind = "read"
	// FailureFormat is a value that is present but semantically invalid
	// (e.g. a non-numeric price). The in-progress record is abandoned.
	FailureFormat FailureKind = "format"
	// FailureConfig is a registry/classifier mismatch. It is a programming
	// error, not a data problem, and aborts the whole run before output.
	FailureConfig FailureKind = "config"
)

// ParseFailure is the error type produced by the pipeline's parsers.
type ParseFailure struct {
	Kind FailureKind
	Msg  string
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("%s failure: %s", e.Kind, e.Msg)
}

// ReadFailure builds a row-level content failure.
func ReadFailure(format string, args ...any) error {
	return &ParseFailure{Kind: FailureRead, Msg: fmt.Sprintf(format, args...)}
}

// FormatFailure builds a semantic value failure.
func FormatFailure(format string, args ...any) error {
	return &ParseFailure{Kind: FailureFormat, Msg: fmt.Sprintf(format, args...)}
}

// ConfigFailure builds a fatal configuration failure.
func ConfigFailure(format string, args ...any) error {
	return &ParseFailure{Kind: FailureConfig, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a ParseFailure of the given kind.
func IsKind(err error, kind FailureKind) bool {
	var pf *ParseFailure
	return errors.As(err, &pf) && pf.Kind == kind
}
