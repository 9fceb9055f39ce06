package loxerrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/loxlang/loxscan/internal/span"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character.")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
	ErrScanInvalidNumber       = errors.New("Invalid number.")
)

// ErrorKind classifies the recoverable scan failures.
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota
	UnterminatedString
	InvalidNumber
)

// Cause returns the sentinel error behind the kind.
func (k ErrorKind) Cause() error {
	switch k {
	case UnterminatedString:
		return ErrScanUnterminatedString
	case InvalidNumber:
		return ErrScanInvalidNumber
	default:
		return ErrScanUnexpectedCharacter
	}
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidNumber:
		return "InvalidNumber"
	default:
		return "UnexpectedCharacter"
	}
}

// ScanError reports one malformed lexeme and where it sits in the
// source. It is data, not a fatal condition: the scanner keeps going
// past it.
type ScanError struct {
	Kind ErrorKind
	Span span.Span
}

func NewScanError(kind ErrorKind, sp span.Span) *ScanError {
	return &ScanError{Kind: kind, Span: sp}
}

// Error implements error.
func (e *ScanError) Error() string {
	return fmt.Sprintf("%s syntax error: %v", e.Span, e.Kind.Cause())
}

func (e *ScanError) Unwrap() error {
	return e.Kind.Cause()
}

// ScanErrors is the aggregate outcome of one batch scan. A non-empty
// aggregate marks the whole source unit as a failed compile, even
// though the valid tokens scanned alongside remain usable.
type ScanErrors []*ScanError

// Err folds the aggregate into a single error, or nil for a clean scan.
func (e ScanErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Error implements error.
func (e ScanErrors) Error() string {
	lines := make([]string, 0, len(e)+1)
	lines = append(lines, fmt.Sprintf("%d scan error(s)", len(e)))
	for _, se := range e {
		lines = append(lines, se.Error())
	}
	return strings.Join(lines, "\n")
}

func (e ScanErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, se := range e {
		errs[i] = se
	}
	return errs
}

var _ error = (*ScanError)(nil)
var _ error = (ScanErrors)(nil)
var _ unwrapInterface = (*ScanError)(nil)
