package loxerrors

import (
	"fmt"
	"io"
)

// ErrReporter is the driver's diagnostic sink: ReportError for
// ordinary compile failures, ReportPanic for crashes caught at the
// process boundary.
type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	fmt.Fprintf(e.w, "ERROR %v\n", err)
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	fmt.Fprintf(e.w, "FATAL %v\n", err)
}

var _ ErrReporter = (*errReporter)(nil)
