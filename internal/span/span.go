package span

import "fmt"

// Span is a half-open [Start, End) byte range into a source buffer.
// Spans reference the buffer by offset only; the buffer must stay alive
// and unmodified for as long as the span is in use.
type Span struct {
	Start int
	End   int
}

func New(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return s.End - s.Start
}

// String implements fmt.Stringer.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}

// Location is a 1-based line and column position.
type Location struct {
	Line int
	Col  int
}

// StartLocation resolves the first byte of the span against the source
// buffer it was cut from.
func (s Span) StartLocation(src []byte) Location {
	return LocationAt(src, s.Start)
}

// EndLocation resolves the last byte covered by the span.
func (s Span) EndLocation(src []byte) Location {
	return LocationAt(src, s.End-1)
}

// LocationAt derives the line and column of a byte offset. Columns
// count bytes since the previous newline; the scanner itself never
// tracks lines, callers compute them on demand from offsets.
func LocationAt(src []byte, offset int) Location {
	line, col := 1, 0
	for _, c := range src[:offset] {
		if c == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return Location{Line: line, Col: col + 1}
}

var _ fmt.Stringer = (*Span)(nil)
