package diag

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/loxlang/loxscan/internal/span"
)

var (
	headerColor = color.New(color.FgRed, color.Bold)
	gutterColor = color.New(color.FgHiBlack)
	caretColor  = color.New(color.FgYellow, color.Bold)
)

// Diagnostic renders one positioned message against its source: a
// path:line:col header followed by a window of the surrounding lines
// with a caret underline tracking the span, across line breaks if
// needed. Color is dropped automatically on non-terminal output.
type Diagnostic struct {
	Source []byte
	Path   string
	Span   span.Span
	Msg    string
}

func New(source []byte, path string, sp span.Span, msg string) *Diagnostic {
	return &Diagnostic{Source: source, Path: path, Span: sp, Msg: msg}
}

// contextLine is one line of the rendered window. When highlighted,
// [hlStart, hlEnd) is the byte range of text covered by the span.
type contextLine struct {
	text        string
	line        int
	highlighted bool
	hlStart     int
	hlEnd       int
}

// contextWindow collects the source lines touched by the span plus
// before/after extra lines of context, computing the per-line
// highlight ranges.
func (d *Diagnostic) contextWindow(before, after int) []contextLine {
	start := d.Span.StartLocation(d.Source)
	end := d.Span.EndLocation(d.Source)

	lines := strings.Split(string(d.Source), "\n")
	first := max(start.Line-before, 1)
	last := min(end.Line+after, len(lines))

	// Carets to distribute: span length minus the newlines inside it.
	covered := d.Source[d.Span.Start:d.Span.End]
	left := d.Span.Len() - bytes.Count(covered, []byte{'\n'})

	var window []contextLine
	for num := first; num <= last; num++ {
		cl := contextLine{text: lines[num-1], line: num}
		if num >= start.Line && num <= end.Line {
			hlStart := 0
			if num == start.Line {
				hlStart = start.Col - 1
			}
			hlEnd := hlStart + min(left, len(cl.text)-hlStart)
			left -= hlEnd - hlStart
			cl.highlighted, cl.hlStart, cl.hlEnd = true, hlStart, hlEnd
		}
		window = append(window, cl)
	}
	return window
}

// String implements fmt.Stringer.
func (d *Diagnostic) String() string {
	loc := d.Span.StartLocation(d.Source)

	out := []string{fmt.Sprintf("%s at %s:%d:%d: %s",
		headerColor.Sprint("Error"), d.Path, loc.Line, loc.Col, d.Msg)}

	for _, cl := range d.contextWindow(1, 1) {
		out = append(out, fmt.Sprintf(" %s%s",
			gutterColor.Sprintf("%4d | ", cl.line), cl.text))
		if cl.highlighted && cl.hlEnd > cl.hlStart {
			out = append(out, strings.Repeat(" ", cl.hlStart+8)+
				caretColor.Sprint(strings.Repeat("^", cl.hlEnd-cl.hlStart)))
		}
	}
	return strings.Join(out, "\n")
}

// Err prints the diagnostic to stderr.
func (d *Diagnostic) Err() {
	fmt.Fprintln(os.Stderr, d)
}

var _ fmt.Stringer = (*Diagnostic)(nil)
