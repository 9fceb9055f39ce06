package token

import (
	"fmt"

	"github.com/loxlang/loxscan/internal/span"
)

// Token represents a lexical token. It holds a classification and the
// byte range of its lexeme; the text itself stays in the caller-owned
// source buffer.
type Token struct {
	Type TokenType
	Span span.Span
}

func NewToken(t TokenType, sp span.Span) Token {
	return Token{Type: t, Span: sp}
}

// Lexeme slices the token text out of the source it was scanned from.
// src must be the same buffer, still unmodified.
func (t Token) Lexeme(src []byte) string {
	return string(src[t.Span.Start:t.Span.End])
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s", t.Type, t.Span)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Span: %s}", t.Type, t.Span)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
