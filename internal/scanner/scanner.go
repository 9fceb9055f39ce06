package scanner

import (
	"github.com/loxlang/loxscan/internal/loxerrors"
	"github.com/loxlang/loxscan/internal/span"
	"github.com/loxlang/loxscan/internal/token"
)

// Scanner converts a source buffer into classified lexical tokens, one
// lexeme per step. The scanner borrows the buffer for the duration of
// the scan and never copies text out of it: tokens and errors carry
// byte ranges only, so the buffer must outlive them.
//
// Not safe for concurrent use; it keeps mutable position state.
type Scanner struct {
	cur   cursor
	start int
	tok   token.Token
	err   *loxerrors.ScanError
}

func New(src []byte) *Scanner {
	return &Scanner{cur: newCursor(src)}
}

// Scan advances past the next lexeme. It returns false only at end of
// input, and keeps returning false there. After a true return exactly
// one of Token and Err holds the step's outcome; errors are
// recoverable and the cursor always lands past the offending lexeme,
// so the caller may simply keep scanning.
func (s *Scanner) Scan() bool {
	s.tok, s.err = token.Token{}, nil

	if _, ok := s.cur.peek(0); !ok {
		return false
	}

	s.start = s.cur.pos
	s.scanToken()
	return true
}

// Token returns the token produced by the last step. Only meaningful
// when Err returned nil for that step.
func (s *Scanner) Token() token.Token {
	return s.tok
}

// Err returns the scan error of the last step, or nil when the step
// produced a token.
func (s *Scanner) Err() *loxerrors.ScanError {
	return s.err
}

// ScanAll drains a fresh scanner over src, splitting the outcomes into
// the token stream and the error aggregate. The aggregate replaces any
// process-wide had-error state: a non-empty one classifies the whole
// unit as a failed compile, while the tokens stay available for
// inspection.
func ScanAll(src []byte) ([]token.Token, loxerrors.ScanErrors) {
	s := New(src)

	var tokens []token.Token
	var errs loxerrors.ScanErrors
	for s.Scan() {
		if err := s.Err(); err != nil {
			errs = append(errs, err)
		} else {
			tokens = append(tokens, s.Token())
		}
	}

	return tokens, errs
}

func (s *Scanner) scanToken() {
	c, _ := s.cur.advance()

	switch c {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case ',':
		s.addToken(token.COMMA)
	case '.':
		s.addToken(token.DOT)
	case '-':
		s.addToken(token.MINUS)
	case '+':
		s.addToken(token.PLUS)
	case ';':
		s.addToken(token.SEMICOLON)
	case '*':
		s.addToken(token.STAR)
	case '!':
		s.addMatchToken('=', token.BANG_EQUAL, token.BANG)
	case '=':
		s.addMatchToken('=', token.EQUAL_EQUAL, token.EQUAL)
	case '<':
		s.addMatchToken('=', token.LESS_EQUAL, token.LESS)
	case '>':
		s.addMatchToken('=', token.GREATER_EQUAL, token.GREATER)
	case '/':
		if s.match('/') {
			s.comment()
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\r', '\t', '\n':
		s.whitespace()
	case '"':
		s.stringLiteral()
	default:
		if isDigit(c) {
			s.number()
		} else if isAlpha(c) {
			s.reservedOrIdentifier()
		} else {
			s.reportError(loxerrors.UnexpectedCharacter)
		}
	}
}

func (s *Scanner) match(expected byte) bool {
	if c, ok := s.cur.peek(0); ok && c == expected {
		s.cur.advance()
		return true
	}
	return false
}

func (s *Scanner) addMatchToken(lookAhead byte, ifMatch, ifNotMatched token.TokenType) {
	if s.match(lookAhead) {
		s.addToken(ifMatch)
	} else {
		s.addToken(ifNotMatched)
	}
}

func (s *Scanner) addToken(t token.TokenType) {
	s.tok = token.NewToken(t, span.New(s.start, s.cur.pos))
}

func (s *Scanner) reportError(kind loxerrors.ErrorKind) {
	s.err = loxerrors.NewScanError(kind, span.New(s.start, s.cur.pos))
}

func (s *Scanner) advanceWhile(pred func(byte) bool) {
	for {
		c, ok := s.cur.peek(0)
		if !ok || !pred(c) {
			return
		}
		s.cur.advance()
	}
}

// comment consumes a // line comment up to, but not including, the
// terminating newline.
func (s *Scanner) comment() {
	s.advanceWhile(func(c byte) bool { return c != '\n' })
	s.addToken(token.COMMENT)
}

func (s *Scanner) whitespace() {
	s.advanceWhile(isSpace)
	s.addToken(token.WHITESPACE)
}

// stringLiteral consumes through the closing quote. Escape sequences
// are not interpreted, so every quote closes. Hitting end of input
// first reports the whole open literal as unterminated.
func (s *Scanner) stringLiteral() {
	for {
		c, ok := s.cur.advance()
		if !ok {
			s.reportError(loxerrors.UnterminatedString)
			return
		}
		if c == '"' {
			s.addToken(token.STRING)
			return
		}
	}
}

// number consumes a numeric literal. A '.' joins the literal only when
// the byte after it is a digit, so "9.sqrt" scans as NUMBER DOT
// IDENTIFIER. A second accepted '.' makes the literal invalid; the rest
// of the digit/dot run is swallowed so the cursor lands past the
// malformed lexeme, then the whole range is reported.
func (s *Scanner) number() {
	seenDot := false
	for {
		c, ok := s.cur.peek(0)
		if !ok {
			break
		}
		if isDigit(c) {
			s.cur.advance()
			continue
		}
		next, nextOK := s.cur.peek(1)
		if c != '.' || !nextOK || !isDigit(next) {
			break
		}
		if seenDot {
			s.advanceWhile(func(c byte) bool { return isDigit(c) || c == '.' })
			s.reportError(loxerrors.InvalidNumber)
			return
		}
		seenDot = true
		s.cur.advance()
	}
	s.addToken(token.NUMBER)
}

func (s *Scanner) reservedOrIdentifier() {
	s.advanceWhile(isAlphaNumeric)

	tokenType := token.IDENTIFIER
	name := string(s.cur.window(s.start))
	if t, ok := token.Reserved(name); ok {
		tokenType = t
	}
	s.addToken(tokenType)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\r' || c == '\t' || c == '\n'
}
