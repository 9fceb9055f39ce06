package scanner_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/loxscan/internal/scanner"
	"github.com/loxlang/loxscan/internal/token"
)

func TestScanTokens(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected []string
		errs     []string
	}{
		{"empty", "", nil, nil},
		{
			"basic",
			"(){},.-+;*",
			[]string{
				`{Type: LEFT_PAREN, Span: [0:1)}`,
				`{Type: RIGHT_PAREN, Span: [1:2)}`,
				`{Type: LEFT_BRACE, Span: [2:3)}`,
				`{Type: RIGHT_BRACE, Span: [3:4)}`,
				`{Type: COMMA, Span: [4:5)}`,
				`{Type: DOT, Span: [5:6)}`,
				`{Type: MINUS, Span: [6:7)}`,
				`{Type: PLUS, Span: [7:8)}`,
				`{Type: SEMICOLON, Span: [8:9)}`,
				`{Type: STAR, Span: [9:10)}`,
			},
			nil,
		},
		{
			"bang",
			"!x",
			[]string{
				`{Type: BANG, Span: [0:1)}`,
				`{Type: IDENTIFIER, Span: [1:2)}`,
			},
			nil,
		},
		{
			"bangeq",
			"!=x",
			[]string{
				`{Type: BANG_EQUAL, Span: [0:2)}`,
				`{Type: IDENTIFIER, Span: [2:3)}`,
			},
			nil,
		},
		{
			"bangbangeqeqeqeq",
			"!====",
			[]string{
				`{Type: BANG_EQUAL, Span: [0:2)}`,
				`{Type: EQUAL_EQUAL, Span: [2:4)}`,
				`{Type: EQUAL, Span: [4:5)}`,
			},
			nil,
		},
		{
			"lteqeqeqeq",
			"<====",
			[]string{
				`{Type: LESS_EQUAL, Span: [0:2)}`,
				`{Type: EQUAL_EQUAL, Span: [2:4)}`,
				`{Type: EQUAL, Span: [4:5)}`,
			},
			nil,
		},
		{
			"gteq",
			">=",
			[]string{
				`{Type: GREATER_EQUAL, Span: [0:2)}`,
			},
			nil,
		},
		{
			"slash",
			"a/b",
			[]string{
				`{Type: IDENTIFIER, Span: [0:1)}`,
				`{Type: SLASH, Span: [1:2)}`,
				`{Type: IDENTIFIER, Span: [2:3)}`,
			},
			nil,
		},
		{
			"comment",
			"//comment",
			[]string{
				`{Type: COMMENT, Span: [0:9)}`,
			},
			nil,
		},
		{
			"comment-excludes-newline",
			"// a\nb",
			[]string{
				`{Type: COMMENT, Span: [0:4)}`,
				`{Type: WHITESPACE, Span: [4:5)}`,
				`{Type: IDENTIFIER, Span: [5:6)}`,
			},
			nil,
		},
		{
			"whitespace-run",
			"! \r\t\n=",
			[]string{
				`{Type: BANG, Span: [0:1)}`,
				`{Type: WHITESPACE, Span: [1:5)}`,
				`{Type: EQUAL, Span: [5:6)}`,
			},
			nil,
		},
		{
			"string",
			`"string"`,
			[]string{
				`{Type: STRING, Span: [0:8)}`,
			},
			nil,
		},
		{
			"empty-string",
			`""`,
			[]string{
				`{Type: STRING, Span: [0:2)}`,
			},
			nil,
		},
		{
			"string-over-newline",
			"\"ab\ncd\"",
			[]string{
				`{Type: STRING, Span: [0:7)}`,
			},
			nil,
		},
		{
			"unterminated-string",
			`"abc`,
			nil,
			[]string{
				`[0:4) syntax error: Unterminated string.`,
			},
		},
		{
			"number-integer",
			"10",
			[]string{
				`{Type: NUMBER, Span: [0:2)}`,
			},
			nil,
		},
		{
			"number-decimal",
			"12.34",
			[]string{
				`{Type: NUMBER, Span: [0:5)}`,
			},
			nil,
		},
		{
			"number-trailing-dot",
			"12.",
			[]string{
				`{Type: NUMBER, Span: [0:2)}`,
				`{Type: DOT, Span: [2:3)}`,
			},
			nil,
		},
		{
			"number-method-dot",
			"9.sqrt",
			[]string{
				`{Type: NUMBER, Span: [0:1)}`,
				`{Type: DOT, Span: [1:2)}`,
				`{Type: IDENTIFIER, Span: [2:6)}`,
			},
			nil,
		},
		{
			"number-two-dots",
			"9.9.9",
			nil,
			[]string{
				`[0:5) syntax error: Invalid number.`,
			},
		},
		{
			"identifier",
			"identifier",
			[]string{
				`{Type: IDENTIFIER, Span: [0:10)}`,
			},
			nil,
		},
		{
			"keyword-prefix-is-identifier",
			"forward",
			[]string{
				`{Type: IDENTIFIER, Span: [0:7)}`,
			},
			nil,
		},
		{
			"keyword",
			"for",
			[]string{
				`{Type: FOR, Span: [0:3)}`,
			},
			nil,
		},
		{
			"underscore-identifier",
			"_private9",
			[]string{
				`{Type: IDENTIFIER, Span: [0:9)}`,
			},
			nil,
		},
		{
			"unexpected-character",
			"@",
			nil,
			[]string{
				`[0:1) syntax error: Unexpected character.`,
			},
		},
		{
			"recovers-after-error",
			"@+",
			[]string{
				`{Type: PLUS, Span: [1:2)}`,
			},
			[]string{
				`[0:1) syntax error: Unexpected character.`,
			},
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var tokens, errs []string
			s := scanner.New([]byte(tc.input))
			for s.Scan() {
				if err := s.Err(); err != nil {
					errs = append(errs, err.Error())
				} else {
					tokens = append(tokens, fmt.Sprintf("%#v", s.Token()))
				}
			}

			assert.Equal(t, tc.expected, tokens)
			assert.Equal(t, tc.errs, errs)
		})
	}
}

func TestScanKeywordsExact(t *testing.T) {
	t.Parallel()

	for keyword, want := range token.Keywords() {
		keyword, want := keyword, want
		t.Run(keyword, func(t *testing.T) {
			t.Parallel()

			s := scanner.New([]byte(keyword))
			require.True(t, s.Scan())
			require.Nil(t, s.Err())
			assert.Equal(t, want, s.Token().Type)
			assert.Equal(t, len(keyword), s.Token().Span.Len())
			assert.False(t, s.Scan())

			// One extra trailing letter demotes it to an identifier.
			s = scanner.New([]byte(keyword + "x"))
			require.True(t, s.Scan())
			require.Nil(t, s.Err())
			assert.Equal(t, token.IDENTIFIER, s.Token().Type)
		})
	}
}

// Every emitted span, token or error, tiles the source exactly: no
// gaps, no overlaps, full coverage.
func TestScanPartition(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"var answer = 42;",
		"9.9.9 + @ - \"open",
		"// only a comment",
		"fun f(a, b) { return a <= b or a != b; } // tail\n",
		"\"multi\nline\" 0.5.0.5 forward for",
	}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			s := scanner.New([]byte(input))
			next := 0
			for s.Scan() {
				sp := s.Token().Span
				if err := s.Err(); err != nil {
					sp = err.Span
				}
				require.Equal(t, next, sp.Start)
				require.Greater(t, sp.End, sp.Start)
				next = sp.End
			}
			require.Equal(t, len(input), next)
		})
	}
}

func TestScanExhaustionIdempotent(t *testing.T) {
	t.Parallel()

	s := scanner.New([]byte("nil"))
	require.True(t, s.Scan())
	for i := 0; i < 3; i++ {
		assert.False(t, s.Scan())
	}
}

// Rescanning any non-trivia lexeme standalone reproduces a single
// token of the same type covering the whole slice.
func TestScanRoundTrip(t *testing.T) {
	t.Parallel()

	src := []byte("var x = 9.9; // c\nwhile (x != nil) { print \"v\"; }")
	tokens, errs := scanner.ScanAll(src)
	require.Empty(t, errs)
	require.NotEmpty(t, tokens)

	for _, tok := range tokens {
		if tok.Type == token.WHITESPACE || tok.Type == token.COMMENT {
			continue
		}

		again := scanner.New([]byte(tok.Lexeme(src)))
		require.True(t, again.Scan())
		require.Nil(t, again.Err())
		assert.Equal(t, tok.Type, again.Token().Type)
		assert.Equal(t, tok.Span.Len(), again.Token().Span.Len())
		assert.False(t, again.Scan())
	}
}

func TestScanAll(t *testing.T) {
	t.Parallel()

	src := []byte("print 1;\n@\nprint 2;")
	tokens, errs := scanner.ScanAll(src)

	require.Len(t, errs, 1)
	assert.Equal(t, `[9:10) syntax error: Unexpected character.`, errs[0].Error())
	assert.Error(t, errs.Err())

	var kinds []token.TokenType
	for _, tok := range tokens {
		if tok.Type == token.WHITESPACE {
			continue
		}
		kinds = append(kinds, tok.Type)
	}
	assert.Equal(t, []token.TokenType{
		token.PRINT, token.NUMBER, token.SEMICOLON,
		token.PRINT, token.NUMBER, token.SEMICOLON,
	}, kinds)
}
