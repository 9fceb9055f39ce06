package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/loxlang/loxscan/internal/diag"
	"github.com/loxlang/loxscan/internal/loxerrors"
	"github.com/loxlang/loxscan/internal/scanner"
)

type LoxApp struct {
	err      error
	reporter loxerrors.ErrReporter
}

func NewLoxApp() *LoxApp {
	return &LoxApp{reporter: loxerrors.NewErrReporter(os.Stderr)}
}

func (app *LoxApp) reportError(err error) {
	app.reporter.ReportError(err)
	app.err = err
}

func (app *LoxApp) Main(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			app.reporter.ReportPanic(fmt.Errorf("%v", r))
			code = 64
		}
	}()

	var err error
	switch len(args) {
	case 1:
		err = app.runFile(args[0])
	case 0:
		err = app.runPrompt()
	default:
		err = fmt.Errorf("Usage: loxscan [script]")
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return 64
	}

	return 0
}

func (app *LoxApp) resetError() {
	app.err = nil
}

func (app *LoxApp) runPrompt() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		// A fresh scan per line; errors never leak across prompts.
		if err := app.run("repl", []byte(line)); err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

func (app *LoxApp) runFile(scriptPath string) error {
	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	return app.run(scriptPath, src)
}

// run batch-scans one source unit. Tokens are dumped to stdout; every
// scan error is rendered as a positioned diagnostic and the unit is
// then reported as a single failed compile.
func (app *LoxApp) run(path string, src []byte) error {
	tokens, errs := scanner.ScanAll(src)

	for _, tok := range tokens {
		fmt.Printf("%v %q\n", tok, tok.Lexeme(src))
	}

	for _, se := range errs {
		diag.New(src, path, se.Span, se.Kind.Cause().Error()).Err()
	}

	if err := errs.Err(); err != nil {
		return fmt.Errorf("failed to compile %s: %w", path, err)
	}

	return nil
}
