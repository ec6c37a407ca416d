// Package repl runs an interactive read-eval-print loop over calc expressions.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/calc/calc"
	"github.com/tliron/commonlog"
)

const helpText = `Enter an arithmetic expression, e.g. (2+3)*4.
Operators: + - * /  (all right-associative)
An empty line, :quit or Ctrl+D ends the session.`

// ErrInterrupt is returned by a LineReader when the current line was
// cancelled. The session discards it and prompts again.
var ErrInterrupt = errors.New("interrupted")

// LineReader reads one line of input after showing prompt.
// *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// HistoryAppender records lines that evaluated successfully.
type HistoryAppender interface {
	AppendHistory(item string)
}

// Session is one interactive loop.
type Session struct {
	Reader  LineReader
	History HistoryAppender // optional
	Out     io.Writer
	Err     io.Writer
	Prompt  string
	Eval    func(input string) (float64, error)
	Logger  commonlog.Logger
}

// Run reads and evaluates lines until the input ends, an empty line is
// entered or the user quits. Evaluation errors are reported and do not end
// the session; errors from the reader other than io.EOF and ErrInterrupt do.
func (s *Session) Run() error {
	log := s.Logger
	if log == nil {
		log = commonlog.GetLogger("calc.repl")
	}
	eval := s.Eval
	if eval == nil {
		eval = calc.Eval
	}

	for {
		line, err := s.Reader.Prompt(s.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.Out)
			return nil
		}
		if errors.Is(err, ErrInterrupt) {
			fmt.Fprintln(s.Out)
			continue
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		if line == "" {
			return nil
		}

		switch strings.TrimSpace(line) {
		case ":quit", ":q":
			return nil
		case ":help", ":h":
			fmt.Fprintln(s.Out, helpText)
			continue
		}

		v, err := eval(line)
		if err != nil {
			log.Debugf("eval %q: %s", line, err)
			s.report(err)
			continue
		}

		fmt.Fprintln(s.Out, calc.Format(v))
		if s.History != nil {
			s.History.AppendHistory(line)
		}
	}
}

func (s *Session) report(err error) {
	var trailing *calc.TrailingInputError
	if errors.As(err, &trailing) {
		fmt.Fprintf(s.Err, "extra input at: %s\n", trailing.Rest)
		return
	}
	fmt.Fprintf(s.Err, "error: %s\n", err)
}
