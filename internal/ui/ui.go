// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for umlang.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/umlang/internal/ast"
	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/common/interface/value"
	"github.com/michaelmacinnis/umlang/internal/reader"
	"github.com/michaelmacinnis/umlang/internal/reader/parser"
	"github.com/michaelmacinnis/umlang/internal/system/history"
)

// Prompts.
const (
	Continue = "  "
	Ready    = "> "
)

// Evaluator is the interface for things that want to run parsed programs.
type Evaluator interface {
	EvaluateProgram(program []ast.Clause) (value.I, bool, error)
}

// Session holds the state of a read-eval-print loop between lines.
type Session struct {
	e      Evaluator
	errors int
	r      *reader.T
	stderr io.Writer
	stdout io.Writer
}

// NewSession creates a session that sends each complete term to e.
// Results are written to stdout and errors to stderr.
func NewSession(e Evaluator, stdout, stderr io.Writer) *Session {
	return &Session{
		e:      e,
		r:      reader.New("umlang"),
		stderr: stderr,
		stdout: stdout,
	}
}

// Errors returns the number of errors reported so far.
func (s *Session) Errors() int {
	return s.errors
}

// Line reads one line of input. Each term completed by the line is
// translated and run, in order, and any result is printed.
func (s *Session) Line(text string) {
	ts, err := s.r.Scan(text + "\n")

	for _, t := range ts {
		c, err := parser.ParseToplevel(t)
		if err != nil {
			s.report(err)

			continue
		}

		v, ok, err := s.e.EvaluateProgram([]ast.Clause{c})
		if err != nil {
			s.report(err)
		} else if ok {
			fmt.Fprintln(s.stdout, literal.String(v))
		}
	}

	if err != nil {
		s.report(err)
	}
}

// Prompt returns the prompt for the next line.
func (s *Session) Prompt() string {
	if s.r.Pending() {
		return Continue
	}

	return Ready
}

// Reset discards any partially read input.
func (s *Session) Reset() {
	s.r.Reset()
}

func (s *Session) report(err error) {
	s.errors++

	fmt.Fprintln(s.stderr, err)
}

// Pipe runs every line read from r without prompting.
func Pipe(e Evaluator, r io.Reader, stdout, stderr io.Writer) (*Session, error) {
	s := NewSession(e, stdout, stderr)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.Line(scanner.Text())
	}

	if err := s.r.Incomplete(); err != nil {
		s.report(err)
	}

	return s, scanner.Err()
}

// Run launches the UI which sends programs to the Evaluator.
func Run(e Evaluator, stdout, stderr io.Writer) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli.SetCtrlCAborts(true)

	_ = history.Load(cli.ReadHistory)
	defer func() {
		_ = history.Save(cli.WriteHistory)
	}()

	s := NewSession(e, stdout, stderr)

	for {
		if err := uncooked.ApplyMode(); err != nil {
			return err
		}

		line, err := cli.Prompt(s.Prompt())

		merr := cooked.ApplyMode()
		if merr != nil {
			return merr
		}

		switch err {
		case nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}
		case liner.ErrPromptAborted:
			s.Reset()

			continue
		default:
			fmt.Fprintln(stdout)

			return nil
		}

		s.Line(line)
	}
}
