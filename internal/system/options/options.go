// Released under an MIT license. See LICENSE.

// Package options parses umlang's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "umlang 0.1.0"

//nolint:gochecknoglobals
var (
	expression  string
	files       []string
	interactive bool
	machine     bool
	trace       bool
	usage       = `umlang

Usage:
  umlang [-mt] [-e EXPRESSION] [FILE...]
  umlang -h
  umlang -v

Arguments:
  FILE  Path to an umlang program. Files are run in order.

Options:
  -e, --evaluate=EXPRESSION  Run the specified program text after any files.
  -m, --machine              Use the explicit-state machine evaluator.
  -t, --trace                Print each machine state to stderr. Implies -m.
  -h, --help                 Display this help.
  -v, --version              Print umlang version.

If umlang's stdin is a TTY, and umlang was not directed to evaluate a
program with -e, a read-eval-print loop is started after any files are
run. If stdin is not a TTY and there is nothing else to run, each term
read from stdin is run as soon as it is complete.

Setting UMLANG_VM=1 has the same effect as -m. Setting UMLANG_VM_NOISY=1
has the same effect as -t.
`
)

// Expression returns the program text passed with -e.
func Expression() string {
	return expression
}

// Files returns the paths of the programs to run.
func Files() []string {
	return files
}

// Interactive returns true if a read-eval-print loop should be started.
func Interactive() bool {
	return interactive
}

// Machine returns true if the explicit-state machine evaluator was selected.
func Machine() bool {
	return machine
}

// Parse parses the command line arguments in argv, not including the
// program name.
func Parse(argv []string) {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	expression, _ = opts.String("--evaluate")
	files, _ = opts["FILE"].([]string)

	machine, _ = opts.Bool("--machine")
	trace, _ = opts.Bool("--trace")

	machine = machine || os.Getenv("UMLANG_VM") == "1"
	trace = trace || os.Getenv("UMLANG_VM_NOISY") == "1"
	machine = machine || trace

	interactive = expression == "" && isatty.IsTerminal(os.Stdin.Fd())
}

// Stdin returns true if the program should be read from stdin.
func Stdin() bool {
	return !interactive && expression == "" && len(files) == 0
}

// Trace returns true if machine states should be printed.
func Trace() bool {
	return trace
}
