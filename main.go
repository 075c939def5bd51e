// Released under an MIT license. See LICENSE.

/*
Umlang is a small expression language with closures, prototype-style
objects and exceptions.

	{define fact {fn {n} {if {= n 0} 1 {* n {fact {- n 1}}}}}}
	{fact 10}

	{define counter
	  {let {{count {cell 0}}}
	    {obj {:next {} {seq {set count {+ {get count} 1}} {get count}}}}}}
	{counter :next}

Programs named on the command line are run in order. Then, if stdin is a
terminal, a read-eval-print loop is started.

Umlang is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/umlang/internal/common/interface/literal"
	"github.com/michaelmacinnis/umlang/internal/engine"
	"github.com/michaelmacinnis/umlang/internal/system/options"
	"github.com/michaelmacinnis/umlang/internal/ui"
)

func main() {
	options.Parse(os.Args[1:])

	var trace io.Writer
	if options.Trace() {
		trace = os.Stderr
	}

	e := engine.New(engine.Config{
		Machine: options.Machine(),
		Stdout:  os.Stdout,
		Trace:   trace,
	})

	for _, path := range options.Files() {
		_, _, err := e.LoadFile(path)
		if err != nil {
			exit(err)
		}
	}

	if s := options.Expression(); s != "" {
		v, ok, err := e.EvaluateProgramString(s)
		if err != nil {
			exit(err)
		}

		if ok {
			fmt.Println(literal.String(v))
		}

		return
	}

	if options.Stdin() {
		s, err := ui.Pipe(e, os.Stdin, os.Stdout, os.Stderr)
		if err != nil {
			exit(err)
		}

		if s.Errors() > 0 {
			os.Exit(1)
		}

		return
	}

	if options.Interactive() {
		err := ui.Run(e, os.Stdout, os.Stderr)
		if err != nil {
			exit(err)
		}
	}
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
