// Released under an MIT license. See LICENSE.

package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/umlang/internal/engine"
)

func setup() (*Session, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	e := engine.New(engine.Config{Stdout: stdout})

	return NewSession(e, stdout, stderr), stdout, stderr
}

func TestSessionPrintsResults(t *testing.T) {
	s, stdout, stderr := setup()

	s.Line(`{define x 1} {+ x 1} "two"`)
	s.Line(`{fn {y} y}`)

	require.Equal(t, "2\n\"two\"\n#<fn {y} y>\n", stdout.String())
	require.Empty(t, stderr.String())
	require.Zero(t, s.Errors())
}

func TestSessionContinuation(t *testing.T) {
	s, stdout, _ := setup()

	require.Equal(t, Ready, s.Prompt())

	s.Line("{+ 1")
	require.Equal(t, Continue, s.Prompt())
	require.Empty(t, stdout.String())

	s.Line("   2}")
	require.Equal(t, Ready, s.Prompt())
	require.Equal(t, "3\n", stdout.String())
}

func TestSessionContinuesAfterErrors(t *testing.T) {
	s, stdout, stderr := setup()

	s.Line("undefined")
	s.Line("{if}")
	s.Line("1 ) 2")
	s.Line("{throw 5}")
	s.Line("3")

	require.Equal(t, 4, s.Errors())
	require.Equal(t, "1\n3\n", stdout.String())

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.Equal(t, []string{
		"unbound variable: undefined",
		"bad 'if' syntax: {if}",
		"umlang:3:3: unexpected close-parenthesis",
		"exception thrown: 5",
	}, lines)
}

func TestSessionReset(t *testing.T) {
	s, stdout, _ := setup()

	s.Line("{+ 1")
	s.Reset()
	require.Equal(t, Ready, s.Prompt())

	s.Line("4")
	require.Equal(t, "4\n", stdout.String())
}

func TestPipe(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	e := engine.New(engine.Config{Stdout: stdout})

	s, err := Pipe(e, strings.NewReader("{display \"hi\"}\n{+ 1\n2}\n{"), stdout, stderr)
	require.NoError(t, err)
	require.Equal(t, 1, s.Errors())
	require.Equal(t, "hi0\n3\n", stdout.String())
	require.Contains(t, stderr.String(), "missing close-brace at end of input")
}
