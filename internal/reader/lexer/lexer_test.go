// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/umlang/internal/common/struct/loc"
	"github.com/michaelmacinnis/umlang/internal/common/struct/token"
)

func TestBrackets(t *testing.T) {
	h := setup(t, "Brackets")

	h.scan("{+ 1 [x]}\n",
		h.at(1, 1, '{', "{"),
		h.at(1, 2, token.Symbol, "+"),
		h.at(1, 4, token.Number, "1"),
		h.at(1, 6, '[', "["),
		h.at(1, 7, token.Symbol, "x"),
		h.at(1, 8, ']', "]"),
		h.at(1, 9, '}', "}"),
		nil,
	)
}

func TestClassification(t *testing.T) {
	h := setup(t, "Classification")

	h.scan("-5.6 1e3 2.5E-2 +7 1. .5 - x1 #t :m #:base\n",
		h.at(1, 1, token.Number, "-5.6"),
		h.at(1, 6, token.Number, "1e3"),
		h.at(1, 10, token.Number, "2.5E-2"),
		h.at(1, 17, token.Number, "+7"),
		h.at(1, 20, token.Symbol, "1."),
		h.at(1, 23, token.Symbol, ".5"),
		h.at(1, 26, token.Symbol, "-"),
		h.at(1, 28, token.Symbol, "x1"),
		h.at(1, 31, token.Symbol, "#t"),
		h.at(1, 34, token.Symbol, ":m"),
		h.at(1, 37, token.Symbol, "#:base"),
		nil,
	)
}

func TestComments(t *testing.T) {
	h := setup(t, "Comments")

	h.scan("; a comment\n42 ; another\nx\n",
		h.at(2, 1, token.Number, "42"),
		h.at(3, 1, token.Symbol, "x"),
		nil,
	)
}

func TestIncremental(t *testing.T) {
	h := setup(t, "Incremental")

	h.scan("{foo",
		h.at(1, 1, '{', "{"),
		nil,
	)

	if !h.lexer.Pending() {
		t.Fatal("Expected partial token to be pending")
	}

	h.scan(" bar}\n",
		h.at(1, 2, token.Symbol, "foo"),
		h.at(1, 6, token.Symbol, "bar"),
		h.at(1, 9, '}', "}"),
		nil,
	)

	if h.lexer.Pending() {
		t.Fatal("Expected nothing to be pending")
	}
}

func TestReset(t *testing.T) {
	h := setup(t, "Reset")

	h.scan(`"unfinished`, nil)

	h.lexer.Reset()

	if h.lexer.Pending() {
		t.Fatal("Expected nothing to be pending after reset")
	}

	h.scan("\nok\n",
		h.at(2, 1, token.Symbol, "ok"),
		nil,
	)
}

func TestStrings(t *testing.T) {
	h := setup(t, "Strings")

	h.scan(`"a\"b" x"y;z"`+"\n",
		h.at(1, 1, token.String, `"a\"b"`),
		h.at(1, 8, token.Symbol, "x"),
		h.at(1, 9, token.String, `"y;z"`),
		nil,
	)
}

func TestStringSpansLines(t *testing.T) {
	h := setup(t, "StringSpansLines")

	h.scan(`"one`+"\n", nil)

	if !h.lexer.Pending() {
		t.Fatal("Expected open string to be pending")
	}

	h.scan(`two"`+"\n",
		h.at(1, 1, token.String, "\"one\ntwo\""),
		nil,
	)
}

type harness struct {
	label string
	lexer *T
	t     *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		label: label,
		lexer: New(label),
		t:     t,
	}
}

func (h *harness) at(line, char int, c token.Class, s string) *token.T {
	return token.New(c, s, loc.T{
		Char: char,
		Line: line,
		Name: h.label,
	})
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)
	h.expect(tokens...)
}
