// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for umlang.
//
// The umlang lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk "Lexical
// Scanning in Go". See https://talks.golang.org/2011/lex.slide for more
// information.
//
// The lexer is incremental. Text may be passed to it in pieces, for example
// one line at a time, and a token that spans pieces is emitted once it is
// complete. A token is complete when the character after it has been seen,
// so the last token in a source is only emitted if the source ends with a
// delimiter.
package lexer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/umlang/internal/common/struct/loc"
	"github.com/michaelmacinnis/umlang/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	saved action   // Escaped action.
	state action   // Current action.

	source loc.T // Current location.
	start  loc.T // Location of the current token.

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.start = l.source
	l.state = skipWhitespace

	return l
}

// Pending returns true if the lexer holds the beginning of a token.
func (l *T) Pending() bool {
	return len(l.queue) > 0 || l.first < len(l.bytes)
}

// Reset discards any text not yet scanned. Line numbering continues.
func (l *T) Reset() {
	l.bytes = ""
	l.first = 0
	l.index = 0
	l.queue = nil
	l.saved = nil
	l.state = skipWhitespace

	l.skip()
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Source returns the location of the current token.
func (l *T) Source() loc.T {
	return l.start
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

//nolint:gochecknoglobals
var number = regexp.MustCompile(`^[-+]?\d+((\.\d+([eE][-+]?\d+)?)|([eE][-+]?\d+))?$`)

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens <- token.New(c, v, l.start)
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
	l.start = l.source
}

func delimiter(r token.Class) bool {
	switch r {
	case eof, '(', ')', '[', ']', '{', '}', ';', '"':
		return true
	}

	return unicode.IsSpace(rune(r))
}

// T states.

func escapeNextCharacter(l *T) action {
	r, w := l.peek()
	if r == eof {
		return nil
	}

	l.accept(r, w)

	return l.resume()
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case delimiter(r):
			s := l.Text()
			if number.MatchString(s) {
				l.emit(token.Number, s)
			} else {
				l.emit(token.Symbol, s)
			}

			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func scanString(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '"':
			l.accept(r, w)
			l.emit(token.String, l.Text())

			return skipWhitespace
		case '\\':
			l.accept(r, w)

			return l.escape(scanString, escapeNextCharacter)
		default:
			l.accept(r, w)
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.accept(r, w)
			l.skip()

			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '(', ')', '[', ']', '{', '}':
			l.accept(r, w)
			l.emit(r, l.Text())

			return skipWhitespace
		case ';':
			l.accept(r, w)

			return skipComment
		case '"':
			l.accept(r, w)

			return scanString
		}

		if !unicode.IsSpace(rune(r)) {
			return scanAtom
		}

		l.accept(r, w)
		l.skip()
	}
}
