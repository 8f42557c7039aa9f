// Package parse implements the parser for lls code.
//
// A chunk of code consists of forms, separated by newlines or semicolons. A
// form consists of words separated by spaces or tabs; the first word is the
// head, and the rest are arguments. A word is one of:
//
//   - A bare word, which extends to the next whitespace or separator.
//
//   - A single-quoted string, in which two consecutive single quotes stand for
//     a literal single quote and all other characters stand for themselves.
//
//   - A double-quoted string, which supports the same escape sequences as Go's
//     interpreted string literals.
//
// A "#" at the start of a word starts a comment, which runs until the end of
// the line.
package parse

import (
	"strconv"
	"strings"

	"github.com/elves/linkedlist/pkg/diag"
	"github.com/elves/linkedlist/pkg/errutil"
)

// Source describes a piece of source code.
type Source struct {
	Name   string
	Code   string
	IsFile bool
}

// Chunk is the result of parsing a Source.
type Chunk struct {
	diag.Ranging
	Forms []*Form
}

// Form is a command invocation.
type Form struct {
	diag.Ranging
	Head *Word
	Args []*Word
}

// Word is a single word, with quotes and escape sequences already processed.
type Word struct {
	diag.Ranging
	Value string
}

// ErrorType is the value of the Type field of errors returned by Parse.
const ErrorType = "parse error"

// Parse parses the given source. If there are any errors, they are combined
// with errutil.Multi and each is a *diag.Error; forms affected by errors are
// left out of the returned Chunk.
func Parse(src Source) (*Chunk, error) {
	ps := &parser{src: src}
	chunk := &Chunk{Ranging: diag.Ranging{From: 0, To: len(src.Code)}}
	for !ps.eof() {
		if form := ps.form(); form != nil {
			chunk.Forms = append(chunk.Forms, form)
		}
	}
	return chunk, errutil.Multi(ps.errors...)
}

// UnpackErrors returns the constituent *diag.Error values of an error
// returned by Parse. It returns nil if err is nil.
func UnpackErrors(err error) []*diag.Error {
	var errs []*diag.Error
	for _, e := range errutil.Unpack(err) {
		if de, ok := e.(*diag.Error); ok {
			errs = append(errs, de)
		}
	}
	return errs
}

type parser struct {
	src    Source
	pos    int
	errors []error
}

func (ps *parser) eof() bool { return ps.pos >= len(ps.src.Code) }

func (ps *parser) peek() byte { return ps.src.Code[ps.pos] }

// Parses one form and consumes the separator that terminates it. It returns
// nil if the form is empty or has errors.
func (ps *parser) form() *Form {
	var words []*Word
	bad := false
loop:
	for {
		ps.skipBlanks()
		if ps.eof() {
			break
		}
		switch ps.peek() {
		case '\n', ';':
			ps.pos++
			break loop
		case '#':
			ps.skipLine()
		default:
			w := ps.word()
			if w == nil {
				bad = true
				ps.skipToSeparator()
			} else {
				words = append(words, w)
			}
		}
	}
	if bad || len(words) == 0 {
		return nil
	}
	return &Form{
		Ranging: diag.MixedRanging(words[0], words[len(words)-1]),
		Head:    words[0], Args: words[1:]}
}

func (ps *parser) word() *Word {
	start := ps.pos
	var value string
	var ok bool
	switch ps.peek() {
	case '\'':
		value, ok = ps.singleQuoted()
	case '"':
		value, ok = ps.doubleQuoted()
	default:
		for !ps.eof() && !isBlank(ps.peek()) && !isSeparator(ps.peek()) {
			ps.pos++
		}
		return &Word{diag.Ranging{From: start, To: ps.pos}, ps.src.Code[start:ps.pos]}
	}
	if !ok {
		return nil
	}
	if !ps.eof() && !isBlank(ps.peek()) && !isSeparator(ps.peek()) {
		ps.error(diag.Ranging{From: ps.pos, To: ps.pos + 1},
			"unexpected character after quoted string")
		return nil
	}
	return &Word{diag.Ranging{From: start, To: ps.pos}, value}
}

func (ps *parser) singleQuoted() (string, bool) {
	start := ps.pos
	ps.pos++
	var sb strings.Builder
	for {
		if ps.eof() || ps.peek() == '\n' {
			ps.error(diag.Ranging{From: start, To: ps.pos},
				"unterminated single-quoted string")
			return "", false
		}
		if ps.peek() == '\'' {
			if ps.pos+1 < len(ps.src.Code) && ps.src.Code[ps.pos+1] == '\'' {
				sb.WriteByte('\'')
				ps.pos += 2
				continue
			}
			ps.pos++
			return sb.String(), true
		}
		sb.WriteByte(ps.peek())
		ps.pos++
	}
}

func (ps *parser) doubleQuoted() (string, bool) {
	start := ps.pos
	ps.pos++
	for {
		if ps.eof() || ps.peek() == '\n' {
			ps.error(diag.Ranging{From: start, To: ps.pos},
				"unterminated double-quoted string")
			return "", false
		}
		switch ps.peek() {
		case '\\':
			if ps.pos+1 < len(ps.src.Code) && ps.src.Code[ps.pos+1] != '\n' {
				ps.pos += 2
			} else {
				ps.pos++
			}
		case '"':
			ps.pos++
			value, err := strconv.Unquote(ps.src.Code[start:ps.pos])
			if err != nil {
				ps.error(diag.Ranging{From: start, To: ps.pos},
					"invalid escape sequence in double-quoted string")
				return "", false
			}
			return value, true
		default:
			ps.pos++
		}
	}
}

func (ps *parser) skipBlanks() {
	for !ps.eof() && isBlank(ps.peek()) {
		ps.pos++
	}
}

// Skips to the next newline, without consuming it.
func (ps *parser) skipLine() {
	for !ps.eof() && ps.peek() != '\n' {
		ps.pos++
	}
}

// Skips to the next separator, without consuming it.
func (ps *parser) skipToSeparator() {
	for !ps.eof() && !isSeparator(ps.peek()) {
		ps.pos++
	}
}

func (ps *parser) error(r diag.Ranging, msg string) {
	ps.errors = append(ps.errors, &diag.Error{
		Type:    ErrorType,
		Message: msg,
		Context: *diag.NewContext(ps.src.Name, ps.src.Code, r),
	})
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

func isSeparator(b byte) bool { return b == '\n' || b == ';' }
