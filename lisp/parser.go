/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lisp

import (
	"strconv"
	"strings"
)

// symbolChars is the set of characters (besides ASCII letters and digits)
// that may appear in a symbol spelling, per §4.2.
const symbolChars = "_+-*/=!@#$%^&<>"

// parser consumes a source string one character at a time, the way
// toylisp's Parser does (peek_char/next_char), and produces a proper list
// of top-level forms. It attaches a Pos (line/col) to each top-level form
// per §4.10, not to every subexpression.
type parser struct {
	it     *Interpreter
	source string // display filename, for diagnostics
	text   string
	idx    int
	line   int
	col    int
}

func newParser(it *Interpreter, source, text string) *parser {
	return &parser{it: it, source: source, text: text, line: 1, col: 0}
}

func (p *parser) peek() byte {
	if p.idx < len(p.text) {
		return p.text[p.idx]
	}
	return 0
}

func (p *parser) atEOF() bool {
	return p.idx >= len(p.text)
}

func (p *parser) next() byte {
	c := p.text[p.idx]
	p.idx++
	if c == '\n' {
		p.line++
		p.col = 0
	} else {
		p.col++
	}
	return c
}

func (p *parser) pos() Pos {
	return Pos{Source: p.source, Line: p.line, Col: p.col}
}

func (p *parser) fail(format string, args ...interface{}) {
	raise(p.it, ParserError, p.pos(), format, args...)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isSymbolStart(c byte) bool {
	return isAlpha(c) || strings.IndexByte(symbolChars, c) >= 0
}

func isSymbolCont(c byte) bool {
	return isAlpha(c) || isDigit(c) || strings.IndexByte(symbolChars, c) >= 0
}

// skipAtmosphere consumes whitespace and ';' line comments between tokens.
func (p *parser) skipAtmosphere() {
	for !p.atEOF() {
		c := p.peek()
		if isSpace(c) {
			p.next()
			continue
		}
		if c == ';' {
			for !p.atEOF() && p.peek() != '\n' {
				p.next()
			}
			continue
		}
		break
	}
}

// topForm pairs a parsed top-level form with the position it started at,
// per §4.10.
type topForm struct {
	value Value
	pos   Pos
}

// parseProgram parses source text into its top-level forms, each tagged
// with the position it started at.
func (it *Interpreter) parseProgram(name, text string) []topForm {
	p := newParser(it, name, text)
	forms := make([]topForm, 0)
	for {
		p.skipAtmosphere()
		if p.atEOF() {
			break
		}
		pos := p.pos()
		forms = append(forms, topForm{value: p.readForm(), pos: pos})
	}
	return forms
}

// ParseAll parses source text into a proper list of top-level forms, per
// §4.2. name is the display filename used in diagnostics.
func (it *Interpreter) ParseAll(name, text string) Value {
	forms := it.parseProgram(name, text)
	vals := make([]Value, len(forms))
	for i, f := range forms {
		vals[i] = f.value
	}
	return list(vals...)
}

// readForm reads exactly one form, starting at the current position (which
// must not be atmosphere).
func (p *parser) readForm() Value {
	p.skipAtmosphere()
	if p.atEOF() {
		p.fail("unexpected end of input")
	}
	c := p.peek()
	switch {
	case c == '(':
		return p.readList()
	case c == '\'':
		p.next()
		return list(p.it.intern("QUOTE"), p.readForm())
	case isDigit(c):
		return p.readNumber()
	case c == '"':
		return p.readString()
	case isSymbolStart(c):
		return p.readSymbol()
	default:
		p.fail("unprocessed character: %q", c)
		return Null{}
	}
}

func (p *parser) readList() Value {
	p.next() // consume '('
	p.skipAtmosphere()
	if !p.atEOF() && p.peek() == ')' {
		p.next()
		return Null{}
	}
	elems := make([]Value, 0)
	for {
		p.skipAtmosphere()
		if p.atEOF() {
			p.fail("unterminated list")
		}
		if p.peek() == ')' {
			p.next()
			break
		}
		elems = append(elems, p.readForm())
	}
	return list(elems...)
}

func (p *parser) readNumber() Value {
	start := p.idx
	for !p.atEOF() && isDigit(p.peek()) {
		p.next()
	}
	isFloat := false
	if !p.atEOF() && p.peek() == '.' {
		save := p.idx
		saveLine, saveCol := p.line, p.col
		p.next() // consume '.'
		if p.atEOF() || !isDigit(p.peek()) {
			// not a float: rewind, the '.' belongs to whatever comes next
			p.idx, p.line, p.col = save, saveLine, saveCol
		} else {
			isFloat = true
			for !p.atEOF() && isDigit(p.peek()) {
				p.next()
			}
		}
	}
	text := p.text[start:p.idx]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.fail("invalid number literal: %q", text)
		}
		return Float(f)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		p.fail("invalid number literal: %q", text)
	}
	return Int(n)
}

var stringEscapes = map[byte]byte{
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n',
	't': '\t', 'r': '\r', 'v': '\v', '\\': '\\', '"': '"',
}

func (p *parser) readString() Value {
	p.next() // consume opening '"'
	var b strings.Builder
	for {
		if p.atEOF() {
			p.fail("unterminated string")
		}
		c := p.next()
		if c == '"' {
			break
		}
		if c == '\\' {
			if p.atEOF() {
				p.fail("unterminated string")
			}
			esc := p.next()
			if mapped, ok := stringEscapes[esc]; ok {
				b.WriteByte(mapped)
			} else {
				// any other escaped character is passed through literally
				b.WriteByte(esc)
			}
			continue
		}
		b.WriteByte(c)
	}
	return String(b.String())
}

func (p *parser) readSymbol() Value {
	start := p.idx
	p.next() // first character already validated by caller
	for !p.atEOF() && isSymbolCont(p.peek()) {
		p.next()
	}
	return p.it.intern(p.text[start:p.idx])
}
