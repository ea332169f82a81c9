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
	"fmt"
	"strconv"
	"strings"
)

// Print renders v the way the REPL and the "print"/"println" built-ins do:
// readably for every type that round-trips through the parser, and with a
// descriptive placeholder for the handful that don't (builtins, lambdas,
// macros, environments).
func Print(v Value) string {
	switch t := v.(type) {
	case Null:
		return "NIL"
	case Bool:
		return "T"
	case Int:
		return strconv.FormatInt(int64(t), 10)
	case Float:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case String:
		return quoteString(string(t))
	case *Symbol:
		return t.Name
	case *Cons:
		return printList(t)
	case *Builtin:
		return "#<builtin " + t.Name.Name + ">"
	case *Lambda:
		return "#<lambda " + t.Name.Name + ">"
	case *Macro:
		return "#<macro " + t.Name.Name + ">"
	case *Environment:
		return "#<env>"
	default:
		return "#<unknown>"
	}
}

func printList(c *Cons) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	var x Value = c
	for {
		switch v := x.(type) {
		case *Cons:
			if !first {
				b.WriteByte(' ')
			}
			first = false
			b.WriteString(Print(v.Car))
			x = v.Cdr
		case Null:
			b.WriteByte(')')
			return b.String()
		default:
			// improper list: render the dotted tail
			b.WriteString(" . ")
			b.WriteString(Print(v))
			b.WriteByte(')')
			return b.String()
		}
	}
}

var stringQuoteEscapes = map[byte]string{
	'"': "\\\"", '\\': "\\\\", '\n': "\\n", '\t': "\\t", '\r': "\\r",
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc, ok := stringQuoteEscapes[c]; ok {
			b.WriteString(esc)
		} else {
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// registerPrintBuiltins installs "print" and "println", both variadic and
// eager: they render each argument with Print, space-separated, "println"
// appending a trailing newline. Both always return Nil (§4.7).
func registerPrintBuiltins(it *Interpreter) {
	def(it, "PRINT", -1, true, func(it *Interpreter, env *Environment, raw Value) Value {
		return doPrint(it, raw, false)
	})
	def(it, "PRINTLN", -1, true, func(it *Interpreter, env *Environment, raw Value) Value {
		return doPrint(it, raw, true)
	})
}

func doPrint(it *Interpreter, raw Value, newline bool) Value {
	args := listToSlice(raw)
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Print(a)
	}
	line := strings.Join(parts, " ")
	if newline {
		fmt.Println(line)
	} else {
		fmt.Print(line)
	}
	return it.Nil
}
