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

import "testing"

// TestInterpretersDoNotShareState proves that nothing about an Interpreter
// is ambient: a symbol interned and bound in one interpreter's global
// environment must be unobservable from a second, independently
// constructed interpreter.
func TestInterpretersDoNotShareState(t *testing.T) {
	a := NewInterpreter()
	b := NewInterpreter()

	mustRun(t, a, a.Global, "(set my-private-var 123)")

	sym := b.intern("MY-PRIVATE-VAR")
	if _, ok := b.Global.lookup(sym); ok {
		t.Fatalf("symbol bound in interpreter a is visible in interpreter b")
	}

	if a.ID == b.ID {
		t.Fatalf("two interpreters were assigned the same ID")
	}
}

func TestEachInterpreterHasItsOwnNilAndTrue(t *testing.T) {
	a := NewInterpreter()
	b := NewInterpreter()
	if !IsNil(a.Nil) || !IsNil(b.Nil) {
		t.Fatalf("Nil singleton is not Null")
	}
	if !Truthy(a.True) || !Truthy(b.True) {
		t.Fatalf("True singleton is not truthy")
	}
}
