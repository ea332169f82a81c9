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

// registerListBuiltins installs "car", "cdr" and "cons", the three
// primitives a proper-list value model requires.
func registerListBuiltins(it *Interpreter) {
	def(it, "CAR", 1, true, func(it *Interpreter, env *Environment, raw Value) Value {
		c := wantCons(it, raw.(*Cons).Car, "car")
		return c.Car
	})
	def(it, "CDR", 1, true, func(it *Interpreter, env *Environment, raw Value) Value {
		c := wantCons(it, raw.(*Cons).Car, "cdr")
		return c.Cdr
	})
	def(it, "CONS", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		args := listToSlice(raw)
		return &Cons{Car: args[0], Cdr: args[1]}
	})
}

func wantCons(it *Interpreter, v Value, who string) *Cons {
	c, ok := v.(*Cons)
	if !ok {
		raise(it, TypeError, it.curPos, "%s expects a CONS, got %s", who, TypeOf(v))
	}
	return c
}
