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

// registerCompareBuiltins installs "==", "!=", ">", ">=", "<", "<=": all
// arity 2, eager. "==" and "!=" accept any pair of operands (Nil and
// Symbol compare by identity, String by byte content, numbers across
// Int/Float by value); the four ordering operators require two numeric
// operands or two String operands.
func registerCompareBuiltins(it *Interpreter) {
	def(it, "==", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		a, b := binArgs(raw)
		return boolVal(it, valuesEqual(a, b))
	})
	def(it, "!=", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		a, b := binArgs(raw)
		return boolVal(it, !valuesEqual(a, b))
	})
	def(it, ">", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		a, b := binArgs(raw)
		return boolVal(it, numCompare(it, a, b, ">") > 0)
	})
	def(it, ">=", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		a, b := binArgs(raw)
		return boolVal(it, numCompare(it, a, b, ">=") >= 0)
	})
	def(it, "<", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		a, b := binArgs(raw)
		return boolVal(it, numCompare(it, a, b, "<") < 0)
	})
	def(it, "<=", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		a, b := binArgs(raw)
		return boolVal(it, numCompare(it, a, b, "<=") <= 0)
	})
}

func boolVal(it *Interpreter, b bool) Value {
	if b {
		return it.True
	}
	return it.Nil
}

// valuesEqual implements "==". Nil equals only Nil; *Symbol and *Cons
// compare by identity (pointer equality, via Go's == on interface values);
// String compares by content; Int/Float compare across representations by
// numeric value; every other pairing (including mismatched non-numeric
// types) is unequal.
func valuesEqual(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		_, ok := b.(Bool)
		return ok
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Int:
		switch y := b.(type) {
		case Int:
			return x == y
		case Float:
			return float64(x) == float64(y)
		}
		return false
	case Float:
		switch y := b.(type) {
		case Int:
			return float64(x) == float64(y)
		case Float:
			return x == y
		}
		return false
	default:
		return a == b
	}
}

// numCompare returns a negative, zero, or positive int per the ordering of
// a and b: numeric pairs compare by value (coercing Int/Float as needed),
// String pairs compare lexicographically by byte content. Any other
// pairing, including Symbols (which have no defined ordering), is a
// TypeError naming op.
func numCompare(it *Interpreter, a, b Value, op string) int {
	if sa, ok := a.(String); ok {
		sb, ok := b.(String)
		if !ok {
			raise(it, TypeError, it.curPos, "%s expects two STRING operands, got STRING and %s", op, TypeOf(b))
		}
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		default:
			return 0
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		raise(it, TypeError, it.curPos, "%s expects two numeric operands, got %s and %s", op, TypeOf(a), TypeOf(b))
	}
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

func toFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Float:
		return float64(n), true
	default:
		return 0, false
	}
}
