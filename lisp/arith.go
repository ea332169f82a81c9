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

// registerArithBuiltins installs "+", "-", "*", "/": all arity 2, eager.
// Int op Int stays Int; any Float operand promotes both to Float. "+" has
// one extra rule: String + String concatenates. Every other operand
// combination is a TypeError.
func registerArithBuiltins(it *Interpreter) {
	def(it, "+", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		a, b := binArgs(raw)
		if sa, ok := a.(String); ok {
			sb, ok := b.(String)
			if !ok {
				raise(it, TypeError, it.curPos, "+ expects two STRING operands, got STRING and %s", TypeOf(b))
			}
			return String(string(sa) + string(sb))
		}
		return numericOp(it, a, b, "+",
			func(x, y int64) int64 { return x + y },
			func(x, y float64) float64 { return x + y })
	})
	def(it, "-", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		a, b := binArgs(raw)
		return numericOp(it, a, b, "-",
			func(x, y int64) int64 { return x - y },
			func(x, y float64) float64 { return x - y })
	})
	def(it, "*", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		a, b := binArgs(raw)
		return numericOp(it, a, b, "*",
			func(x, y int64) int64 { return x * y },
			func(x, y float64) float64 { return x * y })
	})
	def(it, "/", 2, true, func(it *Interpreter, env *Environment, raw Value) Value {
		a, b := binArgs(raw)
		if isZero(b) {
			raise(it, TypeError, it.curPos, "division by zero")
		}
		return numericOp(it, a, b, "/",
			func(x, y int64) int64 { return x / y },
			func(x, y float64) float64 { return x / y })
	})
}

func binArgs(raw Value) (Value, Value) {
	args := listToSlice(raw)
	return args[0], args[1]
}

func isZero(v Value) bool {
	switch n := v.(type) {
	case Int:
		return n == 0
	case Float:
		return n == 0
	default:
		return false
	}
}

// numericOp applies intOp when both a and b are Int, or floatOp (after
// promoting both to Float) when either is a Float. Any other combination is
// a TypeError naming op.
func numericOp(it *Interpreter, a, b Value, op string, intOp func(int64, int64) int64, floatOp func(float64, float64) float64) Value {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return it.NewInt(intOp(int64(x), int64(y)))
		case Float:
			return Float(floatOp(float64(x), float64(y)))
		}
	case Float:
		switch y := b.(type) {
		case Int:
			return Float(floatOp(float64(x), float64(y)))
		case Float:
			return Float(floatOp(float64(x), float64(y)))
		}
	}
	raise(it, TypeError, it.curPos, "%s expects two numeric operands, got %s and %s", op, TypeOf(a), TypeOf(b))
	panic("unreachable")
}
