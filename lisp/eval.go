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

// Eval dispatches on x's variant, as described in §4.4. Self-evaluating
// atoms return themselves, symbols resolve against env, and Cons forms are
// calls: the head is evaluated to obtain a callable, which is invoked with
// the unevaluated tail.
func (it *Interpreter) Eval(env *Environment, x Value) Value {
	switch v := x.(type) {
	case Null, Bool, Int, Float, String:
		return x
	case *Symbol:
		b, ok := env.lookup(v)
		if !ok {
			raise(it, NameError, it.curPos, "unbound symbol: %s", v.Name)
		}
		return b.val
	case *Cons:
		callee := it.Eval(env, v.Car)
		return it.call(env, callee, v.Cdr)
	default:
		// Builtin, Lambda, Macro, *Environment: not ordinarily produced by
		// the parser, but may appear via quote/eval. Returned unchanged.
		return x
	}
}

// evalList returns a fresh list of the evaluated elements of xs, preserving
// order (§4.4's eval_list).
func (it *Interpreter) evalList(env *Environment, xs Value) []Value {
	items := listToSlice(xs)
	out := make([]Value, len(items))
	for i, form := range items {
		out[i] = it.Eval(env, form)
	}
	return out
}

// RunSource parses text (named name, for diagnostics) and evaluates each
// top-level form against env in order, returning the value of the last one
// (or Nil for an empty program). It does not recover from *LispError
// panics: that is the job of the top-level drivers (RunFile, Repl) per §7's
// propagation policy.
func (it *Interpreter) RunSource(env *Environment, name, text string) Value {
	forms := it.parseProgram(name, text)
	result := it.Nil
	for _, f := range forms {
		it.curPos = f.pos
		result = it.Eval(env, f.value)
	}
	return result
}
