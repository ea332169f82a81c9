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

// call implements the call protocol of §4.5. rawArgs is the unevaluated
// argument list from the source form.
func (it *Interpreter) call(env *Environment, callee Value, rawArgs Value) Value {
	it.metrics.calls++

	argc := listLength(rawArgs)
	if argc < 0 {
		raise(it, TypeError, it.curPos, "malformed argument list")
	}

	var name string
	var arity int
	var restSym *Symbol

	switch c := callee.(type) {
	case *Builtin:
		name, arity = c.Name.Name, c.Arity
	case *Lambda:
		name, arity, restSym = c.Name.Name, c.Arity, c.Rest
	case *Macro:
		name, arity = c.Name.Name, c.Arity
	default:
		raise(it, TypeError, it.curPos, "can't call type %s: %s", TypeOf(callee), Print(callee))
	}

	if restSym != nil {
		min := arity - 1
		if argc < min {
			raise(it, ArityError, it.curPos, "%s() takes at least %d positional arguments but %d were given", name, min, argc)
		}
	} else if arity != -1 && argc != arity {
		raise(it, ArityError, it.curPos, "%s() takes %d positional arguments but %d were given", name, arity, argc)
	}

	switch c := callee.(type) {
	case *Macro:
		expansion := it.macroExpand(env, c, rawArgs)
		return it.Eval(env, expansion)
	case *Lambda:
		args := it.evalList(env, rawArgs)
		frame := push(c.Env, c.Params, args, c.Rest)
		return it.progn(frame, c.Body)
	case *Builtin:
		if c.Eager {
			args := it.evalList(env, rawArgs)
			return c.Fn(it, env, list(args...))
		}
		return c.Fn(it, env, rawArgs)
	}
	panic("unreachable")
}

// progn pushes a fresh child frame onto env and evaluates each form of body
// (a proper list, already unevaluated) in order, returning the last value
// (or Nil for an empty body). Both the "progn" special form and Lambda
// invocation share this, matching the teacher lineage's call into its own
// progn() from inside apply/call.
func (it *Interpreter) progn(env *Environment, body Value) Value {
	child := newEnvironment(env)
	result := it.Nil
	for _, form := range listToSlice(body) {
		result = it.Eval(child, form)
	}
	return result
}

// macroExpand pushes a frame onto env binding macro's formal parameters to
// the raw (unevaluated) argument values and evaluates the macro body as an
// implicit sequence. It does not evaluate the resulting expansion; the
// caller decides whether and where to do that (§4.6).
func (it *Interpreter) macroExpand(env *Environment, macro *Macro, rawArgs Value) Value {
	frame := push(env, macro.Params, listToSlice(rawArgs), nil)
	return it.progn(frame, macro.Body)
}
