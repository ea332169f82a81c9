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

// def registers one built-in in the interpreter's global environment,
// mirroring the teacher's Declare()/add_builtin() registration pattern.
func def(it *Interpreter, name string, arity int, eager bool, fn BuiltinFn) {
	sym := it.intern(name)
	it.Global.bind(sym, &Builtin{Name: sym, Arity: arity, Eager: eager, Fn: fn})
}

// registerBuiltins installs every special form and primitive of §4.7 into
// it.Global. It is called once by NewInterpreter.
func registerBuiltins(it *Interpreter) {
	def(it, "QUOTE", 1, false, builtinQuote)
	def(it, "SET", -1, false, builtinSet)
	def(it, "LAMBDA", -1, false, builtinLambda)
	def(it, "DEFMACRO", -1, false, builtinDefmacro)
	def(it, "MACROEXPAND", 1, true, builtinMacroexpand)
	def(it, "PROGN", -1, false, func(it *Interpreter, env *Environment, raw Value) Value {
		return it.progn(env, raw)
	})
	def(it, "COND", -1, false, builtinCond)
	def(it, "WHILE", 2, false, builtinWhile)
	def(it, "EVAL", 1, true, builtinEval)
	def(it, "TYPEOF", 1, true, builtinTypeof)

	registerListBuiltins(it)
	registerPrintBuiltins(it)
	registerArithBuiltins(it)
	registerCompareBuiltins(it)
}

func builtinQuote(it *Interpreter, env *Environment, raw Value) Value {
	return raw.(*Cons).Car
}

// builtinSet implements "set": pairs of (symbol, expr). For each pair,
// evaluate expr; if the symbol is bound anywhere in the chain, mutate that
// binding; otherwise create it in the current frame. An odd-length
// argument list is an ArityError (§9's open question on this point).
func builtinSet(it *Interpreter, env *Environment, raw Value) Value {
	pairs := listToSlice(raw)
	if len(pairs) < 2 || len(pairs)%2 != 0 {
		raise(it, ArityError, it.curPos, "SET() takes an even number of arguments, at least 2, but %d were given", len(pairs))
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		sym, ok := pairs[i].(*Symbol)
		if !ok {
			raise(it, TypeError, it.curPos, "can't set to type %s", TypeOf(pairs[i]))
		}
		val := it.Eval(env, pairs[i+1])
		env.set(sym, val)
	}
	return it.Nil
}

// restMarker is the spelling lambda parameter lists use to mark the
// parameter that follows as the rest parameter.
const restMarker = "&REST"

// builtinLambda implements "lambda": first arg is the parameter list,
// remaining args form the body; the lambda captures the current env.
func builtinLambda(it *Interpreter, env *Environment, raw Value) Value {
	parts := listToSlice(raw)
	if len(parts) < 2 {
		raise(it, ArityError, it.curPos, "LAMBDA() takes at least 2 positional arguments but %d were given", len(parts))
	}
	params, rest := parseParamList(it, parts[0])
	return &Lambda{
		Name:   it.intern("LAMBDA"),
		Arity:  len(params),
		Params: params,
		Rest:   rest,
		Body:   list(parts[1:]...),
		Env:    env,
	}
}

// parseParamList turns a parsed parameter-list form into the formal symbols
// and the rest symbol (nil if there is none), dropping the "&rest" marker
// symbol itself from the returned Params.
func parseParamList(it *Interpreter, raw Value) (params []*Symbol, rest *Symbol) {
	restMark := it.intern(restMarker)
	items := listToSlice(raw)
	params = make([]*Symbol, 0, len(items))
	for i := 0; i < len(items); i++ {
		sym, ok := items[i].(*Symbol)
		if !ok {
			raise(it, TypeError, it.curPos, "parameter list must contain only symbols")
		}
		if sym == restMark {
			if i+1 >= len(items) {
				raise(it, ParserError, it.curPos, "invalid syntax: &rest must be followed by a parameter")
			}
			if i+2 != len(items) {
				raise(it, ParserError, it.curPos, "invalid syntax: &rest parameter must be last")
			}
			restSym, ok := items[i+1].(*Symbol)
			if !ok {
				raise(it, TypeError, it.curPos, "&rest parameter must be a symbol")
			}
			params = append(params, restSym)
			rest = restSym
			break
		}
		params = append(params, sym)
	}
	return params, rest
}

// builtinDefmacro implements "(defmacro name (params...) body...)": binds
// name in env to a fresh Macro.
func builtinDefmacro(it *Interpreter, env *Environment, raw Value) Value {
	parts := listToSlice(raw)
	if len(parts) < 3 {
		raise(it, ArityError, it.curPos, "DEFMACRO() takes at least 3 positional arguments but %d were given", len(parts))
	}
	name, ok := parts[0].(*Symbol)
	if !ok {
		raise(it, TypeError, it.curPos, "macro name must be a symbol")
	}
	params, _ := parseParamList(it, parts[1])
	macro := &Macro{Name: name, Arity: len(params), Params: params, Body: list(parts[2:]...)}
	env.bind(name, macro)
	return macro
}

// builtinMacroexpand implements the standalone "macroexpand" built-in: its
// argument, once evaluated, must itself be a call form whose head names a
// macro (§9's open question on this shape). It returns the expansion
// without evaluating it further.
func builtinMacroexpand(it *Interpreter, env *Environment, raw Value) Value {
	arg := raw.(*Cons).Car
	form, ok := arg.(*Cons)
	if !ok {
		raise(it, TypeError, it.curPos, "macroexpand expects a call form, got %s", TypeOf(arg))
	}
	headSym, ok := form.Car.(*Symbol)
	if !ok {
		raise(it, TypeError, it.curPos, "macroexpand expects a call form whose head is a symbol")
	}
	b, ok := env.lookup(headSym)
	if !ok {
		raise(it, NameError, it.curPos, "unbound symbol: %s", headSym.Name)
	}
	macro, ok := b.val.(*Macro)
	if !ok {
		raise(it, TypeError, it.curPos, "%s is not a macro", headSym.Name)
	}
	return it.macroExpand(env, macro, form.Cdr)
}

// builtinCond implements "cond": each argument is a (test result) pair;
// evaluate tests in order, returning the result of the first whose test is
// not Nil. Returns Nil if none match.
func builtinCond(it *Interpreter, env *Environment, raw Value) Value {
	for _, clause := range listToSlice(raw) {
		parts := listToSlice(clause)
		if len(parts) != 2 {
			raise(it, TypeError, it.curPos, "cond clause must be a (test result) pair")
		}
		if Truthy(it.Eval(env, parts[0])) {
			return it.Eval(env, parts[1])
		}
	}
	return it.Nil
}

// builtinWhile implements "while": evaluate the first form; while it is not
// Nil, evaluate the second form. Returns Nil.
func builtinWhile(it *Interpreter, env *Environment, raw Value) Value {
	parts := listToSlice(raw)
	if len(parts) != 2 {
		raise(it, ArityError, it.curPos, "WHILE() takes 2 positional arguments but %d were given", len(parts))
	}
	for Truthy(it.Eval(env, parts[0])) {
		it.Eval(env, parts[1])
	}
	return it.Nil
}

// builtinEval implements "eval": if the (already evaluated) argument is a
// String, parse it and run the resulting forms in env; otherwise the
// argument is evaluated once more in env, so (eval (quote X)) evaluates X.
func builtinEval(it *Interpreter, env *Environment, raw Value) Value {
	arg := raw.(*Cons).Car
	if s, ok := arg.(String); ok {
		return it.RunSource(env, "<eval>", string(s))
	}
	return it.Eval(env, arg)
}

// builtinTypeof returns the interned uppercase type-name symbol for its
// argument.
func builtinTypeof(it *Interpreter, env *Environment, raw Value) Value {
	arg := raw.(*Cons).Car
	return it.intern(TypeOf(arg))
}

// TypeOf returns the type-name string used by "typeof" and in error
// messages, matching obj_type_to_str's names.
func TypeOf(v Value) string {
	switch v.(type) {
	case Null:
		return "NULL"
	case Bool:
		return "BOOL"
	case Int:
		return "INT"
	case Float:
		return "FLOAT"
	case String:
		return "STRING"
	case *Symbol:
		return "SYMBOL"
	case *Cons:
		return "CONS"
	case *Builtin:
		return "BUILTIN"
	case *Lambda:
		return "LAMBDA"
	case *Macro:
		return "MACRO"
	case *Environment:
		return "ENV"
	default:
		return "UNKNOWN"
	}
}
