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

// Package lisp implements the evaluator for a small Lisp-family language:
// the value model, the parser, the lexical environment, and the built-in
// special forms and operators that make the language self-hosting enough
// to run a prelude.
package lisp

// Value is the universal tagged datum. Every concrete type below implements
// it; type switches over Value are expected to be exhaustive, the way the
// teacher's Scmer/expr interfaces are dispatched.
type Value interface {
	isValue()
}

// Null is the unique empty-list and false value. There is exactly one
// instance, Nil, held by every *Interpreter.
type Null struct{}

func (Null) isValue() {}

// Bool is the only truthy boolean. Its unique instance is True, held by
// every *Interpreter. Falsity is represented by Null, never by Bool.
type Bool struct{}

func (Bool) isValue() {}

// Int is a 64-bit signed integer.
type Int int64

func (Int) isValue() {}

// Float is an IEEE-754 double.
type Float float64

func (Float) isValue() {}

// String is an immutable byte sequence.
type String string

func (String) isValue() {}

// Symbol is an interned spelling. Two Symbol values are equal (in the
// language sense) iff they are the same pointer; *Symbol is the identity.
type Symbol struct {
	Name string // always upper-cased
}

func (*Symbol) isValue() {}

// Cons is a pair. A proper list is either Nil or a *Cons whose Cdr is a
// proper list.
type Cons struct {
	Car Value
	Cdr Value
}

func (*Cons) isValue() {}

// BuiltinFn is the signature every primitive and special form implements.
// raw is the unevaluated argument list as it appeared in the call form; for
// an eager builtin the call protocol has already evaluated it into a fresh
// list before invoking Fn.
type BuiltinFn func(it *Interpreter, env *Environment, raw Value) Value

// Builtin is a primitive operation or special form registered at
// interpreter construction time.
type Builtin struct {
	Name  *Symbol
	Arity int // -1 means variadic
	Eager bool
	Fn    BuiltinFn
}

func (*Builtin) isValue() {}

// Lambda is a user-defined function. Its Env is exactly the environment in
// effect where the lambda form was evaluated; invoking it pushes a fresh
// frame whose parent is Env, never the caller's environment.
type Lambda struct {
	Name   *Symbol
	Arity  int
	Params []*Symbol
	Rest   *Symbol // nil if the lambda has no &rest parameter
	Body   Value   // proper list of body forms
	Env    *Environment
}

func (*Lambda) isValue() {}

// Macro is a user-defined macro. Unlike Lambda it carries no environment:
// its body is expanded in the caller's environment.
type Macro struct {
	Name   *Symbol
	Arity  int
	Params []*Symbol
	Body   Value // proper list of body forms
}

func (*Macro) isValue() {}

// IsNil reports whether v is the Null singleton.
func IsNil(v Value) bool {
	_, ok := v.(Null)
	return ok
}

// Truthy implements the language's truthiness rule: Nil is false, every
// other value (including Int(0), an empty String, and True) is true.
func Truthy(v Value) bool {
	return !IsNil(v)
}

// list builds a proper list from vs, terminated by Nil.
func list(vs ...Value) Value {
	var tail Value = Null{}
	for i := len(vs) - 1; i >= 0; i-- {
		tail = &Cons{Car: vs[i], Cdr: tail}
	}
	return tail
}

// listLength returns the length of a proper list, or -1 if x is not a
// proper list (Nil or a chain of Cons ending in Nil).
func listLength(x Value) int {
	n := 0
	for {
		switch v := x.(type) {
		case Null:
			return n
		case *Cons:
			n++
			x = v.Cdr
		default:
			return -1
		}
	}
}

// listToSlice collects a proper list into a Go slice, in order.
func listToSlice(x Value) []Value {
	out := make([]Value, 0)
	for {
		switch v := x.(type) {
		case Null:
			return out
		case *Cons:
			out = append(out, v.Car)
			x = v.Cdr
		default:
			return out
		}
	}
}
