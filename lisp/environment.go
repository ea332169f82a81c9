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

// binding is one (symbol, value) entry of a frame's association list.
type binding struct {
	sym *Symbol
	val Value
}

// Environment is a frame in the lexical chain. Parent is nil only at the
// root. No frame is ever removed; Go's garbage collector reclaims frames
// that become unreachable, including ones involved in Lambda/Environment
// reference cycles (see §5/§9 — reference counting would be unsound here).
type Environment struct {
	Parent  *Environment
	bindings []binding
}

func (*Environment) isValue() {}

func newEnvironment(parent *Environment) *Environment {
	return &Environment{Parent: parent}
}

// lookup scans the current frame for sym, then recurses into Parent. It
// returns the *binding (so callers can mutate its value in place) and
// whether sym was found anywhere in the chain.
func (e *Environment) lookup(sym *Symbol) (*binding, bool) {
	for env := e; env != nil; env = env.Parent {
		for i := range env.bindings {
			if env.bindings[i].sym == sym {
				return &env.bindings[i], true
			}
		}
	}
	return nil, false
}

// bind prepends (sym, value) to the current frame, shadowing any outer
// binding; later lookups in this frame find the new entry first.
func (e *Environment) bind(sym *Symbol, val Value) {
	e.bindings = append([]binding{{sym, val}}, e.bindings...)
}

// set mutates the nearest existing binding for sym, or creates one in the
// current frame if sym is unbound anywhere in the chain.
func (e *Environment) set(sym *Symbol, val Value) {
	if b, ok := e.lookup(sym); ok {
		b.val = val
		return
	}
	e.bind(sym, val)
}

// push allocates a new frame whose parent is env, binding params to args in
// lock-step. If rest is non-nil and appears among params, it is bound to
// the remaining tail of args (already evaluated or not, whichever the
// caller passed in) and iteration stops.
func push(env *Environment, params []*Symbol, args []Value, rest *Symbol) *Environment {
	frame := newEnvironment(env)
	i := 0
	for _, p := range params {
		if rest != nil && p == rest {
			frame.bind(p, list(args[i:]...))
			return frame
		}
		frame.bind(p, args[i])
		i++
	}
	return frame
}
