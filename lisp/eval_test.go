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

func mustRun(t *testing.T, it *Interpreter, env *Environment, src string) Value {
	t.Helper()
	return it.RunSource(env, "<test>", src)
}

func newTestEnv(it *Interpreter) *Environment {
	return newEnvironment(it.Global)
}

func expectLispError(t *testing.T, kind ErrorKind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a %s panic, got none", kind)
		}
		le, ok := r.(*LispError)
		if !ok {
			t.Fatalf("expected *LispError, got %T: %v", r, r)
		}
		if le.Kind != kind {
			t.Fatalf("expected %s, got %s: %v", kind, le.Kind, le)
		}
	}()
	fn()
}

func TestArithmeticCoercion(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	if got := mustRun(t, it, env, "(+ 1 2)"); got != Int(3) {
		t.Fatalf("(+ 1 2) = %v, want 3", Print(got))
	}
	if got := mustRun(t, it, env, "(+ 1 2.5)"); got != Float(3.5) {
		t.Fatalf("(+ 1 2.5) = %v, want 3.5", Print(got))
	}
	if got := mustRun(t, it, env, `(+ "foo" "bar")`); got != String("foobar") {
		t.Fatalf(`(+ "foo" "bar") = %v, want "foobar"`, Print(got))
	}
	expectLispError(t, TypeError, func() {
		mustRun(t, it, env, `(+ 1 "x")`)
	})
}

func TestLexicalClosureCapturesDefiningEnv(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	mustRun(t, it, env, "(set make-adder (lambda (n) (lambda (x) (+ x n))))")
	mustRun(t, it, env, "(set add3 (make-adder 3))")
	got := mustRun(t, it, env, "(add3 10)")
	if got != Int(13) {
		t.Fatalf("(add3 10) = %v, want 13", Print(got))
	}
}

func TestClosureIgnoresBindingsAddedToChildFrame(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	mustRun(t, it, env, "(set n 5)")
	mustRun(t, it, env, "(set f (lambda () n))")
	before := mustRun(t, it, env, "(f)")

	// bind "n" in a *child* of env, never touching env itself — f was
	// constructed directly in env, so this must not be visible to it
	child := newEnvironment(env)
	child.bind(it.intern("N"), Int(999))

	after := mustRun(t, it, env, "(f)")
	if before != Int(5) || after != Int(5) {
		t.Fatalf("closure saw unrelated child binding: before=%v after=%v", Print(before), Print(after))
	}
}

func TestRestParameter(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	mustRun(t, it, env, "(set f (lambda (a &rest r) r))")
	got := mustRun(t, it, env, "(f 1 2 3 4)")
	if Print(got) != "(2 3 4)" {
		t.Fatalf("(f 1 2 3 4) = %v, want (2 3 4)", Print(got))
	}
	got = mustRun(t, it, env, "(f 1)")
	if !IsNil(got) {
		t.Fatalf("(f 1) = %v, want NIL", Print(got))
	}
}

func TestMacroExpansion(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	mustRun(t, it, env, `(defmacro unless (c body) (cons 'cond (cons (cons (cons '== (cons c (cons NIL NIL))) (cons body NIL)) NIL)))`)
	got := mustRun(t, it, env, "(unless NIL 42)")
	if got != Int(42) {
		t.Fatalf("(unless NIL 42) = %v, want 42", Print(got))
	}
}

func TestMacroexpandThenEvalEqualsDirectCall(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	mustRun(t, it, env, `(defmacro double (x) (cons '+ (cons x (cons x NIL))))`)
	direct := mustRun(t, it, env, "(double 21)")
	expanded := mustRun(t, it, env, "(eval (macroexpand '(double 21)))")
	if direct != Int(42) || expanded != Int(42) {
		t.Fatalf("direct=%v expanded=%v, want both 42", Print(direct), Print(expanded))
	}
}

func TestSetSemantics(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	mustRun(t, it, env, "(set x 1)")
	mustRun(t, it, env, "(set x 2)")
	got := mustRun(t, it, env, "x")
	if got != Int(2) {
		t.Fatalf("x = %v, want 2", Print(got))
	}

	mustRun(t, it, env, "(progn (set y 7))")
	expectLispError(t, NameError, func() {
		mustRun(t, it, env, "y")
	})
}

func TestCondAndWhile(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	mustRun(t, it, env, "(set i 0)")
	mustRun(t, it, env, "(set s 0)")
	mustRun(t, it, env, "(while (< i 5) (progn (set s (+ s i)) (set i (+ i 1))))")
	got := mustRun(t, it, env, "s")
	if got != Int(10) {
		t.Fatalf("s = %v, want 10", Print(got))
	}
}

func TestEvalQuoteIdentity(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	got := mustRun(t, it, env, "(eval (quote (+ 1 2)))")
	if got != Int(3) {
		t.Fatalf("(eval (quote (+ 1 2))) = %v, want 3", Print(got))
	}
}

func TestUnboundSymbolIsNameError(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)
	expectLispError(t, NameError, func() {
		mustRun(t, it, env, "totally-unbound-symbol")
	})
}

func TestArityErrorOnLambdaCall(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)
	mustRun(t, it, env, "(set f (lambda (a b) (+ a b)))")
	expectLispError(t, ArityError, func() {
		mustRun(t, it, env, "(f 1)")
	})
}

func TestCallingNonCallableIsTypeError(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)
	mustRun(t, it, env, "(set x 5)")
	expectLispError(t, TypeError, func() {
		mustRun(t, it, env, "(x 1 2)")
	})
}
