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

func TestListPrimitives(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	if got := mustRun(t, it, env, "(car (cons 1 2))"); got != Int(1) {
		t.Fatalf("(car (cons 1 2)) = %v, want 1", Print(got))
	}
	if got := mustRun(t, it, env, "(cdr (cons 1 2))"); got != Int(2) {
		t.Fatalf("(cdr (cons 1 2)) = %v, want 2", Print(got))
	}
	expectLispError(t, TypeError, func() {
		mustRun(t, it, env, "(car 5)")
	})
}

func TestDivisionTruncatesAndRejectsZero(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	if got := mustRun(t, it, env, "(/ 7 2)"); got != Int(3) {
		t.Fatalf("(/ 7 2) = %v, want 3", Print(got))
	}
	if got := mustRun(t, it, env, "(/ 7.0 2)"); got != Float(3.5) {
		t.Fatalf("(/ 7.0 2) = %v, want 3.5", Print(got))
	}
	expectLispError(t, TypeError, func() {
		mustRun(t, it, env, "(/ 1 0)")
	})
}

func TestOrderingOnNumbersAndStrings(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	if got := mustRun(t, it, env, "(< 1 2)"); got != it.True {
		t.Fatalf("(< 1 2) = %v, want T", Print(got))
	}
	if got := mustRun(t, it, env, `(< "abc" "abd")`); got != it.True {
		t.Fatalf(`(< "abc" "abd") = %v, want T`, Print(got))
	}
	if got := mustRun(t, it, env, "(>= 3 3)"); got != it.True {
		t.Fatalf("(>= 3 3) = %v, want T", Print(got))
	}
	expectLispError(t, TypeError, func() {
		mustRun(t, it, env, "(< 'a 'b)")
	})
}

func TestEqualityIdentityAndCoercion(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	if got := mustRun(t, it, env, "(== NIL NIL)"); got != it.True {
		t.Fatalf("(== NIL NIL) = %v, want T", Print(got))
	}
	if got := mustRun(t, it, env, "(== 1 1.0)"); got != it.True {
		t.Fatalf("(== 1 1.0) = %v, want T", Print(got))
	}
	if got := mustRun(t, it, env, `(!= "a" "b")`); got != it.True {
		t.Fatalf(`(!= "a" "b") = %v, want T`, Print(got))
	}
	if got := mustRun(t, it, env, "(== 'foo 'foo)"); got != it.True {
		t.Fatalf("(== 'foo 'foo) = %v, want T (same interned symbol)", Print(got))
	}
}

func TestTypeof(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)

	cases := map[string]string{
		"NIL":         "NULL",
		"T":           "BOOL",
		"1":           "INT",
		"1.5":         "FLOAT",
		`"x"`:         "STRING",
		"'foo":        "SYMBOL",
		"(cons 1 2)":  "CONS",
		"car":         "BUILTIN",
	}
	for src, want := range cases {
		got := mustRun(t, it, env, "(typeof "+src+")")
		sym, ok := got.(*Symbol)
		if !ok || sym.Name != want {
			t.Fatalf("(typeof %s) = %v, want %s", src, Print(got), want)
		}
	}
}

func TestPreludeDefinesListHelpers(t *testing.T) {
	it := NewInterpreter()
	env := newTestEnv(it)
	mustRun(t, it, env, `
		(set list (lambda (&rest xs) xs))
		(set not (lambda (x) (cond (x NIL) (T T))))
		(set null (lambda (x) (== x NIL)))
		(set length (lambda (lst) (cond ((null lst) 0) (T (+ 1 (length (cdr lst)))))))
	`)
	if got := mustRun(t, it, env, "(length (list 1 2 3))"); got != Int(3) {
		t.Fatalf("(length (list 1 2 3)) = %v, want 3", Print(got))
	}
	if got := mustRun(t, it, env, "(not NIL)"); got != it.True {
		t.Fatalf("(not NIL) = %v, want T", Print(got))
	}
}
