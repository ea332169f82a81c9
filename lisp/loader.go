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

import (
	"fmt"
	"os"
)

// LoadPrelude reads path (lib.lisp, conventionally) and runs it against
// it.Global. A missing prelude is a FatalInitError: the language is not
// usable without it, so the caller should treat this as unrecoverable (§7).
// A parse or evaluation error inside the prelude propagates as the
// *LispError of its own kind.
func (it *Interpreter) LoadPrelude(path string) {
	text, err := os.ReadFile(path)
	if err != nil {
		raise(it, FatalInitError, Pos{Source: path}, "cannot load prelude: %v", err)
	}
	it.RunSource(it.Global, path, string(text))
}

// RunFile loads and runs a source file against a fresh child of it.Global,
// printing the result of the last top-level form. A *LispError during the
// run is reported to stderr and the file's remaining forms are abandoned;
// any other panic is not ours to handle and is re-raised (§7).
func (it *Interpreter) RunFile(path string) {
	text, err := os.ReadFile(path)
	if err != nil {
		raise(it, FatalInitError, Pos{Source: path}, "cannot read file: %v", err)
	}
	env := newEnvironment(it.Global)
	defer func() {
		if r := recover(); r != nil {
			if le, ok := r.(*LispError); ok {
				fmt.Fprintln(os.Stderr, le.Error())
				return
			}
			panic(r)
		}
	}()
	result := it.RunSource(env, path, string(text))
	fmt.Println(Print(result))
}
