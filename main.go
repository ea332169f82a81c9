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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kelchtermans/golisp/lisp"
)

func main() {
	fmt.Print(`golisp Copyright (C) 2023   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
`)

	it := lisp.NewInterpreter()

	defer func() {
		if r := recover(); r != nil {
			if le, ok := r.(*lisp.LispError); ok {
				if le.Kind == lisp.FatalInitError {
					log.Fatal(le.Error())
				}
				fmt.Fprintln(os.Stderr, le.Error())
				os.Exit(1)
			}
			panic(r)
		}
	}()

	it.LoadPrelude("lib.lisp")

	if len(os.Args) > 1 {
		it.RunFile(os.Args[1])
		return
	}
	it.Repl()
}
