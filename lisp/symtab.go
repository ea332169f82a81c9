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

import "strings"

// symtab interns symbol spellings to a single *Symbol, so that identity
// equality decides case-insensitive spelling equality. It belongs to a
// single *Interpreter rather than being process-wide, per the design note
// in §9 about bundling ambient state into an explicit context value.
type symtab struct {
	table map[string]*Symbol
}

func newSymtab() *symtab {
	return &symtab{table: make(map[string]*Symbol)}
}

// intern upcases spelling (ASCII) and returns the canonical *Symbol for it,
// allocating one on first use.
func (t *symtab) intern(spelling string) *Symbol {
	name := strings.ToUpper(spelling)
	if sym, ok := t.table[name]; ok {
		return sym
	}
	sym := &Symbol{Name: name}
	t.table[name] = sym
	return sym
}
