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

import "github.com/google/uuid"

const (
	intCacheMin = -128
	intCacheMax = 128
)

// Interpreter bundles every piece of process-wide state the source this
// spec was distilled from kept as ambient globals: the symbol table, the
// NIL/T singletons, the small-int cache, and the root environment. Keeping
// them on one value (rather than as package-level state) lets a host run
// more than one independent interpreter; see §9 and SPEC_FULL §5.
//
// ID has no effect on language semantics; it exists so a host embedding
// several interpreters can correlate diagnostics with the one that produced
// them (SPEC_FULL §6).
type Interpreter struct {
	ID      uuid.UUID
	symtab  *symtab
	Nil     Value
	True    Value
	intCache [intCacheMax - intCacheMin + 1]Value
	Global  *Environment
	metrics metrics
	curPos  Pos // position of the top-level form currently being run; §4.10
}

// NewInterpreter constructs a fresh interpreter context: a private symbol
// table, the NIL/T singletons, the small-int cache, and a root environment
// pre-populated with the built-ins of §4.7.
func NewInterpreter() *Interpreter {
	it := &Interpreter{
		ID:     uuid.New(),
		symtab: newSymtab(),
		Nil:    Null{},
		True:   Bool{},
	}
	for i := range it.intCache {
		it.intCache[i] = Int(int64(i) + intCacheMin)
	}
	it.Global = newEnvironment(nil)
	it.Global.bind(it.intern("NIL"), it.Nil)
	it.Global.bind(it.intern("T"), it.True)
	registerBuiltins(it)
	return it
}

// intern returns the canonical *Symbol for spelling, upcasing it first.
func (it *Interpreter) intern(spelling string) *Symbol {
	return it.symtab.intern(spelling)
}

// NewInt returns the Value for n, reusing the cached instance when n falls
// in the pre-allocated range [-128, 128].
func (it *Interpreter) NewInt(n int64) Value {
	if n >= intCacheMin && n <= intCacheMax {
		return it.intCache[n-intCacheMin]
	}
	return Int(n)
}
