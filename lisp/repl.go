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
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
)

const (
	newPrompt    = "\033[32m>>> \033[0m"
	contPrompt   = "\033[32m... \033[0m"
	resultPrompt = "\033[31m= \033[0m"
)

// unterminatedMessages are the ParserError messages that mean "the form is
// incomplete, read another line" rather than "the input is malformed".
var unterminatedMessages = map[string]bool{
	"unterminated list":      true,
	"unterminated string":    true,
	"unexpected end of input": true,
}

// Repl runs an interactive read-eval-print loop on stdin/stdout, grounded
// on the teacher's scm.Repl: chzyer/readline for line editing and history,
// an anti-panic wrapper per evaluated form, and a continuation prompt when
// a form spans multiple lines. It returns when the user sends EOF.
func (it *Interpreter) Repl() {
	historyFile, err := historyFilePath()
	if err != nil {
		historyFile = ".golisp_history"
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()
	onexit.Register(func() { l.Close() })

	env := newEnvironment(it.Global)
	buffer := ""
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if buffer == "" {
				break
			}
			buffer = ""
			l.SetPrompt(newPrompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}

		if buffer != "" {
			buffer += "\n" + line
		} else {
			buffer = line
		}
		if buffer == "" {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					le, ok := r.(*LispError)
					if ok && le.Kind == ParserError && unterminatedMessages[le.Message] {
						l.SetPrompt(contPrompt)
						return
					}
					fmt.Fprintln(os.Stderr, errorString(r))
					buffer = ""
					l.SetPrompt(newPrompt)
				}
			}()
			result := it.RunSource(env, "<stdin>", buffer)
			fmt.Print(resultPrompt)
			fmt.Println(Print(result))
			buffer = ""
			l.SetPrompt(newPrompt)
		}()
	}
}

func errorString(r interface{}) string {
	if le, ok := r.(*LispError); ok {
		return le.Error()
	}
	return fmt.Sprintf("panic: %v", r)
}

func historyFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return home + "/.golisp_history", nil
}
