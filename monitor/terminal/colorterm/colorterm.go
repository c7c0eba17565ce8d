// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

//go:build linux || darwin

// Package colorterm implements the Terminal interface for the monitor. It
// supports color output, a command history and line editing.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/gopher64/monitor/terminal/colorterm/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface with a basic ANSI
// terminal.
type ColorTerminal struct {
	easyterm.Terminal

	reader         *bufio.Reader
	commandHistory [][]rune
}

// Available returns true if the color terminal can be used with stdin and
// stdout.
func Available() bool {
	return easyterm.IsTerminal(os.Stdin) && easyterm.IsTerminal(os.Stdout)
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = make([][]rune, 0)
	ct.reader = bufio.NewReader(os.Stdin)

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}
