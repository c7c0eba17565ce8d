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

//go:build !(linux || darwin)

// Package colorterm implements the Terminal interface for the monitor. It is
// not available on this platform.
package colorterm

import (
	"errors"

	"github.com/jetsetilly/gopher64/monitor/terminal"
)

// ColorTerminal is not available on this platform. Initialise() always fails.
type ColorTerminal struct{}

// Available always returns false on this platform.
func Available() bool {
	return false
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	return errors.New("colorterm: not available on this platform")
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return false
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(_ terminal.Style, _ string) {}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(_ string) (string, error) {
	return "", errors.New("colorterm: not available on this platform")
}
