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

package terminal

import "errors"

// ErrUserInterrupt is returned by TermRead() when the user presses CTRL-C.
var ErrUserInterrupt = errors.New("user interrupt")

// Style is used to hint at the type of output being printed.
type Style int

// List of output styles.
const (
	StyleFeedback Style = iota
	StyleHelp
	StyleError
	StyleNotice
	StyleEcho
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input without the line ending. An
	// io.EOF error indicates that there will be no more input.
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()
}
