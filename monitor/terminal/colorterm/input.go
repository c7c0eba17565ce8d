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

package colorterm

import (
	"io"
	"slices"
	"unicode"

	"github.com/jetsetilly/gopher64/monitor/terminal"
	"github.com/jetsetilly/gopher64/monitor/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher64/monitor/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	var input []rune
	cursor := 0
	history := len(ct.commandHistory)

	// the latest input is kept when scrolling through the history so that
	// it isn't lost if the user scrolls back down
	var buffInput []rune

	redraw := func() {
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint(ansi.PenStyles["bold"])
		ct.TermPrint(prompt)
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input))
		ct.TermPrint(ansi.CursorMove(cursor - len(input)))
	}

	for {
		redraw()

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyCtrlC:
			ct.TermPrint("\r\n")
			return "", terminal.ErrUserInterrupt

		case easyterm.KeyCtrlD:
			if len(input) == 0 {
				ct.TermPrint("\r\n")
				return "", io.EOF
			}

		case easyterm.KeyCarriageReturn:
			if len(input) > 0 {
				n := len(ct.commandHistory)
				if n == 0 || !slices.Equal(ct.commandHistory[n-1], input) {
					ct.commandHistory = append(ct.commandHistory, slices.Clone(input))
				}
			}
			ct.TermPrint("\r\n")
			return string(input), nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history == len(ct.commandHistory) {
					buffInput = slices.Clone(input)
				}
				if history > 0 {
					history--
					input = slices.Clone(ct.commandHistory[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					input = slices.Clone(ct.commandHistory[history])
					cursor = len(input)
				} else if history == len(ct.commandHistory)-1 {
					history++
					input = buffInput
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.EscDelete:
				// delete key is followed by a tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = slices.Delete(input, cursor, cursor+1)
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				input = slices.Delete(input, cursor-1, cursor)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = slices.Insert(input, cursor, r)
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}
