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

// Package ansi defines ANSI control codes for styles, colours and cursor
// movement.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// Cursor control sequences.
const (
	ClearLine         = "\033[2K"
	CursorStore       = "\0337"
	CursorRestore     = "\0338"
	CursorForwardOne  = "\033[1C"
	CursorBackwardOne = "\033[1D"
)

// CursorMove returns the sequence to move the cursor forward (positive
// values) or backward (negative values).
func CursorMove(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	}
	return ""
}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, true, "")
		DimPens[c], _ = ColorBuild(c, false, "")
	}

	PenStyles["bold"], _ = ColorBuild("", false, "bold")
	PenStyles["underline"], _ = ColorBuild("", false, "underline")
}

// ColorBuild creates the CSI sequence for the pen color and attribute. An
// empty string for either means that it is not changed.
func ColorBuild(pen string, bright bool, attribute string) (string, error) {
	var codes []string

	if pen != "" {
		target := targetPen
		if bright {
			target = targetBrightPen
		}

		var col int
		switch strings.ToLower(pen) {
		case "black":
			col = colBlack
		case "red":
			col = colRed
		case "green":
			col = colGreen
		case "yellow":
			col = colYellow
		case "blue":
			col = colBlue
		case "magenta":
			col = colMagenta
		case "cyan":
			col = colCyan
		case "white":
			col = colWhite
		case "normal", "default":
			col = colDefault
		default:
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		codes = append(codes, fmt.Sprintf("%d%d", target, col))
	}

	if attribute != "" {
		switch strings.ToLower(attribute) {
		case "bold":
			codes = append(codes, fmt.Sprintf("%d", attrBold))
		case "underline":
			codes = append(codes, fmt.Sprintf("%d", attrUnderline))
		default:
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}
