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

package memorymap

import "fmt"

// Mode is the cartridge configuration mode. The values match the bit
// patterns used by the original cartridge hardware, where bit 0 is the
// inverse of the GAME line and bit 1 is the EXROM line.
type Mode uint8

// List of valid Mode values.
const (
	Mode8K      Mode = 0
	Mode16K     Mode = 1
	ModeRAM     Mode = 2
	ModeUltimax Mode = 3
)

// ModeMask keeps only the bits of a value that are relevant to the Mode
// type.
const ModeMask = 0x03

func (m Mode) String() string {
	switch m & ModeMask {
	case Mode8K:
		return "8k Game"
	case Mode16K:
		return "16k Game"
	case ModeRAM:
		return "RAM"
	case ModeUltimax:
		return "Ultimax"
	}
	panic(fmt.Sprintf("memorymap: impossible mode (%d)", m))
}

// Lines returns the logical state of the EXROM and GAME lines for the mode.
// The lines are active low so a value of true means the line is pulled low.
func (m Mode) Lines() (exrom bool, game bool) {
	switch m & ModeMask {
	case Mode8K:
		return true, false
	case Mode16K:
		return true, true
	case ModeUltimax:
		return false, true
	}
	return false, false
}

// ModeFromLines is the inverse of Mode.Lines().
func ModeFromLines(exrom bool, game bool) Mode {
	switch {
	case exrom && game:
		return Mode16K
	case exrom:
		return Mode8K
	case game:
		return ModeUltimax
	}
	return ModeRAM
}
