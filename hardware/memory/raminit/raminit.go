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

// Package raminit initialises RAM to the state it is found in on power-up.
//
// Real DRAM powers up in a pattern of alternating values that depends on the
// chips used. The Pattern type describes the pattern with a start value and
// two inversion rules:
//
//   - the value is inverted when bit ValueInvert of (address + ValueOffset)
//     is set
//   - the value is XORed with PatternInvertValue when bit PatternInvert of
//     the address is set
//
// For example, the pattern used by the Action Replay and Pagefox cartridges
// produces the sequence ff 00 00 ff ff 00 00 ff ... for the first 256 bytes
// and the inverse sequence for the next 256 bytes.
package raminit

import (
	"github.com/jetsetilly/gopher64/random"
)

// Pattern describes the contents of RAM on power-up.
type Pattern struct {
	StartValue uint8

	ValueInvert int
	ValueOffset int

	PatternInvert      int
	PatternInvertValue uint8
}

// Cartridge is the pattern used by cartridges with static RAM.
var Cartridge = Pattern{
	StartValue:         0xff,
	ValueInvert:        2,
	ValueOffset:        1,
	PatternInvert:      0x100,
	PatternInvertValue: 0xff,
}

// System is the pattern used by the C64 DRAM. Blocks of 64 bytes alternate
// between 00 and ff.
var System = Pattern{
	StartValue:  0x00,
	ValueInvert: 0x40,
}

// Value returns the value for the address.
func (p Pattern) Value(addr int) uint8 {
	v := p.StartValue
	if p.ValueInvert != 0 && (addr+p.ValueOffset)&p.ValueInvert != 0 {
		v ^= 0xff
	}
	if p.PatternInvert != 0 && addr&p.PatternInvert != 0 {
		v ^= p.PatternInvertValue
	}
	return v
}

// Fill data with the pattern. If rnd is not nil then data is filled with
// random values instead.
func (p Pattern) Fill(data []uint8, rnd *random.Random) {
	if rnd != nil {
		rnd.Fill(data)
		return
	}
	for i := range data {
		data[i] = p.Value(i)
	}
}
