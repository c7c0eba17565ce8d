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

// Package memorymap describes the memory areas of the C64 as seen by the CPU
// for each of the four cartridge configuration modes. The configuration mode
// is set by the state of the EXROM and GAME lines on the expansion port.
//
// The MapAddress() function is a pure function of the address and the mode.
// It does not consider the CPU port (LORAM, HIRAM, CHAREN) and assumes the
// default setting of all three lines being high.
//
// The Summary() function gives an overview of the memory map for a mode.
// For example, the 8k game mode:
//
//	0000 -> 7fff	RAM
//	8000 -> 9fff	ROML
//	a000 -> bfff	BASIC
//	c000 -> cfff	RAM
//	d000 -> ddff	Chips
//	de00 -> deff	IO1
//	df00 -> dfff	IO2
//	e000 -> ffff	KERNAL
package memorymap
