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

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case ROML:
		return "ROML"
	case ROMH:
		return "ROMH"
	case IO1:
		return "IO1"
	case IO2:
		return "IO2"
	case BASIC:
		return "BASIC"
	case KERNAL:
		return "KERNAL"
	case Chips:
		return "Chips"
	case Open:
		return "Open"
	}
	return "undefined"
}

// The different memory areas in the C64. Open is the unmapped space in
// ultimax mode.
const (
	Undefined Area = iota
	RAM
	ROML
	ROMH
	IO1
	IO2
	BASIC
	KERNAL
	Chips
	Open
)

// The origin and memory top for the areas of memory that are important to
// the expansion port.
const (
	OriginROML   = uint16(0x8000)
	MemtopROML   = uint16(0x9fff)
	OriginROMH   = uint16(0xa000)
	MemtopROMH   = uint16(0xbfff)
	OriginROMHU  = uint16(0xe000)
	MemtopROMHU  = uint16(0xffff)
	OriginBASIC  = uint16(0xa000)
	MemtopBASIC  = uint16(0xbfff)
	OriginChips  = uint16(0xd000)
	MemtopChips  = uint16(0xddff)
	OriginIO1    = uint16(0xde00)
	MemtopIO1    = uint16(0xdeff)
	OriginIO2    = uint16(0xdf00)
	MemtopIO2    = uint16(0xdfff)
	OriginKERNAL = uint16(0xe000)
	MemtopKERNAL = uint16(0xffff)
)

// Memtop is the top most address of memory in the C64.
const Memtop = uint16(0xffff)

// Masks for the address bits that are relevant to an area. The ROM windows
// are all 8k and the I/O windows are 256 bytes.
const (
	MaskROM = uint16(0x1fff)
	MaskIO  = uint16(0x00ff)
)

// Mapping is the result of MapAddress().
//
// If Readable is false a read returns the value on the floating bus.
//
// If Writable is false a write does not reach the device in the area. Instead
// it falls through to the RAM underneath, except for the Open and Chips
// areas.
type Mapping struct {
	Area     Area
	Readable bool
	Writable bool
}

// MapAddress returns the area of memory that the address refers to for the
// given mode.
func MapAddress(addr uint16, mode Mode) Mapping {
	// the I/O area is the same in every mode
	switch {
	case addr >= OriginIO2:
		if addr <= MemtopIO2 {
			return Mapping{Area: IO2, Readable: true, Writable: true}
		}
	case addr >= OriginIO1:
		return Mapping{Area: IO1, Readable: true, Writable: true}
	case addr >= OriginChips:
		return Mapping{Area: Chips, Readable: true, Writable: true}
	}

	switch mode & ModeMask {
	case ModeUltimax:
		switch {
		case addr < 0x1000:
			return Mapping{Area: RAM, Readable: true, Writable: true}
		case addr < OriginROML:
			return Mapping{Area: Open}
		case addr <= MemtopROML:
			return Mapping{Area: ROML, Readable: true, Writable: true}
		case addr < OriginChips:
			return Mapping{Area: Open}
		case addr >= OriginROMHU:
			return Mapping{Area: ROMH, Readable: true, Writable: true}
		}

	case Mode8K:
		if addr >= OriginROML && addr <= MemtopROML {
			return Mapping{Area: ROML, Readable: true}
		}

	case Mode16K:
		switch {
		case addr >= OriginROML && addr <= MemtopROML:
			return Mapping{Area: ROML, Readable: true}
		case addr >= OriginROMH && addr <= MemtopROMH:
			return Mapping{Area: ROMH, Readable: true}
		}
	}

	switch {
	case addr >= OriginBASIC && addr <= MemtopBASIC:
		return Mapping{Area: BASIC, Readable: true}
	case addr >= OriginKERNAL:
		return Mapping{Area: KERNAL, Readable: true}
	}

	return Mapping{Area: RAM, Readable: true, Writable: true}
}

// Normalise returns the address relative to the window of the area. For the
// ROM and I/O areas this is the offset from the origin of the area. Other
// addresses are returned unchanged.
func Normalise(addr uint16, area Area) uint16 {
	switch area {
	case ROML, ROMH, BASIC, KERNAL:
		return addr & MaskROM
	case IO1, IO2:
		return addr & MaskIO
	}
	return addr
}

// Origin returns the address for the normalised address in the area for the
// mode. It is the inverse of Normalise().
func Origin(addr uint16, area Area, mode Mode) uint16 {
	switch area {
	case ROML:
		return OriginROML | (addr & MaskROM)
	case ROMH:
		if mode&ModeMask == ModeUltimax {
			return OriginROMHU | (addr & MaskROM)
		}
		return OriginROMH | (addr & MaskROM)
	case BASIC:
		return OriginBASIC | (addr & MaskROM)
	case KERNAL:
		return OriginKERNAL | (addr & MaskROM)
	case IO1:
		return OriginIO1 | (addr & MaskIO)
	case IO2:
		return OriginIO2 | (addr & MaskIO)
	}
	return addr
}
