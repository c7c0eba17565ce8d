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

package mapper

import (
	"io"

	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/memory/cartio"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/banks"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/snapshot"
)

// CartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped to the ROML and ROMH windows. For
// convenience, functions with an address argument receive that address
// normalised to a range of 0x0000 to 0x1fff.
type CartMapper interface {
	ID() string
	MappedBanks() string

	Snapshot() CartMapper

	// the host bus gives access to the memory underneath the cartridge.
	// it can be nil
	Plumb(env *environment.Environment, host bus.SystemBus)

	// reset puts the cartridge into its canonical state. power up also
	// initialises any cartridge RAM
	Reset()
	PowerUp()

	// the live configuration of the cartridge. the cartridge port changes
	// the configuration directly when the freeze button is pressed
	Config() *Config

	// read and write the ROML and ROMH windows. the area argument will be
	// either memorymap.ROML or memorymap.ROMH
	//
	// a write is only called if the memory map says the window is writable
	// by the cartridge. the mapper decides whether the write has any effect
	Read(area memorymap.Area, addr uint16) uint8
	Write(area memorymap.Area, addr uint16, data uint8)

	// Peek is like Read() but without side effects
	Peek(area memorymap.Area, addr uint16) uint8

	// the I/O devices and expansion port lines used by the cartridge. these
	// are registered by the cartridge port when the cartridge is attached
	Devices() []cartio.Device
	Export() cartio.Export

	// write a description of the cartridge state to the io.Writer
	Dump(w io.Writer)

	// return copies of all banks in the cartridge
	CopyBanks() []banks.Content

	// the snapshot module for the cartridge. a failed ReadModule() leaves
	// the cartridge unchanged
	WriteModule(s *snapshot.Snapshot) error
	ReadModule(s *snapshot.Snapshot) error
}

// Freezer is implemented by cartridges that have a freeze button. The
// cartridge port will have already put the cartridge into the freeze
// configuration when Freeze() is called. The mapper makes any additional
// changes.
type Freezer interface {
	Freeze()
}

// CartRAMbus is implemented by cartridges that have RAM. Note that the RAM
// is not necessarily visible to the CPU.
type CartRAMbus interface {
	GetRAM() []CartRAM

	// update the value at the index of the specified RAM bank. the index
	// is an offset into the Data field of the CartRAM returned by GetRAM()
	PutRAM(bank int, idx int, data uint8)
}

// CartRAM represents a single segment of RAM in the cartridge.
type CartRAM struct {
	Label  string
	Origin uint16
	Data   []uint8
	Mapped bool
}
