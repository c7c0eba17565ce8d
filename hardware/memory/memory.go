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

package memory

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/cartio"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/snapshot"
)

// Memory is the monolithic representation of memory in the C64. The CPU only
// ever accesses memory through an instance of this type.
type Memory struct {
	env *environment.Environment

	RAM    *RAM
	BASIC  *ROM
	KERNAL *ROM

	// the registers of the chips in the Chips area. the chips themselves are
	// not emulated and so the registers are plain storage
	chips []uint8

	IO      *cartio.Dispatcher
	Exports *cartio.Exports
	Cart    *cartridge.Cartridge

	// the number of bus accesses since power-up
	cycles uint64

	// the last value seen on the data bus
	lastBus uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The expansion port is empty.
func NewMemory(env *environment.Environment) *Memory {
	mem := &Memory{
		env:     env,
		RAM:     NewRAM(env),
		BASIC:   newROM("BASIC"),
		KERNAL:  newROM("KERNAL"),
		chips:   make([]uint8, memorymap.MemtopChips-memorymap.OriginChips+1),
		Exports: cartio.NewExports(),
	}
	mem.IO = cartio.NewDispatcher(env, mem)
	mem.Cart = cartridge.NewCartridge(env, mem, mem.IO, mem.Exports)
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%s: %s", mem.Cart.Mode(), mem.Cart)
}

// Plumb a new environment into the memory and the expansion port.
func (mem *Memory) Plumb(env *environment.Environment) {
	mem.env = env
	mem.RAM.env = env
	mem.IO.Plumb(env)
	mem.Cart.Plumb(env, mem)
}

// PowerUp resets RAM and the chip registers and powers up the cartridge.
func (mem *Memory) PowerUp() {
	mem.cycles = 0
	mem.lastBus = 0
	mem.RAM.Reset()
	clear(mem.chips)
	mem.Cart.PowerUp()
}

// Reset the machine. Only the cartridge is affected.
func (mem *Memory) Reset() {
	mem.Cart.Reset()
}

// Cycles implements the random.Clock interface.
func (mem *Memory) Cycles() uint64 {
	return mem.cycles
}

// MapAddress returns the mapping for the address in the current mode of the
// expansion port.
func (mem *Memory) MapAddress(address uint16) memorymap.Mapping {
	return memorymap.MapAddress(address, mem.Cart.Mode())
}

// FloatingBus implements the bus.FloatingBus interface.
func (mem *Memory) FloatingBus() uint8 {
	return mem.lastBus
}

// ReadSystem implements the bus.SystemBus interface.
func (mem *Memory) ReadSystem(address uint16) uint8 {
	m := memorymap.MapAddress(address, memorymap.ModeRAM)
	switch m.Area {
	case memorymap.BASIC:
		return mem.BASIC.Read(address)
	case memorymap.KERNAL:
		return mem.KERNAL.Read(address)
	case memorymap.Chips:
		return mem.chips[address-memorymap.OriginChips]
	case memorymap.IO1, memorymap.IO2:
		return mem.lastBus
	}
	return mem.RAM.Read(address)
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) uint8 {
	mem.cycles++

	m := mem.MapAddress(address)
	if !m.Readable {
		return mem.lastBus
	}

	var v uint8

	switch m.Area {
	case memorymap.RAM:
		v = mem.RAM.Read(address)
	case memorymap.BASIC:
		v = mem.BASIC.Read(address)
	case memorymap.KERNAL:
		v = mem.KERNAL.Read(address)
	case memorymap.Chips:
		v = mem.chips[address-memorymap.OriginChips]
	case memorymap.ROML, memorymap.ROMH, memorymap.IO1, memorymap.IO2:
		v = mem.Cart.Read(m.Area, address)
	default:
		v = mem.lastBus
	}

	mem.lastBus = v
	return v
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.cycles++
	mem.lastBus = data

	m := mem.MapAddress(address)

	switch m.Area {
	case memorymap.ROML, memorymap.ROMH:
		mem.Cart.Write(m.Area, address, data)
		if !m.Writable {
			mem.RAM.Write(address, data)
		}
	case memorymap.IO1, memorymap.IO2:
		mem.Cart.Write(m.Area, address, data)
	case memorymap.Chips:
		mem.chips[address-memorymap.OriginChips] = data
	case memorymap.Open:
	default:
		mem.RAM.Write(address, data)
	}
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Memory) Peek(address uint16) uint8 {
	m := mem.MapAddress(address)
	if !m.Readable {
		return mem.lastBus
	}

	switch m.Area {
	case memorymap.ROML, memorymap.ROMH, memorymap.IO1, memorymap.IO2:
		return mem.Cart.Peek(m.Area, address)
	}
	return mem.ReadSystem(address)
}

// Poke implements the bus.DebuggerBus interface. Only RAM and the chip
// registers can be poked. Cartridge memory is changed through the RAM bus of
// the cartridge.
func (mem *Memory) Poke(address uint16, value uint8) {
	m := mem.MapAddress(address)
	switch m.Area {
	case memorymap.Chips:
		mem.chips[address-memorymap.OriginChips] = value
	case memorymap.IO1, memorymap.IO2, memorymap.Open:
	default:
		mem.RAM.Write(address, value)
	}
}

// Machine is the machine name used in snapshot files.
const Machine = "C64"

// ErrMachine is returned by ReadModule() when the snapshot is for a different
// machine.
var ErrMachine = errors.New("snapshot is for a different machine")

var memoryVersion = snapshot.Version{Major: 0, Minor: 0}

const memoryModule = "C64MEM"

// WriteModule writes the RAM module followed by the modules of the expansion
// port.
func (mem *Memory) WriteModule(s *snapshot.Snapshot) error {
	m, err := s.CreateModule(memoryModule, memoryVersion)
	if err != nil {
		return fmt.Errorf("memory: %w", err)
	}
	defer m.Discard()

	if err := m.WriteArray(mem.RAM.RAM); err != nil {
		return fmt.Errorf("memory: %w", err)
	}
	if err := m.WriteArray(mem.chips); err != nil {
		return fmt.Errorf("memory: %w", err)
	}
	if err := m.Close(); err != nil {
		return fmt.Errorf("memory: %w", err)
	}

	return mem.Cart.WriteModule(s)
}

// ReadModule restores memory and the expansion port from the snapshot. Memory
// is unchanged if an error is returned.
func (mem *Memory) ReadModule(s *snapshot.Snapshot) error {
	if s.Machine != Machine {
		return fmt.Errorf("memory: %w: %s", ErrMachine, s.Machine)
	}

	m, err := s.OpenModule(memoryModule)
	if err != nil {
		return fmt.Errorf("memory: %w", err)
	}
	defer m.Close()

	if err := snapshot.CheckVersion(m.Version, memoryVersion); err != nil {
		return fmt.Errorf("memory: %w", err)
	}

	ram := make([]uint8, len(mem.RAM.RAM))
	chips := make([]uint8, len(mem.chips))
	if err := m.ReadArray(ram); err != nil {
		return fmt.Errorf("memory: %w", err)
	}
	if err := m.ReadArray(chips); err != nil {
		return fmt.Errorf("memory: %w", err)
	}

	if err := mem.Cart.ReadModule(s); err != nil {
		return fmt.Errorf("memory: %w", err)
	}

	copy(mem.RAM.RAM, ram)
	copy(mem.chips, chips)

	return nil
}
