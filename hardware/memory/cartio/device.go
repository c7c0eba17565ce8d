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

package cartio

import (
	"fmt"

	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// Handler is implemented by any device that responds to accesses in the IO1
// or IO2 windows. The address is the CPU address masked by the Mask field of
// the Device.
type Handler interface {
	Store(addr uint16, data uint8)

	// Read returns the value at the address and whether the read is valid. A
	// read can have side effects.
	Read(addr uint16) (uint8, bool)

	// Peek returns the value at the address without side effects.
	Peek(addr uint16) uint8
}

// Funcs implements the Handler interface with functions. A nil StoreFunc
// ignores the data, a nil ReadFunc returns an invalid read and a nil PeekFunc
// returns zero.
type Funcs struct {
	StoreFunc func(addr uint16, data uint8)
	ReadFunc  func(addr uint16) (uint8, bool)
	PeekFunc  func(addr uint16) uint8
}

// Store implements the Handler interface.
func (f Funcs) Store(addr uint16, data uint8) {
	if f.StoreFunc != nil {
		f.StoreFunc(addr, data)
	}
}

// Read implements the Handler interface.
func (f Funcs) Read(addr uint16) (uint8, bool) {
	if f.ReadFunc != nil {
		return f.ReadFunc(addr)
	}
	return 0, false
}

// Peek implements the Handler interface.
func (f Funcs) Peek(addr uint16) uint8 {
	if f.PeekFunc != nil {
		return f.PeekFunc(addr)
	}
	return 0
}

// Action defines the action of a register address.
type Action int

// List of valid Action values.
const (
	// the register switches the bank or configuration mode
	ActionBankSwitch Action = iota

	// a simple register with no effect on the memory configuration
	ActionRegister

	// any register with more complex behaviour than bank switching. for
	// example, the Action Replay control register also disables the
	// cartridge
	ActionFunction

	// the address is claimed by the device but is unused
	ActionReserved
)

func (a Action) String() string {
	switch a {
	case ActionBankSwitch:
		return "bankswitch"
	case ActionRegister:
		return "register"
	case ActionFunction:
		return "function"
	case ActionReserved:
		return "reserved"
	}
	return "unknown"
}

// Device describes a device in the IO1 or IO2 window.
type Device struct {
	Name string

	// IO1 or IO2
	Area memorymap.Area

	// the range of addresses the device responds to
	Origin uint16
	Memtop uint16

	// mask applied to the address before it is given to the Handler
	Mask uint16

	// if ReadValid is false then reads from the device are never valid. the
	// Handler's Read() function is still called for its side effects
	ReadValid bool

	// symbol and action for the register
	Symbol string
	Action Action

	Handler Handler
}

func (dev Device) String() string {
	return fmt.Sprintf("$%04X-$%04X %s %s (%s)", dev.Origin, dev.Memtop, dev.Area, dev.Name, dev.Symbol)
}

// the window for each area
func window(area memorymap.Area) (uint16, uint16, bool) {
	switch area {
	case memorymap.IO1:
		return memorymap.OriginIO1, memorymap.MemtopIO1, true
	case memorymap.IO2:
		return memorymap.OriginIO2, memorymap.MemtopIO2, true
	}
	return 0, 0, false
}

// check device is well formed
func (dev Device) check() error {
	origin, memtop, ok := window(dev.Area)
	if !ok {
		return fmt.Errorf("%w: %s: area %s is not an I/O area", ErrDevice, dev.Name, dev.Area)
	}
	if dev.Origin < origin || dev.Memtop > memtop || dev.Origin > dev.Memtop {
		return fmt.Errorf("%w: %s: range $%04X-$%04X is outside %s", ErrDevice, dev.Name, dev.Origin, dev.Memtop, dev.Area)
	}
	if dev.Handler == nil {
		return fmt.Errorf("%w: %s: no handler", ErrDevice, dev.Name)
	}
	return nil
}

func (dev Device) contains(addr uint16) bool {
	return addr >= dev.Origin && addr <= dev.Memtop
}
