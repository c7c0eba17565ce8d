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
	"encoding/hex"

	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/raminit"
)

// RAM represents the 64k of DRAM in the C64.
type RAM struct {
	env *environment.Environment
	RAM []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(env *environment.Environment) *RAM {
	return &RAM{
		env: env,
		RAM: make([]uint8, 0x10000),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.RAM = make([]uint8, len(ram.RAM))
	copy(n.RAM, ram.RAM)
	return &n
}

// Reset contents of RAM to the power-up pattern or to random values if the
// hardware.randstate preference is set.
func (ram *RAM) Reset() {
	if ram.env != nil && ram.env.Prefs != nil && ram.env.Prefs.RandomState.Get().(bool) {
		raminit.System.Fill(ram.RAM, ram.env.Random)
		return
	}
	raminit.System.Fill(ram.RAM, nil)
}

func (ram *RAM) String() string {
	return hex.Dump(ram.RAM)
}

// Read the value at the address.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.RAM[address]
}

// Write the value to the address.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.RAM[address] = data
}
