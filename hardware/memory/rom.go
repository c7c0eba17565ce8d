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

	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// ErrROMSize is returned by ROM.Load() when the data is the wrong size.
var ErrROMSize = errors.New("wrong size for ROM")

// ROM is one of the 8k system ROMs. An unloaded ROM reads as zero.
type ROM struct {
	label string
	data  []uint8
}

func newROM(label string) *ROM {
	return &ROM{
		label: label,
		data:  make([]uint8, memorymap.MaskROM+1),
	}
}

func (rom *ROM) String() string {
	return rom.label
}

// Load the ROM with the data. The data must be exactly 8k.
func (rom *ROM) Load(data []uint8) error {
	if len(data) != len(rom.data) {
		return fmt.Errorf("%s: %w: %d bytes", rom.label, ErrROMSize, len(data))
	}
	copy(rom.data, data)
	return nil
}

// Read the value at the address. Only the bits covered by the ROM window are
// used.
func (rom *ROM) Read(address uint16) uint8 {
	return rom.data[address&memorymap.MaskROM]
}
