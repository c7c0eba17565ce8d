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

package cartridge

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/crt"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// WriteContainer wraps the binary image in a CRT container for the mapping
// ID. The binary image is checked by loading it into a new instance of the
// mapper, and the EXROM and GAME lines in the header are taken from the
// configuration of the mapper after power-up.
func WriteContainer(env *environment.Environment, w io.Writer, id string, name string, data []uint8) error {
	m, err := lookupID(id)
	if err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	cart := m.create(env)
	if err := cart.loadBinary(data); err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}
	cart.PowerUp()

	// skip load address
	if len(data) == m.sizes[0]+2 {
		data = data[2:]
	}

	size := int(m.layout.size)
	if len(data)%size != 0 {
		return fmt.Errorf("cartridge: %s: %w: %d bytes", m.id, ErrChipLayout, len(data))
	}

	hdr := crt.Header{
		HardwareType: m.hardwareType,
		Name:         name,
	}

	// the lines are active low
	switch cart.Config().Mode {
	case memorymap.Mode8K:
		hdr.ExROM, hdr.Game = 0, 1
	case memorymap.Mode16K:
		hdr.ExROM, hdr.Game = 0, 0
	case memorymap.ModeUltimax:
		hdr.ExROM, hdr.Game = 1, 0
	default:
		hdr.ExROM, hdr.Game = 1, 1
	}

	if err := crt.WriteHeader(w, hdr); err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	start := m.layout.start
	if start == 0 {
		start = memorymap.OriginROML
	}

	for b := range len(data) / size {
		c := crt.Chip{
			Type:  crt.ChipROM,
			Bank:  uint16(b),
			Start: start,
			Size:  m.layout.size,
			Data:  data[b*size : (b+1)*size],
		}
		if err := crt.WriteChip(w, c); err != nil {
			return fmt.Errorf("cartridge: %w", err)
		}
	}

	return nil
}
