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
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/banks"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/crt"
)

// loadable is implemented by every mapper that can be attached to the
// expansion port.
type loadable interface {
	// the data for a binary image
	loadBinary(data []uint8) error

	// the chip packets of a CRT file. the io.Reader is positioned at the
	// first packet
	loadContainer(r io.Reader) error
}

// binary images are either the exact size or the exact size plus a two byte
// load address, which is skipped
func binaryImage(data []uint8, size int, skipAddress bool) ([]uint8, error) {
	if len(data) == size {
		return data, nil
	}
	if skipAddress && len(data) == size+2 {
		return data[2:], nil
	}
	return nil, fmt.Errorf("%w: %d bytes (expected %d)", ErrImageSize, len(data), size)
}

// chipLayout describes the allowed chip packets for a cartridge type
type chipLayout struct {
	// zero means any start address is accepted
	start uint16

	size    uint16
	maxBank uint16

	// the exact number of chips required. zero means that chips are read
	// until the end of the file
	count int
}

// readChips reads the chip packets from the io.Reader. Each chip is checked
// against the layout and then passed to the load function.
func readChips(r io.Reader, layout chipLayout, load func(c crt.Chip) error) error {
	var n int
	for layout.count == 0 || n < layout.count {
		c, err := crt.ReadChip(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if layout.count == 0 {
					break
				}
				return fmt.Errorf("%w: %d chips (expected %d)", ErrChipLayout, n, layout.count)
			}
			return err
		}

		if c.Bank > layout.maxBank {
			return fmt.Errorf("%w: bank %d", ErrChipLayout, c.Bank)
		}
		if c.Size != layout.size {
			return fmt.Errorf("%w: size $%04X", ErrChipLayout, c.Size)
		}
		if layout.start != 0 && c.Start != layout.start {
			return fmt.Errorf("%w: load address $%04X", ErrChipLayout, c.Start)
		}

		if err := load(c); err != nil {
			return err
		}

		n++
	}
	return nil
}

// loadBanks copies data into the banks at the offset. an overflow is
// reported as an image size error
func loadBanks(b *banks.Banks, offset int, data []uint8) error {
	if err := b.Load(offset, data); err != nil {
		return fmt.Errorf("%w: %w", ErrImageSize, err)
	}
	return nil
}
