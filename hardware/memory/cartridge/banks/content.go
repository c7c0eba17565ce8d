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

package banks

import "fmt"

// Content contains data and ID of a cartridge bank. Used by the monitor to
// list the contents of a cartridge without affecting the state of the
// cartridge.
type Content struct {
	Label  string
	Number int

	// copy of the bank data
	Data []uint8

	// the addresses that this data can be mapped to. the ROML bank for
	// example can be mapped to 0x8000 and the ROMH bank can be mapped to
	// either 0xa000 or 0xe000 depending on the configuration mode
	Origins []uint16
}

func (c Content) String() string {
	return fmt.Sprintf("%s bank %d (%d bytes)", c.Label, c.Number, len(c.Data))
}

// Copy returns a Content entry for every bank in the storage.
func (b *Banks) Copy(origins ...uint16) []Content {
	c := make([]Content, b.numBanks)
	for i := range c {
		d := make([]uint8, b.bankSize)
		copy(d, b.Bank(i))
		c[i] = Content{
			Label:   b.label,
			Number:  i,
			Data:    d,
			Origins: origins,
		}
	}
	return c
}
