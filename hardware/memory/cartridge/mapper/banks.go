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
	"fmt"

	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// BankInfo identifies the bank mapped into a window.
type BankInfo struct {
	Area   memorymap.Area
	Number int

	// is cartridge bank writable
	IsRAM bool

	// the window is not mapped to the cartridge in the current mode
	NonCart bool
}

func (b BankInfo) String() string {
	if b.NonCart {
		return fmt.Sprintf("%s -", b.Area)
	}
	if b.IsRAM {
		return fmt.Sprintf("%s %dR", b.Area, b.Number)
	}
	return fmt.Sprintf("%s %d", b.Area, b.Number)
}

// GetBanks returns the bank information for the ROML and ROMH windows. The
// ram argument indicates whether RAM is currently mapped into the ROML
// window.
func GetBanks(cfg Config, ram bool) [2]BankInfo {
	var b [2]BankInfo

	b[0] = BankInfo{Area: memorymap.ROML, Number: cfg.Bank, IsRAM: ram}
	b[1] = BankInfo{Area: memorymap.ROMH, Number: cfg.Bank}

	switch cfg.Mode {
	case memorymap.ModeRAM:
		b[0].NonCart = true
		b[1].NonCart = true
	case memorymap.Mode8K:
		b[1].NonCart = true
	}

	return b
}
