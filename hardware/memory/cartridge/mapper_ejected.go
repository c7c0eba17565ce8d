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
	"io"

	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/memory/cartio"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/banks"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/snapshot"
)

// the mapping ID of the ejected cartridge
const ejectedID = "-"

// ejected implements the mapper.CartMapper interface. It is used when there
// is no cartridge in the expansion port. The GAME and EXROM lines are never
// asserted so the configuration is always ModeRAM.
type ejected struct {
	config mapper.Config
}

func newEjected() *ejected {
	cart := &ejected{}
	cart.Reset()
	return cart
}

// ID implements the mapper.CartMapper interface.
func (cart *ejected) ID() string {
	return ejectedID
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *ejected) MappedBanks() string {
	return "-"
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *ejected) Snapshot() mapper.CartMapper {
	n := *cart
	return &n
}

// Plumb implements the mapper.CartMapper interface.
func (cart *ejected) Plumb(_ *environment.Environment, _ bus.SystemBus) {
}

// Reset implements the mapper.CartMapper interface.
func (cart *ejected) Reset() {
	cart.config.Reconfigure(memorymap.ModeRAM, 0, 0)
}

// PowerUp implements the mapper.CartMapper interface.
func (cart *ejected) PowerUp() {
	cart.Reset()
}

// Config implements the mapper.CartMapper interface.
func (cart *ejected) Config() *mapper.Config {
	return &cart.config
}

// Read implements the mapper.CartMapper interface.
func (cart *ejected) Read(_ memorymap.Area, _ uint16) uint8 {
	return 0
}

// Write implements the mapper.CartMapper interface.
func (cart *ejected) Write(_ memorymap.Area, _ uint16, _ uint8) {
}

// Peek implements the mapper.CartMapper interface.
func (cart *ejected) Peek(_ memorymap.Area, _ uint16) uint8 {
	return 0
}

// Devices implements the mapper.CartMapper interface.
func (cart *ejected) Devices() []cartio.Device {
	return nil
}

// Export implements the mapper.CartMapper interface.
func (cart *ejected) Export() cartio.Export {
	return cartio.Export{}
}

// Dump implements the mapper.CartMapper interface.
func (cart *ejected) Dump(w io.Writer) {
	io.WriteString(w, "no cartridge\n")
}

// CopyBanks implements the mapper.CartMapper interface.
func (cart *ejected) CopyBanks() []banks.Content {
	return nil
}

// WriteModule implements the mapper.CartMapper interface. The ejected
// cartridge has no module.
func (cart *ejected) WriteModule(_ *snapshot.Snapshot) error {
	return nil
}

// ReadModule implements the mapper.CartMapper interface.
func (cart *ejected) ReadModule(_ *snapshot.Snapshot) error {
	return nil
}
