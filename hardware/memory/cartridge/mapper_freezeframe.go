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
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/memory/cartio"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/banks"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/crt"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/snapshot"
)

// Freeze Frame by Evesham Micros.
//
// 8k ROM visible in ROML, and in ROMH when frozen. Reading IO1 selects 8k
// mode and reading IO2 turns the cartridge off. Writes to the I/O windows
// have no effect and the reads are never valid.
type freezeFrame struct {
	env *environment.Environment

	mappingID string

	roml *banks.Banks
	romh *banks.Banks

	state *freezeFrameState
}

type freezeFrameState struct {
	config mapper.Config
}

func (s *freezeFrameState) Snapshot() *freezeFrameState {
	n := *s
	return &n
}

const freezeFrameROMSize = 0x2000

func newFreezeFrame(env *environment.Environment) *freezeFrame {
	cart := &freezeFrame{
		env:       env,
		mappingID: "FF",
		roml:      banks.New("ROML", 1, freezeFrameROMSize, false),
		romh:      banks.New("ROMH", 1, freezeFrameROMSize, false),
		state:     &freezeFrameState{},
	}
	cart.Reset()
	return cart
}

func (cart *freezeFrame) load(data []uint8) error {
	if err := loadBanks(cart.roml, 0, data); err != nil {
		return err
	}
	return loadBanks(cart.romh, 0, data)
}

func (cart *freezeFrame) loadBinary(data []uint8) error {
	data, err := binaryImage(data, freezeFrameROMSize, true)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	if err := cart.load(data); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

var freezeFrameLayout = chipLayout{start: 0x8000, size: freezeFrameROMSize, maxBank: 0, count: 1}

func (cart *freezeFrame) loadContainer(r io.Reader) error {
	err := readChips(r, freezeFrameLayout, func(c crt.Chip) error {
		return cart.load(c.Data)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

// ID implements the mapper.CartMapper interface.
func (cart *freezeFrame) ID() string {
	return cart.mappingID
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *freezeFrame) MappedBanks() string {
	if cart.state.config.Mode == memorymap.ModeRAM {
		return "Disabled"
	}
	return "Bank: 0"
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *freezeFrame) Snapshot() mapper.CartMapper {
	n := *cart
	n.state = cart.state.Snapshot()
	return &n
}

// Plumb implements the mapper.CartMapper interface.
func (cart *freezeFrame) Plumb(env *environment.Environment, _ bus.SystemBus) {
	cart.env = env
}

// Reset implements the mapper.CartMapper interface.
func (cart *freezeFrame) Reset() {
	cart.state.config.Reconfigure(memorymap.Mode8K, 0, 0)
}

// PowerUp implements the mapper.CartMapper interface.
func (cart *freezeFrame) PowerUp() {
	cart.Reset()
}

// Config implements the mapper.CartMapper interface.
func (cart *freezeFrame) Config() *mapper.Config {
	return &cart.state.config
}

// Freeze implements the mapper.Freezer interface. There is nothing to do
// beyond the Ultimax configuration set by the expansion port.
func (cart *freezeFrame) Freeze() {
}

// Read implements the mapper.CartMapper interface.
func (cart *freezeFrame) Read(area memorymap.Area, addr uint16) uint8 {
	return cart.Peek(area, addr)
}

// Peek implements the mapper.CartMapper interface.
func (cart *freezeFrame) Peek(area memorymap.Area, addr uint16) uint8 {
	switch area {
	case memorymap.ROML:
		return cart.roml.Read(0, addr)
	case memorymap.ROMH:
		return cart.romh.Read(0, addr)
	}
	return 0
}

// Write implements the mapper.CartMapper interface.
func (cart *freezeFrame) Write(_ memorymap.Area, _ uint16, _ uint8) {
}

func (cart *freezeFrame) io1Read(addr uint16) (uint8, bool) {
	if cart.state.config.Mode != memorymap.Mode8K {
		quirk(cart.env, "freezeframe", "reading IO1 area at 0xde%02x enables the cartridge", addr&0xff)
	}
	cart.state.config.Reconfigure(memorymap.Mode8K, 0, 0)
	return 0, false
}

func (cart *freezeFrame) io2Read(addr uint16) (uint8, bool) {
	if cart.state.config.Mode != memorymap.ModeRAM {
		quirk(cart.env, "freezeframe", "reading IO2 area at 0xdf%02x disables the cartridge", addr&0xff)
	}
	cart.state.config.Reconfigure(memorymap.ModeRAM, 0, 0)
	return 0, false
}

// Devices implements the mapper.CartMapper interface.
func (cart *freezeFrame) Devices() []cartio.Device {
	return []cartio.Device{
		{
			Name:    "Freeze Frame",
			Area:    memorymap.IO1,
			Origin:  memorymap.OriginIO1,
			Memtop:  memorymap.MemtopIO1,
			Mask:    0xff,
			Symbol:  "FFON",
			Action:  cartio.ActionBankSwitch,
			Handler: cartio.Funcs{ReadFunc: cart.io1Read},
		},
		{
			Name:    "Freeze Frame",
			Area:    memorymap.IO2,
			Origin:  memorymap.OriginIO2,
			Memtop:  memorymap.MemtopIO2,
			Mask:    0xff,
			Symbol:  "FFOFF",
			Action:  cartio.ActionBankSwitch,
			Handler: cartio.Funcs{ReadFunc: cart.io2Read},
		},
	}
}

// Export implements the mapper.CartMapper interface.
func (cart *freezeFrame) Export() cartio.Export {
	return cartio.Export{Name: "Freeze Frame", Game: true, ExROM: true, IO1: true, IO2: true}
}

// Dump implements the mapper.CartMapper interface.
func (cart *freezeFrame) Dump(w io.Writer) {
	fmt.Fprintf(w, "mode: %s\n", cart.state.config.Mode)
}

// CopyBanks implements the mapper.CartMapper interface.
func (cart *freezeFrame) CopyBanks() []banks.Content {
	c := cart.roml.Copy(memorymap.OriginROML)
	return append(c, cart.romh.Copy(memorymap.OriginROMHU)...)
}

var freezeFrameVersion = snapshot.Version{Major: 0, Minor: 0}

const freezeFrameModule = "CARTFREEZE"

func (cart *freezeFrame) fields(roml []uint8, romh []uint8) []snapshot.Field {
	return []snapshot.Field{
		snapshot.Array("ROML", roml, snapshot.Version{}),
		snapshot.Array("ROMH", romh, snapshot.Version{}),
	}
}

// WriteModule implements the mapper.CartMapper interface.
func (cart *freezeFrame) WriteModule(s *snapshot.Snapshot) error {
	m, err := s.CreateModule(freezeFrameModule, freezeFrameVersion)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	defer m.Discard()

	if err := snapshot.WriteFields(m, cart.fields(cart.roml.Data(), cart.romh.Data())); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return m.Close()
}

// ReadModule implements the mapper.CartMapper interface.
func (cart *freezeFrame) ReadModule(s *snapshot.Snapshot) error {
	m, err := s.OpenModule(freezeFrameModule)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	defer m.Close()

	if err := snapshot.CheckVersion(m.Version, freezeFrameVersion); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}

	roml := cart.roml.Snapshot()
	romh := cart.romh.Snapshot()

	if err := snapshot.ReadFields(m, cart.fields(roml.Data(), romh.Data())); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}

	cart.roml = roml
	cart.romh = romh

	return nil
}
