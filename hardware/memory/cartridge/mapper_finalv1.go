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

// The Final Cartridge (version 1).
//
// 16k ROM, 8k in ROML and 8k in ROMH. Any access of IO1 turns the cartridge
// off and any access of IO2 turns it back on in 16k mode. Reads of IO1 and
// IO2 return the last two pages of the ROML bank.
type finalV1 struct {
	env *environment.Environment

	mappingID string

	roml *banks.Banks
	romh *banks.Banks

	state *finalV1State
}

type finalV1State struct {
	config mapper.Config
}

func (s *finalV1State) Snapshot() *finalV1State {
	n := *s
	return &n
}

const finalV1ROMSize = 0x4000

func newFinalV1(env *environment.Environment) *finalV1 {
	cart := &finalV1{
		env:       env,
		mappingID: "FC1",
		roml:      banks.New("ROML", 1, 0x2000, false),
		romh:      banks.New("ROMH", 1, 0x2000, false),
		state:     &finalV1State{},
	}
	cart.Reset()
	return cart
}

func (cart *finalV1) load(data []uint8) error {
	if err := loadBanks(cart.roml, 0, data[:0x2000]); err != nil {
		return err
	}
	return loadBanks(cart.romh, 0, data[0x2000:])
}

func (cart *finalV1) loadBinary(data []uint8) error {
	data, err := binaryImage(data, finalV1ROMSize, true)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	if err := cart.load(data); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

var finalV1Layout = chipLayout{start: 0x8000, size: finalV1ROMSize, maxBank: 0, count: 1}

func (cart *finalV1) loadContainer(r io.Reader) error {
	err := readChips(r, finalV1Layout, func(c crt.Chip) error {
		return cart.load(c.Data)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

// ID implements the mapper.CartMapper interface.
func (cart *finalV1) ID() string {
	return cart.mappingID
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *finalV1) MappedBanks() string {
	if cart.state.config.Mode == memorymap.ModeRAM {
		return "Disabled"
	}
	return "Bank: 0"
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *finalV1) Snapshot() mapper.CartMapper {
	n := *cart
	n.state = cart.state.Snapshot()
	return &n
}

// Plumb implements the mapper.CartMapper interface.
func (cart *finalV1) Plumb(env *environment.Environment, _ bus.SystemBus) {
	cart.env = env
}

// Reset implements the mapper.CartMapper interface.
func (cart *finalV1) Reset() {
	cart.state.config.Reconfigure(memorymap.Mode16K, 0, 0)
}

// PowerUp implements the mapper.CartMapper interface.
func (cart *finalV1) PowerUp() {
	cart.Reset()
}

// Config implements the mapper.CartMapper interface.
func (cart *finalV1) Config() *mapper.Config {
	return &cart.state.config
}

// Freeze implements the mapper.Freezer interface. There is nothing to do
// beyond the Ultimax configuration set by the expansion port.
func (cart *finalV1) Freeze() {
}

// Read implements the mapper.CartMapper interface.
func (cart *finalV1) Read(area memorymap.Area, addr uint16) uint8 {
	return cart.Peek(area, addr)
}

// Peek implements the mapper.CartMapper interface.
func (cart *finalV1) Peek(area memorymap.Area, addr uint16) uint8 {
	switch area {
	case memorymap.ROML:
		return cart.roml.Read(0, addr)
	case memorymap.ROMH:
		return cart.romh.Read(0, addr)
	}
	return 0
}

// Write implements the mapper.CartMapper interface.
func (cart *finalV1) Write(_ memorymap.Area, _ uint16, _ uint8) {
}

func (cart *finalV1) io1Store(_ uint16, _ uint8) {
	cart.state.config.Reconfigure(memorymap.ModeRAM, 0, mapper.FlagWrite)
}

func (cart *finalV1) io1Read(addr uint16) (uint8, bool) {
	cart.state.config.Reconfigure(memorymap.ModeRAM, 0, 0)
	return cart.io1Peek(addr), true
}

func (cart *finalV1) io1Peek(addr uint16) uint8 {
	return cart.roml.Read(0, 0x1e00|(addr&0xff))
}

func (cart *finalV1) io2Store(_ uint16, _ uint8) {
	cart.state.config.Reconfigure(memorymap.Mode16K, 0, mapper.FlagWrite)
}

func (cart *finalV1) io2Read(addr uint16) (uint8, bool) {
	cart.state.config.Reconfigure(memorymap.Mode16K, 0, 0)
	return cart.io2Peek(addr), true
}

func (cart *finalV1) io2Peek(addr uint16) uint8 {
	return cart.roml.Read(0, 0x1f00|(addr&0xff))
}

// Devices implements the mapper.CartMapper interface.
func (cart *finalV1) Devices() []cartio.Device {
	return []cartio.Device{
		{
			Name:      "Final Cartridge",
			Area:      memorymap.IO1,
			Origin:    memorymap.OriginIO1,
			Memtop:    memorymap.MemtopIO1,
			Mask:      0xff,
			ReadValid: true,
			Symbol:    "FCOFF",
			Action:    cartio.ActionBankSwitch,
			Handler: cartio.Funcs{
				StoreFunc: cart.io1Store,
				ReadFunc:  cart.io1Read,
				PeekFunc:  cart.io1Peek,
			},
		},
		{
			Name:      "Final Cartridge",
			Area:      memorymap.IO2,
			Origin:    memorymap.OriginIO2,
			Memtop:    memorymap.MemtopIO2,
			Mask:      0xff,
			ReadValid: true,
			Symbol:    "FCON",
			Action:    cartio.ActionBankSwitch,
			Handler: cartio.Funcs{
				StoreFunc: cart.io2Store,
				ReadFunc:  cart.io2Read,
				PeekFunc:  cart.io2Peek,
			},
		},
	}
}

// Export implements the mapper.CartMapper interface.
func (cart *finalV1) Export() cartio.Export {
	return cartio.Export{Name: "Final Cartridge", Game: true, ExROM: true, IO1: true, IO2: true}
}

// Dump implements the mapper.CartMapper interface.
func (cart *finalV1) Dump(w io.Writer) {
	fmt.Fprintf(w, "mode: %s\n", cart.state.config.Mode)
}

// CopyBanks implements the mapper.CartMapper interface.
func (cart *finalV1) CopyBanks() []banks.Content {
	c := cart.roml.Copy(memorymap.OriginROML)
	return append(c, cart.romh.Copy(memorymap.OriginROMH, memorymap.OriginROMHU)...)
}

var finalV1Version = snapshot.Version{Major: 0, Minor: 0}

const finalV1Module = "CARTFINALV1"

func (cart *finalV1) fields(roml []uint8, romh []uint8) []snapshot.Field {
	return []snapshot.Field{
		snapshot.Array("ROML", roml, snapshot.Version{}),
		snapshot.Array("ROMH", romh, snapshot.Version{}),
	}
}

// WriteModule implements the mapper.CartMapper interface.
func (cart *finalV1) WriteModule(s *snapshot.Snapshot) error {
	m, err := s.CreateModule(finalV1Module, finalV1Version)
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
func (cart *finalV1) ReadModule(s *snapshot.Snapshot) error {
	m, err := s.OpenModule(finalV1Module)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	defer m.Close()

	if err := snapshot.CheckVersion(m.Version, finalV1Version); err != nil {
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
