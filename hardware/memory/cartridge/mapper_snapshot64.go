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

// Snapshot 64 freezer cartridge.
//
// 4k ROM which is visible in both ROML and ROMH when the cartridge is
// active. The cartridge is invisible until the freeze button is pressed.
// Any write to IO2 makes the cartridge invisible again.
type snapshot64 struct {
	env *environment.Environment

	mappingID string

	rom *banks.Banks

	state *snapshot64State
}

type snapshot64State struct {
	config    mapper.Config
	romconfig uint8
}

func (s *snapshot64State) Snapshot() *snapshot64State {
	n := *s
	return &n
}

const snapshot64ROMSize = 0x1000

func newSnapshot64(env *environment.Environment) *snapshot64 {
	cart := &snapshot64{
		env:       env,
		mappingID: "SS64",
		rom:       banks.New("ROM", 1, snapshot64ROMSize, false),
		state:     &snapshot64State{},
	}
	cart.Reset()
	return cart
}

func (cart *snapshot64) loadBinary(data []uint8) error {
	data, err := binaryImage(data, snapshot64ROMSize, true)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	if err := loadBanks(cart.rom, 0, data); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

var snapshot64Layout = chipLayout{size: snapshot64ROMSize, maxBank: 0, count: 1}

func (cart *snapshot64) loadContainer(r io.Reader) error {
	err := readChips(r, snapshot64Layout, func(c crt.Chip) error {
		return loadBanks(cart.rom, 0, c.Data)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

// ID implements the mapper.CartMapper interface.
func (cart *snapshot64) ID() string {
	return cart.mappingID
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *snapshot64) MappedBanks() string {
	if cart.state.romconfig == 0 {
		return "Disabled"
	}
	return "Bank: 0"
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *snapshot64) Snapshot() mapper.CartMapper {
	n := *cart
	n.state = cart.state.Snapshot()
	return &n
}

// Plumb implements the mapper.CartMapper interface.
func (cart *snapshot64) Plumb(env *environment.Environment, _ bus.SystemBus) {
	cart.env = env
}

func (cart *snapshot64) disableROM(flags mapper.Flags) {
	cart.state.romconfig = 0
	cart.state.config.Reconfigure(memorymap.ModeRAM, 0, flags)
}

// Reset implements the mapper.CartMapper interface.
func (cart *snapshot64) Reset() {
	cart.disableROM(0)
}

// PowerUp implements the mapper.CartMapper interface.
func (cart *snapshot64) PowerUp() {
	cart.Reset()
}

// Config implements the mapper.CartMapper interface.
func (cart *snapshot64) Config() *mapper.Config {
	return &cart.state.config
}

// Freeze implements the mapper.Freezer interface. The ROM is made visible
// by the Ultimax configuration set by the expansion port.
func (cart *snapshot64) Freeze() {
	cart.state.romconfig = 1
}

// Read implements the mapper.CartMapper interface.
func (cart *snapshot64) Read(area memorymap.Area, addr uint16) uint8 {
	return cart.Peek(area, addr)
}

// Peek implements the mapper.CartMapper interface.
func (cart *snapshot64) Peek(_ memorymap.Area, addr uint16) uint8 {
	// the same 4k is visible in ROML and ROMH
	return cart.rom.Read(0, addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *snapshot64) Write(_ memorymap.Area, _ uint16, _ uint8) {
}

func (cart *snapshot64) store(_ uint16, _ uint8) {
	cart.disableROM(mapper.FlagWrite)
}

func (cart *snapshot64) read(_ uint16) (uint8, bool) {
	return 0, false
}

func (cart *snapshot64) peek(_ uint16) uint8 {
	return cart.state.romconfig
}

// Devices implements the mapper.CartMapper interface.
func (cart *snapshot64) Devices() []cartio.Device {
	return []cartio.Device{
		{
			Name:   "Snapshot 64",
			Area:   memorymap.IO2,
			Origin: memorymap.OriginIO2,
			Memtop: memorymap.MemtopIO2,
			Mask:   0xff,
			Symbol: "SSOFF",
			Action: cartio.ActionBankSwitch,
			Handler: cartio.Funcs{
				StoreFunc: cart.store,
				ReadFunc:  cart.read,
				PeekFunc:  cart.peek,
			},
		},
	}
}

// Export implements the mapper.CartMapper interface.
func (cart *snapshot64) Export() cartio.Export {
	return cartio.Export{Name: "Snapshot 64", Game: true, ExROM: true, IO2: true}
}

// Dump implements the mapper.CartMapper interface.
func (cart *snapshot64) Dump(w io.Writer) {
	fmt.Fprintf(w, "ROM config: %d\n", cart.state.romconfig)
}

// CopyBanks implements the mapper.CartMapper interface.
func (cart *snapshot64) CopyBanks() []banks.Content {
	return cart.rom.Copy(memorymap.OriginROML, memorymap.OriginROMHU)
}

var snapshot64Version = snapshot.Version{Major: 0, Minor: 0}

const snapshot64Module = "CARTSNAP64"

func (cart *snapshot64) fields(s *snapshot64State, rom []uint8) []snapshot.Field {
	return []snapshot.Field{
		snapshot.Byte("ROM config", &s.romconfig, snapshot.Version{}, 0),
		snapshot.Array("ROML", rom, snapshot.Version{}),
	}
}

// WriteModule implements the mapper.CartMapper interface.
func (cart *snapshot64) WriteModule(s *snapshot.Snapshot) error {
	m, err := s.CreateModule(snapshot64Module, snapshot64Version)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	defer m.Discard()

	if err := snapshot.WriteFields(m, cart.fields(cart.state, cart.rom.Data())); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return m.Close()
}

// ReadModule implements the mapper.CartMapper interface.
func (cart *snapshot64) ReadModule(s *snapshot.Snapshot) error {
	m, err := s.OpenModule(snapshot64Module)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	defer m.Close()

	if err := snapshot.CheckVersion(m.Version, snapshot64Version); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}

	state := cart.state.Snapshot()
	rom := cart.rom.Snapshot()

	if err := snapshot.ReadFields(m, cart.fields(state, rom.Data())); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}

	cart.state = state
	cart.rom = rom

	return nil
}
