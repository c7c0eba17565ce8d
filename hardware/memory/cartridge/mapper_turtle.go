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

// Turtle Graphics II by HesWare.
//
// 16k ROM in two 8k banks, both mapped to ROML. Reset selects bank 0 and any
// access of IO1, read or write, selects bank 1. There is no way back to bank
// 0 other than a reset.
type turtle struct {
	env *environment.Environment

	mappingID string

	roml *banks.Banks

	state *turtleState
}

type turtleState struct {
	config mapper.Config
	bank   uint8
}

func (s *turtleState) Snapshot() *turtleState {
	n := *s
	return &n
}

const turtleROMSize = 0x4000

func newTurtle(env *environment.Environment) *turtle {
	cart := &turtle{
		env:       env,
		mappingID: "TURTLE",
		roml:      banks.New("ROML", 2, 0x2000, false),
		state:     &turtleState{},
	}
	cart.Reset()
	return cart
}

func (cart *turtle) loadBinary(data []uint8) error {
	data, err := binaryImage(data, turtleROMSize, false)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	if err := loadBanks(cart.roml, 0, data); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

// the chip packets in a CRT file
var turtleLayout = chipLayout{start: 0x8000, size: 0x2000, maxBank: 1}

func (cart *turtle) loadContainer(r io.Reader) error {
	err := readChips(r, turtleLayout, func(c crt.Chip) error {
		return loadBanks(cart.roml, int(c.Bank)<<13, c.Data)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

// ID implements the mapper.CartMapper interface.
func (cart *turtle) ID() string {
	return cart.mappingID
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *turtle) MappedBanks() string {
	return fmt.Sprintf("Bank: %d", cart.state.bank)
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *turtle) Snapshot() mapper.CartMapper {
	n := *cart
	n.state = cart.state.Snapshot()
	return &n
}

// Plumb implements the mapper.CartMapper interface.
func (cart *turtle) Plumb(env *environment.Environment, _ bus.SystemBus) {
	cart.env = env
}

// Reset implements the mapper.CartMapper interface.
func (cart *turtle) Reset() {
	cart.state.bank = 0
	cart.state.config.Reconfigure(memorymap.Mode8K, 0, 0)
}

// PowerUp implements the mapper.CartMapper interface.
func (cart *turtle) PowerUp() {
	cart.Reset()
}

// Config implements the mapper.CartMapper interface.
func (cart *turtle) Config() *mapper.Config {
	return &cart.state.config
}

// Read implements the mapper.CartMapper interface.
func (cart *turtle) Read(area memorymap.Area, addr uint16) uint8 {
	return cart.Peek(area, addr)
}

// Peek implements the mapper.CartMapper interface.
func (cart *turtle) Peek(area memorymap.Area, addr uint16) uint8 {
	if area == memorymap.ROML {
		return cart.roml.Read(cart.state.config.Bank, addr)
	}
	return 0
}

// Write implements the mapper.CartMapper interface.
func (cart *turtle) Write(_ memorymap.Area, _ uint16, _ uint8) {
}

func (cart *turtle) selectBank() {
	cart.state.bank = 1
	cart.state.config.Reconfigure(memorymap.Mode8K, 1, 0)
}

func (cart *turtle) store(_ uint16, _ uint8) {
	cart.selectBank()
}

func (cart *turtle) read(addr uint16) (uint8, bool) {
	if cart.state.bank != 1 {
		quirk(cart.env, "turtle", "reading IO1 area at 0xde%02x switches to bank 1", addr&0xff)
	}
	cart.selectBank()
	return 0, false
}

func (cart *turtle) peek(_ uint16) uint8 {
	return 0
}

// Devices implements the mapper.CartMapper interface.
func (cart *turtle) Devices() []cartio.Device {
	return []cartio.Device{
		{
			Name:   "Turtle Graphics II",
			Area:   memorymap.IO1,
			Origin: memorymap.OriginIO1,
			Memtop: memorymap.MemtopIO1,
			Mask:   0x01,
			Symbol: "TGBANK",
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
func (cart *turtle) Export() cartio.Export {
	return cartio.Export{Name: "Turtle Graphics II", Game: true, ExROM: false, IO1: true}
}

// Dump implements the mapper.CartMapper interface.
func (cart *turtle) Dump(w io.Writer) {
	fmt.Fprintf(w, "bank: %d\n", cart.state.bank)
}

// CopyBanks implements the mapper.CartMapper interface.
func (cart *turtle) CopyBanks() []banks.Content {
	return cart.roml.Copy(memorymap.OriginROML)
}

var turtleVersion = snapshot.Version{Major: 0, Minor: 1}

const turtleModule = "CARTSTB"

func (cart *turtle) fields(s *turtleState, roml []uint8) []snapshot.Field {
	return []snapshot.Field{
		snapshot.Byte("bank", &s.bank, snapshot.Version{Minor: 1}, 0),
		snapshot.Array("ROML", roml, snapshot.Version{}),
	}
}

// WriteModule implements the mapper.CartMapper interface.
func (cart *turtle) WriteModule(s *snapshot.Snapshot) error {
	m, err := s.CreateModule(turtleModule, turtleVersion)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	defer m.Discard()

	if err := snapshot.WriteFields(m, cart.fields(cart.state, cart.roml.Data())); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return m.Close()
}

// ReadModule implements the mapper.CartMapper interface.
func (cart *turtle) ReadModule(s *snapshot.Snapshot) error {
	m, err := s.OpenModule(turtleModule)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	defer m.Close()

	if err := snapshot.CheckVersion(m.Version, turtleVersion); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}

	state := cart.state.Snapshot()
	roml := cart.roml.Snapshot()

	if err := snapshot.ReadFields(m, cart.fields(state, roml.Data())); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}

	state.bank &= 0x01

	cart.state = state
	cart.roml = roml

	return nil
}
