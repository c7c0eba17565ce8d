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

// Pagefox by Scanntronik.
//
// 64k ROM and 32k RAM. The control register is at $DE80 and is mirrored up
// to $DEFF. It is write only:
//
//	0    unused
//	1    bank select
//	2    chip select 0
//	3    chip select 1
//	4    0 = cartridge enabled, 1 = disabled
//	5-7  unused
//
// Chip select 0 and 1 are the two EPROMs, chip select 2 is the RAM and chip
// select 3 is empty space. When enabled the cartridge is in 16k mode.
//
// On the real hardware, disabling the cartridge does not prevent writes to
// the RAM. This is not emulated.
type pagefox struct {
	env *environment.Environment

	mappingID string

	roml *banks.Banks
	romh *banks.Banks

	state *pagefoxState
}

type pagefoxState struct {
	config mapper.Config

	enabled     bool
	bankSelect  uint8
	chipSelect  uint8
	currentBank uint8

	// the bank select bit chooses the 16k half of the RAM. ROML is the
	// first 8k of the half and ROMH is the second 8k
	ram *banks.Banks
}

func (s *pagefoxState) Snapshot() *pagefoxState {
	n := *s
	n.ram = s.ram.Snapshot()
	return &n
}

const (
	pagefoxROMSize  = 0x10000
	pagefoxRAMSize  = 0x8000
	pagefoxChipRAM  = 2
	pagefoxHalfSize = 0x4000
)

func newPagefox(env *environment.Environment) *pagefox {
	cart := &pagefox{
		env:       env,
		mappingID: "PAGEFOX",
		roml:      banks.New("ROML", 4, 0x2000, false),
		romh:      banks.New("ROMH", 4, 0x2000, false),
		state: &pagefoxState{
			ram: banks.New("RAM", 2, pagefoxHalfSize, true),
		},
	}
	cart.Reset()
	return cart
}

// the ROM is in 16k blocks. the first 8k of each block is ROML and the
// second 8k is ROMH
func (cart *pagefox) loadBlock(block int, data []uint8) error {
	for len(data) > 0 {
		n := min(len(data), 0x2000)
		if err := loadBanks(cart.roml, block*0x2000, data[:n]); err != nil {
			return err
		}
		data = data[n:]

		n = min(len(data), 0x2000)
		if err := loadBanks(cart.romh, block*0x2000, data[:n]); err != nil {
			return err
		}
		data = data[n:]

		block++
	}
	return nil
}

func (cart *pagefox) loadBinary(data []uint8) error {
	data, err := binaryImage(data, pagefoxROMSize, true)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	if err := cart.loadBlock(0, data); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

// the chip packets in a CRT file
var pagefoxLayout = chipLayout{start: 0x8000, size: 0x4000, maxBank: 3}

func (cart *pagefox) loadContainer(r io.Reader) error {
	err := readChips(r, pagefoxLayout, func(c crt.Chip) error {
		return cart.loadBlock(int(c.Bank), c.Data)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

// ID implements the mapper.CartMapper interface.
func (cart *pagefox) ID() string {
	return cart.mappingID
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *pagefox) MappedBanks() string {
	if !cart.state.enabled {
		return "Disabled"
	}
	if cart.state.chipSelect == pagefoxChipRAM {
		return fmt.Sprintf("RAM: %d", cart.state.bankSelect)
	}
	return fmt.Sprintf("Bank: %d", cart.state.config.Bank)
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *pagefox) Snapshot() mapper.CartMapper {
	n := *cart
	n.state = cart.state.Snapshot()
	return &n
}

// Plumb implements the mapper.CartMapper interface.
func (cart *pagefox) Plumb(env *environment.Environment, _ bus.SystemBus) {
	cart.env = env
}

// Reset implements the mapper.CartMapper interface.
func (cart *pagefox) Reset() {
	cart.store(0, 0x00)
}

// PowerUp implements the mapper.CartMapper interface.
func (cart *pagefox) PowerUp() {
	initRAM(cart.env, cart.state.ram.Data())
	cart.Reset()
}

// Config implements the mapper.CartMapper interface.
func (cart *pagefox) Config() *mapper.Config {
	return &cart.state.config
}

// ramAccess returns true if the RAM is selected
func (cart *pagefox) ramAccess() bool {
	return cart.state.chipSelect == pagefoxChipRAM
}

// Read implements the mapper.CartMapper interface.
func (cart *pagefox) Read(area memorymap.Area, addr uint16) uint8 {
	return cart.Peek(area, addr)
}

// Peek implements the mapper.CartMapper interface.
func (cart *pagefox) Peek(area memorymap.Area, addr uint16) uint8 {
	switch area {
	case memorymap.ROML:
		if cart.ramAccess() {
			return cart.state.ram.Read(int(cart.state.bankSelect), addr&memorymap.MaskROM)
		}
		return cart.roml.Read(cart.state.config.Bank, addr)
	case memorymap.ROMH:
		if cart.ramAccess() {
			return cart.state.ram.Read(int(cart.state.bankSelect), 0x2000|(addr&memorymap.MaskROM))
		}
		return cart.romh.Read(cart.state.config.Bank, addr)
	}
	return 0
}

// Write implements the mapper.CartMapper interface.
func (cart *pagefox) Write(area memorymap.Area, addr uint16, data uint8) {
	if !cart.ramAccess() {
		return
	}
	switch area {
	case memorymap.ROML:
		cart.state.ram.Write(int(cart.state.bankSelect), addr&memorymap.MaskROM, data)
	case memorymap.ROMH:
		cart.state.ram.Write(int(cart.state.bankSelect), 0x2000|(addr&memorymap.MaskROM), data)
	}
}

func (cart *pagefox) store(_ uint16, data uint8) {
	cart.state.bankSelect = (data >> 1) & 0x01
	cart.state.chipSelect = (data >> 2) & 0x03
	cart.state.enabled = (data>>4)&0x01 == 0x00
	cart.state.currentBank = cart.state.chipSelect<<1 | cart.state.bankSelect

	// chip select 3 is empty space on the real hardware. the bank index is
	// masked into the ROM banks the same as any other value
	bank := int(cart.state.currentBank & 0x03)

	if cart.state.enabled {
		cart.state.config.Reconfigure(memorymap.Mode16K, bank, 0)
	} else {
		cart.state.config.Reconfigure(memorymap.ModeRAM, bank, 0)
	}
}

func (cart *pagefox) read(_ uint16) (uint8, bool) {
	return 0, false
}

func (cart *pagefox) peek(_ uint16) uint8 {
	v := cart.state.bankSelect<<1 | cart.state.chipSelect<<2
	if !cart.state.enabled {
		v |= 0x10
	}
	return v
}

// Devices implements the mapper.CartMapper interface.
func (cart *pagefox) Devices() []cartio.Device {
	return []cartio.Device{
		{
			Name:   "Pagefox",
			Area:   memorymap.IO1,
			Origin: 0xde80,
			Memtop: memorymap.MemtopIO1,
			Mask:   0xff,
			Symbol: "PFCTRL",
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
func (cart *pagefox) Export() cartio.Export {
	return cartio.Export{Name: "Pagefox", Game: true, ExROM: true, IO1: true}
}

// Dump implements the mapper.CartMapper interface.
func (cart *pagefox) Dump(w io.Writer) {
	enabled := "no"
	if cart.state.enabled {
		enabled = "yes"
	}
	fmt.Fprintf(w, "enabled:        %s\n", enabled)
	fmt.Fprintf(w, "bank select:    %d\n", cart.state.bankSelect)
	fmt.Fprintf(w, "chip select:    %d\n", cart.state.chipSelect)
	fmt.Fprintf(w, "effective bank: %d\n", cart.state.currentBank)
}

// CopyBanks implements the mapper.CartMapper interface.
func (cart *pagefox) CopyBanks() []banks.Content {
	c := cart.roml.Copy(memorymap.OriginROML)
	c = append(c, cart.romh.Copy(memorymap.OriginROMH)...)
	return append(c, cart.state.ram.Copy(memorymap.OriginROML)...)
}

// GetRAM implements the mapper.CartRAMbus interface.
func (cart *pagefox) GetRAM() []mapper.CartRAM {
	r := make([]mapper.CartRAM, cart.state.ram.NumBanks())
	for i := range r {
		d := make([]uint8, cart.state.ram.BankSize())
		copy(d, cart.state.ram.Bank(i))
		r[i] = mapper.CartRAM{
			Label:  fmt.Sprintf("RAM %d", i),
			Origin: memorymap.OriginROML,
			Data:   d,
			Mapped: cart.state.enabled && cart.ramAccess() && int(cart.state.bankSelect) == i,
		}
	}
	return r
}

// PutRAM implements the mapper.CartRAMbus interface.
func (cart *pagefox) PutRAM(bank int, idx int, data uint8) {
	cart.state.ram.Poke(bank*cart.state.ram.BankSize()+idx, data)
}

var pagefoxVersion = snapshot.Version{Major: 0, Minor: 1}

const pagefoxModule = "CARTPAGEFOX"

func (cart *pagefox) fields(s *pagefoxState, roml []uint8, romh []uint8) []snapshot.Field {
	return []snapshot.Field{
		snapshot.Bool("enabled", &s.enabled, snapshot.Version{Minor: 1}, false),
		snapshot.Byte("bank", &s.currentBank, snapshot.Version{}, 0),
		snapshot.Array("RAM", s.ram.Data(), snapshot.Version{}),
		snapshot.Array("ROML", roml, snapshot.Version{}),
		snapshot.Array("ROMH", romh, snapshot.Version{}),
	}
}

// WriteModule implements the mapper.CartMapper interface.
func (cart *pagefox) WriteModule(s *snapshot.Snapshot) error {
	m, err := s.CreateModule(pagefoxModule, pagefoxVersion)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	defer m.Discard()

	if err := snapshot.WriteFields(m, cart.fields(cart.state, cart.roml.Data(), cart.romh.Data())); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return m.Close()
}

// ReadModule implements the mapper.CartMapper interface.
func (cart *pagefox) ReadModule(s *snapshot.Snapshot) error {
	m, err := s.OpenModule(pagefoxModule)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	defer m.Close()

	if err := snapshot.CheckVersion(m.Version, pagefoxVersion); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}

	state := cart.state.Snapshot()
	roml := cart.roml.Snapshot()
	romh := cart.romh.Snapshot()

	if err := snapshot.ReadFields(m, cart.fields(state, roml.Data(), romh.Data())); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}

	// only the effective bank is stored in the snapshot
	state.bankSelect = state.currentBank & 0x01
	state.chipSelect = (state.currentBank >> 1) & 0x03

	cart.state = state
	cart.roml = roml
	cart.romh = romh

	return nil
}
