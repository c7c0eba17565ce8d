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

// Action Replay 4.2, 5 and 6. The hardware is the same for all three.
//
// 32k ROM in four 8k banks and 8k RAM. The control register is at $DE00 and
// is mirrored throughout IO1. The register is write only:
//
//	7    unused
//	6    1 = release freeze mode
//	5    1 = RAM at ROML and IO2 ($DF00-$DFFF = $9F00-$9FFF)
//	4    ROM bank selector high
//	3    ROM bank selector low
//	2    1 = disable cartridge
//	1    1 = EXROM high
//	0    1 = GAME low
//
// The r/w line is not decoded by the cartridge and so a read of IO1 causes
// whatever is on the bus to be written to the register.
//
// Writing $22 to the register selects 8k mode with both cartridge RAM and C64
// RAM enabled. Reading ROML in this mode causes bus contention on the real
// hardware.
type actionReplay struct {
	env  *environment.Environment
	host bus.SystemBus

	mappingID string

	roml *banks.Banks
	romh *banks.Banks

	state *actionReplayState
}

type actionReplayState struct {
	config mapper.Config

	// the cartridge stops responding to the control register once disabled
	active bool

	// the last value written to the control register
	regvalue uint8

	ram *banks.Banks
}

func (s *actionReplayState) Snapshot() *actionReplayState {
	n := *s
	n.ram = s.ram.Snapshot()
	return &n
}

const (
	arMode22  = 0x22
	arROMSize = 0x8000
	arRAMSize = 0x2000
)

func newActionReplay(env *environment.Environment) *actionReplay {
	cart := &actionReplay{
		env:       env,
		mappingID: "AR",
		roml:      banks.New("ROML", 4, 0x2000, false),
		romh:      banks.New("ROMH", 4, 0x2000, false),
		state: &actionReplayState{
			ram: banks.New("RAM", 1, arRAMSize, true),
		},
	}
	cart.Reset()
	return cart
}

func (cart *actionReplay) loadBinary(data []uint8) error {
	data, err := binaryImage(data, arROMSize, true)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	if err := loadBanks(cart.roml, 0, data); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	if err := loadBanks(cart.romh, 0, data); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

// the chip packets in a CRT file
var actionReplayLayout = chipLayout{size: 0x2000, maxBank: 3, count: 4}

func (cart *actionReplay) loadContainer(r io.Reader) error {
	err := readChips(r, actionReplayLayout, func(c crt.Chip) error {
		offset := int(c.Bank) << 13
		if err := loadBanks(cart.roml, offset, c.Data); err != nil {
			return err
		}
		return loadBanks(cart.romh, offset, c.Data)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	return nil
}

// ID implements the mapper.CartMapper interface.
func (cart *actionReplay) ID() string {
	return cart.mappingID
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *actionReplay) MappedBanks() string {
	if cart.state.config.ExportRAM {
		return fmt.Sprintf("Bank: %d (RAM)", cart.state.config.Bank)
	}
	return fmt.Sprintf("Bank: %d", cart.state.config.Bank)
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *actionReplay) Snapshot() mapper.CartMapper {
	n := *cart
	n.state = cart.state.Snapshot()
	return &n
}

// Plumb implements the mapper.CartMapper interface.
func (cart *actionReplay) Plumb(env *environment.Environment, host bus.SystemBus) {
	cart.env = env
	cart.host = host
}

// Reset implements the mapper.CartMapper interface.
func (cart *actionReplay) Reset() {
	cart.state.active = true
	cart.state.regvalue = 0
	cart.state.config.Reconfigure(memorymap.Mode8K, 0, 0)
}

// PowerUp implements the mapper.CartMapper interface.
func (cart *actionReplay) PowerUp() {
	initRAM(cart.env, cart.state.ram.Data())
	cart.Reset()
}

// Config implements the mapper.CartMapper interface.
func (cart *actionReplay) Config() *mapper.Config {
	return &cart.state.config
}

// Freeze implements the mapper.Freezer interface.
func (cart *actionReplay) Freeze() {
	cart.state.active = true
}

// Read implements the mapper.CartMapper interface.
func (cart *actionReplay) Read(area memorymap.Area, addr uint16) uint8 {
	if area == memorymap.ROML && cart.state.regvalue&0x23 == arMode22 {
		quirk(cart.env, "AR5", "reading ROML area at 0x%04x in mode $22, this causes bus contention,", memorymap.OriginROML|addr)
		quirk(cart.env, "AR5", "     is unreliable, and may damage the hardware - do not do this!")
	}
	return cart.Peek(area, addr)
}

// Peek implements the mapper.CartMapper interface.
func (cart *actionReplay) Peek(area memorymap.Area, addr uint16) uint8 {
	switch area {
	case memorymap.ROML:
		// in mode $22 both C64 RAM and cartridge RAM are selected
		if cart.state.regvalue&0x23 == arMode22 {
			var v uint8
			if cart.host != nil {
				v = cart.host.ReadSystem(memorymap.OriginROML | addr)
			}
			return v | cart.state.ram.Read(0, addr)
		}
		if cart.state.config.ExportRAM {
			return cart.state.ram.Read(0, addr)
		}
		return cart.roml.Read(cart.state.config.Bank, addr)
	case memorymap.ROMH:
		return cart.romh.Read(cart.state.config.Bank, addr)
	}
	return 0
}

// Write implements the mapper.CartMapper interface.
func (cart *actionReplay) Write(area memorymap.Area, addr uint16, data uint8) {
	if area == memorymap.ROML && cart.state.config.ExportRAM {
		cart.state.ram.Write(0, addr, data)
	}
}

func (cart *actionReplay) io1Store(_ uint16, data uint8) {
	if !cart.state.active {
		return
	}

	cart.state.regvalue = data

	flags := mapper.FlagWrite
	if data&0x40 == 0x40 {
		flags |= mapper.FlagReleaseFreeze
	}
	if data&0x20 == 0x20 {
		flags |= mapper.FlagExportRAM
	}
	if data&0x04 == 0x04 {
		cart.state.active = false
	}

	bank := int(data>>3) & 0x03

	// mode $22 is broken on the real hardware. it is treated as 8k mode and
	// the contention is dealt with when ROML is read
	if data&0x23 == arMode22 {
		cart.state.config.Reconfigure(memorymap.Mode8K, bank, flags)
	} else {
		cart.state.config.Reconfigure(memorymap.Mode(data&0x03), bank, flags)
	}
}

func (cart *actionReplay) io1Read(addr uint16) (uint8, bool) {
	if !cart.state.active {
		return 0, false
	}

	// the r/w line is not decoded and so a read changes the register to
	// whatever was on the bus
	var v uint8
	if cart.host != nil {
		v = cart.host.FloatingBus()
	}
	cart.io1Store(addr, v)
	quirk(cart.env, "AR5", "reading IO1 area at 0xde%02x, this corrupts the register", addr&0xff)

	// the read is never valid
	return v, false
}

func (cart *actionReplay) io1Peek(_ uint16) uint8 {
	return cart.state.regvalue
}

func (cart *actionReplay) io2Read(addr uint16) (uint8, bool) {
	if !cart.state.active {
		return 0, false
	}
	return cart.io2Peek(addr), true
}

func (cart *actionReplay) io2Peek(addr uint16) uint8 {
	if !cart.state.active {
		return 0
	}
	// IO2 is a mirror of the last page of the ROML window
	addr = 0x1f00 | (addr & 0xff)
	if cart.state.config.ExportRAM {
		return cart.state.ram.Read(0, addr)
	}
	return cart.roml.Read(cart.state.config.Bank, addr)
}

func (cart *actionReplay) io2Store(addr uint16, data uint8) {
	if cart.state.active && cart.state.config.ExportRAM {
		cart.state.ram.Write(0, 0x1f00|(addr&0xff), data)
	}
}

// Devices implements the mapper.CartMapper interface.
func (cart *actionReplay) Devices() []cartio.Device {
	return []cartio.Device{
		{
			Name:   "Action Replay",
			Area:   memorymap.IO1,
			Origin: memorymap.OriginIO1,
			Memtop: memorymap.MemtopIO1,
			Mask:   0xff,
			Symbol: "ARCTRL",
			Action: cartio.ActionFunction,
			Handler: cartio.Funcs{
				StoreFunc: cart.io1Store,
				ReadFunc:  cart.io1Read,
				PeekFunc:  cart.io1Peek,
			},
		},
		{
			Name:      "Action Replay",
			Area:      memorymap.IO2,
			Origin:    memorymap.OriginIO2,
			Memtop:    memorymap.MemtopIO2,
			Mask:      0xff,
			ReadValid: true,
			Symbol:    "ARRAM",
			Action:    cartio.ActionRegister,
			Handler: cartio.Funcs{
				StoreFunc: cart.io2Store,
				ReadFunc:  cart.io2Read,
				PeekFunc:  cart.io2Peek,
			},
		},
	}
}

// Export implements the mapper.CartMapper interface.
func (cart *actionReplay) Export() cartio.Export {
	return cartio.Export{Name: "Action Replay", Game: true, ExROM: true, IO1: true, IO2: true}
}

// Dump implements the mapper.CartMapper interface.
func (cart *actionReplay) Dump(w io.Writer) {
	rv := cart.state.regvalue

	exrom := "low"
	if rv&0x02 == 0x02 {
		exrom = "high"
	}
	game := "high"
	if rv&0x01 == 0x01 {
		game = "low"
	}
	state := "enabled"
	if rv&0x04 == 0x04 {
		state = "disabled"
	}
	freeze := "no"
	if rv&0x40 == 0x40 {
		freeze = "yes"
	}
	ram := "ROM"
	if cart.state.config.ExportRAM {
		ram = "RAM"
	}

	fmt.Fprintf(w, "EXROM line: %s, GAME line: %s, Mode: %s\n", exrom, game, memorymap.Mode(rv&0x03))
	fmt.Fprintf(w, "ROM bank: %d, cart state: %s, reset freeze: %s\n", (rv&0x18)>>3, state, freeze)
	fmt.Fprintf(w, "$8000-$9FFF: %s\n", ram)
	fmt.Fprintf(w, "$A000-$BFFF: %s\n", "ROM")
	fmt.Fprintf(w, "$DF00-$DFFF: %s\n", ram)
}

// CopyBanks implements the mapper.CartMapper interface.
func (cart *actionReplay) CopyBanks() []banks.Content {
	c := cart.roml.Copy(memorymap.OriginROML)
	c = append(c, cart.romh.Copy(memorymap.OriginROMH, memorymap.OriginROMHU)...)
	return append(c, cart.state.ram.Copy(memorymap.OriginROML)...)
}

// GetRAM implements the mapper.CartRAMbus interface.
func (cart *actionReplay) GetRAM() []mapper.CartRAM {
	d := make([]uint8, cart.state.ram.Size())
	copy(d, cart.state.ram.Data())
	return []mapper.CartRAM{{
		Label:  "RAM",
		Origin: memorymap.OriginROML,
		Data:   d,
		Mapped: cart.state.config.ExportRAM,
	}}
}

// PutRAM implements the mapper.CartRAMbus interface.
func (cart *actionReplay) PutRAM(_ int, idx int, data uint8) {
	cart.state.ram.Poke(idx, data)
}

var arVersion = snapshot.Version{Major: 0, Minor: 1}

const arModule = "CARTAR"

func (cart *actionReplay) fields(s *actionReplayState, roml []uint8, romh []uint8) []snapshot.Field {
	return []snapshot.Field{
		snapshot.Bool("active", &s.active, snapshot.Version{}, true),
		snapshot.Array("ROML", roml, snapshot.Version{}),
		snapshot.Array("ROMH", romh, snapshot.Version{}),
		snapshot.Array("RAM", s.ram.Data(), snapshot.Version{}),
		snapshot.Byte("regvalue", &s.regvalue, snapshot.Version{Minor: 1}, 0),
	}
}

// WriteModule implements the mapper.CartMapper interface.
func (cart *actionReplay) WriteModule(s *snapshot.Snapshot) error {
	m, err := s.CreateModule(arModule, arVersion)
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
func (cart *actionReplay) ReadModule(s *snapshot.Snapshot) error {
	m, err := s.OpenModule(arModule)
	if err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}
	defer m.Close()

	if err := snapshot.CheckVersion(m.Version, arVersion); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}

	// read into copies so that a failed read leaves the cartridge unchanged
	state := cart.state.Snapshot()
	roml := cart.roml.Snapshot()
	romh := cart.romh.Snapshot()

	if err := snapshot.ReadFields(m, cart.fields(state, roml.Data(), romh.Data())); err != nil {
		return fmt.Errorf("%s: %w", cart.mappingID, err)
	}

	cart.state = state
	cart.roml = roml
	cart.romh = romh

	return nil
}
