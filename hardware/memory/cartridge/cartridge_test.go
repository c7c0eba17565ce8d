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

package cartridge_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jetsetilly/gopher64/cartridgeloader"
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/cartio"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/crt"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/test"
)

// host implements the bus.SystemBus interface.
type host struct {
	ram      [0x10000]uint8
	floating uint8
}

func (h *host) FloatingBus() uint8 {
	return h.floating
}

func (h *host) ReadSystem(addr uint16) uint8 {
	return h.ram[addr]
}

type port struct {
	env     *environment.Environment
	cart    *cartridge.Cartridge
	io      *cartio.Dispatcher
	exports *cartio.Exports
	host    *host
}

func newEnvironment(t *testing.T) *environment.Environment {
	t.Helper()
	t.Setenv("GOPHER64_RESOURCES", t.TempDir())
	env, err := environment.NewEnvironment(nil, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	return env
}

func newPort(t *testing.T) port {
	t.Helper()
	env := newEnvironment(t)
	h := &host{}
	p := port{
		env:     env,
		io:      cartio.NewDispatcher(env, h),
		exports: cartio.NewExports(),
		host:    h,
	}
	p.cart = cartridge.NewCartridge(env, h, p.io, p.exports)
	return p
}

// image creates a binary image where every 8k chunk is filled with the
// chunk number plus the base value
func image(size int, base uint8) []uint8 {
	data := make([]uint8, size)
	for i := range data {
		data[i] = base + uint8(i>>13)
	}
	return data
}

func attach(t *testing.T, p port, name string, data []uint8, mapping string) error {
	t.Helper()
	ld, err := cartridgeloader.NewLoaderFromData(name, data, mapping)
	test.DemandSuccess(t, err)
	return p.cart.Attach(ld)
}

func crtImage(t *testing.T, hardwareType uint16, chips ...crt.Chip) []uint8 {
	t.Helper()
	var b bytes.Buffer
	test.DemandSuccess(t, crt.WriteHeader(&b, crt.Header{HardwareType: hardwareType, ExROM: 0, Game: 0, Name: "test"}))
	for _, c := range chips {
		test.DemandSuccess(t, crt.WriteChip(&b, c))
	}
	return b.Bytes()
}

func TestAttachDetach(t *testing.T) {
	p := newPort(t)
	test.ExpectSuccess(t, p.cart.IsEjected())

	test.DemandSuccess(t, attach(t, p, "test.bin", image(0x8000, 0xa0), cartridgeloader.AutoMapping))
	test.ExpectEquality(t, p.cart.ID(), "AR")
	test.ExpectEquality(t, p.cart.Filename, "test.bin")
	test.ExpectInequality(t, p.cart.Hash, "")
	test.ExpectSuccess(t, p.exports.Reserved("Action Replay"))
	test.ExpectEquality(t, len(p.io.Registrations()), 2)

	p.cart.Detach()
	test.ExpectSuccess(t, p.cart.IsEjected())
	test.ExpectEquality(t, p.cart.Filename, "")
	test.ExpectFailure(t, p.exports.Reserved("Action Replay"))
	test.ExpectEquality(t, len(p.io.Registrations()), 0)
	test.ExpectEquality(t, p.cart.Mode(), memorymap.ModeRAM)

	// detach is idempotent
	p.cart.Detach()
	test.ExpectSuccess(t, p.cart.IsEjected())
	test.ExpectEquality(t, len(p.io.Registrations()), 0)

	// attaching replaces the existing cartridge
	test.DemandSuccess(t, attach(t, p, "test.bin", image(0x8000, 0xa0), cartridgeloader.AutoMapping))
	test.DemandSuccess(t, attach(t, p, "test.bin", image(0x2000, 0xa0), cartridgeloader.AutoMapping))
	test.ExpectEquality(t, p.cart.ID(), "FF")
	test.ExpectFailure(t, p.exports.Reserved("Action Replay"))
	test.ExpectEquality(t, len(p.io.Registrations()), 2)
}

func TestAttachFailure(t *testing.T) {
	p := newPort(t)

	expectEjected := func() {
		t.Helper()
		test.ExpectSuccess(t, p.cart.IsEjected())
		test.ExpectEquality(t, len(p.io.Registrations()), 0)
		test.ExpectFailure(t, p.exports.Reserved("Action Replay"))
	}

	// no mapping has this size
	err := attach(t, p, "test.bin", image(0x3000, 0), cartridgeloader.AutoMapping)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnsupportedMapping))
	expectEjected()

	// 16k is ambiguous
	err = attach(t, p, "test.bin", image(0x4000, 0), cartridgeloader.AutoMapping)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnsupportedMapping))
	expectEjected()

	// wrong size for the requested mapping
	err = attach(t, p, "test.bin", image(0x4000, 0), "AR")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrImageSize))
	expectEjected()

	// unknown mapping
	err = attach(t, p, "test.bin", image(0x8000, 0), "XYZ")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnsupportedMapping))
	expectEjected()

	// the GAME line is already in use
	test.DemandSuccess(t, p.exports.Add(cartio.Export{Name: "other", Game: true}))
	err = attach(t, p, "test.bin", image(0x8000, 0), "AR")
	test.ExpectSuccess(t, errors.Is(err, cartio.ErrExportConflict))
	expectEjected()
	p.exports.Remove("other")

	test.ExpectSuccess(t, attach(t, p, "test.bin", image(0x8000, 0), "AR"))
}

func TestContainer(t *testing.T) {
	p := newPort(t)

	chip := func(bank uint16, start uint16, size int) crt.Chip {
		return crt.Chip{Type: crt.ChipROM, Bank: bank, Start: start, Data: bytes.Repeat([]uint8{0xa0 + uint8(bank)}, size)}
	}

	data := crtImage(t, 1, chip(3, 0x8000, 0x2000), chip(2, 0x8000, 0x2000), chip(1, 0x8000, 0x2000), chip(0, 0x8000, 0x2000))
	test.DemandSuccess(t, attach(t, p, "test.crt", data, cartridgeloader.AutoMapping))
	test.ExpectEquality(t, p.cart.ID(), "AR")

	// chips can be in any order
	for b := range uint8(4) {
		p.cart.Write(memorymap.IO1, 0xde00, b<<3)
		test.ExpectEquality(t, p.cart.Peek(memorymap.ROML, 0x8000), 0xa0+b)
	}

	// not enough chips
	data = crtImage(t, 1, chip(0, 0x8000, 0x2000), chip(1, 0x8000, 0x2000))
	err := attach(t, p, "test.crt", data, cartridgeloader.AutoMapping)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrChipLayout))
	test.ExpectSuccess(t, p.cart.IsEjected())
	test.ExpectEquality(t, len(p.io.Registrations()), 0)

	// bank out of range
	data = crtImage(t, 76, chip(2, 0x8000, 0x2000))
	err = attach(t, p, "test.crt", data, cartridgeloader.AutoMapping)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrChipLayout))

	// wrong chip size
	data = crtImage(t, 76, chip(0, 0x8000, 0x1000))
	err = attach(t, p, "test.crt", data, cartridgeloader.AutoMapping)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrChipLayout))

	// wrong load address
	data = crtImage(t, 76, chip(0, 0xa000, 0x2000))
	err = attach(t, p, "test.crt", data, cartridgeloader.AutoMapping)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrChipLayout))

	// truncated chip
	data = crtImage(t, 76, chip(0, 0x8000, 0x2000))
	err = attach(t, p, "test.crt", data[:len(data)-10], cartridgeloader.AutoMapping)
	test.ExpectSuccess(t, errors.Is(err, crt.ErrTruncated))

	// unknown hardware type
	data = crtImage(t, 999, chip(0, 0x8000, 0x2000))
	err = attach(t, p, "test.crt", data, cartridgeloader.AutoMapping)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnsupportedMapping))

	// hardware type does not match the requested mapping
	data = crtImage(t, 76, chip(0, 0x8000, 0x2000))
	err = attach(t, p, "test.crt", data, "PAGEFOX")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnsupportedMapping))

	// bad signature
	err = attach(t, p, "test.crt", image(0x2000, 0), cartridgeloader.AutoMapping)
	test.ExpectSuccess(t, errors.Is(err, crt.ErrSignature))

	test.ExpectSuccess(t, p.cart.IsEjected())
	test.ExpectEquality(t, len(p.io.Registrations()), 0)

	// turtle graphics with two chips in ROML
	data = crtImage(t, 76, chip(0, 0x8000, 0x2000), chip(1, 0x8000, 0x2000))
	test.DemandSuccess(t, attach(t, p, "test.crt", data, cartridgeloader.AutoMapping))
	test.ExpectEquality(t, p.cart.ID(), "TURTLE")
	test.ExpectEquality(t, p.cart.Peek(memorymap.ROML, 0x8000), 0xa0)
}

func TestFreeze(t *testing.T) {
	p := newPort(t)

	test.ExpectSuccess(t, errors.Is(p.cart.Freeze(), cartridge.ErrEjected))

	test.DemandSuccess(t, attach(t, p, "test.bin", image(0x8000, 0xa0), "AR"))

	// 8k mode bank 2
	p.cart.Write(memorymap.IO1, 0xde00, 0x10)
	test.ExpectEquality(t, p.cart.Config(), mapper.Config{Mode: memorymap.Mode8K, Bank: 2, Write: true})

	test.DemandSuccess(t, p.cart.Freeze())
	test.ExpectEquality(t, p.cart.Config(), mapper.Config{Mode: memorymap.ModeUltimax, Bank: 2, ExportRAM: true, ReleaseFreeze: true})

	// freezing enables a disabled cartridge
	p.cart.Write(memorymap.IO1, 0xde00, 0x04)
	p.cart.Write(memorymap.IO1, 0xde00, 0x00)
	test.ExpectEquality(t, p.cart.Config().Mode, memorymap.Mode8K)
	test.ExpectEquality(t, p.cart.Peek(memorymap.IO1, 0xde00), 0x04)

	test.DemandSuccess(t, p.cart.Freeze())
	p.cart.Write(memorymap.IO1, 0xde00, 0x01)
	test.ExpectEquality(t, p.cart.Config(), mapper.Config{Mode: memorymap.Mode16K, Bank: 0, Write: true})

	// every freezer ends up in the same configuration
	for _, c := range []struct {
		size    int
		mapping string
	}{
		{0x1000, "SS64"},
		{0x2000, "FF"},
		{0x4000, "FC1"},
	} {
		test.DemandSuccess(t, attach(t, p, "test.bin", image(c.size, 0), c.mapping))
		test.DemandSuccess(t, p.cart.Freeze(), c.mapping)
		cfg := p.cart.Config()
		test.ExpectEquality(t, cfg.Mode, memorymap.ModeUltimax, c.mapping)
		test.ExpectSuccess(t, cfg.ExportRAM, c.mapping)
		test.ExpectSuccess(t, cfg.ReleaseFreeze, c.mapping)
	}

	// cartridges without a freeze button
	test.DemandSuccess(t, attach(t, p, "test.bin", image(0x10000, 0), "PAGEFOX"))
	test.ExpectSuccess(t, errors.Is(p.cart.Freeze(), cartridge.ErrNoFreeze))
	test.DemandSuccess(t, attach(t, p, "test.bin", image(0x4000, 0), "TURTLE"))
	test.ExpectSuccess(t, errors.Is(p.cart.Freeze(), cartridge.ErrNoFreeze))
	test.ExpectEquality(t, p.cart.Config().Mode, memorymap.Mode8K)
}

func TestDeterminism(t *testing.T) {
	sequence := []uint8{0x00, 0x0b, 0x22, 0x19, 0x63, 0x2a, 0x40, 0x13, 0x04, 0x01, 0x12}

	for _, c := range []struct {
		size    int
		mapping string
		addr    uint16
	}{
		{0x8000, "AR", 0xde00},
		{0x10000, "PAGEFOX", 0xde80},
		{0x4000, "TURTLE", 0xde00},
	} {
		a := newPort(t)
		b := newPort(t)
		test.DemandSuccess(t, attach(t, a, "a.bin", image(c.size, 0x30), c.mapping))
		test.DemandSuccess(t, attach(t, b, "b.bin", image(c.size, 0x30), c.mapping))

		for _, v := range sequence {
			a.cart.Write(memorymap.IO1, c.addr, v)
			b.cart.Write(memorymap.IO1, c.addr, v)
			test.ExpectEquality(t, a.cart.Config(), b.cart.Config(), c.mapping)
			test.ExpectEquality(t, a.cart.Peek(memorymap.IO1, c.addr), b.cart.Peek(memorymap.IO1, c.addr), c.mapping)
			test.ExpectEquality(t, a.cart.MappedBanks(), b.cart.MappedBanks(), c.mapping)
		}
	}
}

func TestGetBanks(t *testing.T) {
	p := newPort(t)
	test.DemandSuccess(t, attach(t, p, "test.bin", image(0x8000, 0), "AR"))

	p.cart.Write(memorymap.IO1, 0xde00, 0x08)
	b := p.cart.GetBanks()
	test.ExpectEquality(t, b[0].String(), "ROML 1")
	test.ExpectEquality(t, b[1].String(), "ROMH -")

	p.cart.Write(memorymap.IO1, 0xde00, 0x31)
	b = p.cart.GetBanks()
	test.ExpectEquality(t, b[0].String(), "ROML 2R")
	test.ExpectEquality(t, b[1].String(), "ROMH 2")

	test.ExpectEquality(t, len(p.cart.CopyBanks()), 4+4+1)
	test.DemandSuccess(t, p.cart.GetRAMbus() != nil)
}

func TestDump(t *testing.T) {
	p := newPort(t)

	w := &test.CompareWriter{}
	p.cart.Dump(w)
	test.ExpectSuccess(t, w.Compare("no cartridge\n"))

	test.DemandSuccess(t, attach(t, p, "test.bin", image(0x4000, 0), "TURTLE"))
	w.Clear()
	p.cart.Dump(w)
	test.ExpectSuccess(t, w.Compare("test (TURTLE)\nconfig: 8k Game bank 0\nbank: 0\n"))
}

func TestWriteContainer(t *testing.T) {
	for _, id := range []string{"AR", "FC1", "FF", "SS64", "PAGEFOX", "TURTLE"} {
		t.Run(id, func(t *testing.T) {
			env := newEnvironment(t)

			var size int
			switch id {
			case "AR":
				size = 0x8000
			case "FC1", "TURTLE":
				size = 0x4000
			case "FF":
				size = 0x2000
			case "SS64":
				size = 0x1000
			case "PAGEFOX":
				size = 0x10000
			}
			data := image(size, 0x10)

			var b bytes.Buffer
			test.DemandSuccess(t, cartridge.WriteContainer(env, &b, id, "test", data))

			hdr, err := crt.ReadHeader(bytes.NewReader(b.Bytes()))
			test.DemandSuccess(t, err)
			hw, err := cartridge.HardwareType(id)
			test.DemandSuccess(t, err)
			test.ExpectEquality(t, hdr.HardwareType, hw)
			test.ExpectEquality(t, hdr.Name, "test")

			bin := newPort(t)
			test.DemandSuccess(t, attach(t, bin, "test.bin", data, id))
			p := newPort(t)
			test.DemandSuccess(t, attach(t, p, "test.crt", b.Bytes(), cartridgeloader.AutoMapping))
			test.ExpectEquality(t, p.cart.ID(), id)
			test.ExpectEquality(t, p.cart.Config(), bin.cart.Config())
			test.ExpectEquality(t, p.cart.MappedBanks(), bin.cart.MappedBanks())
		})
	}
}

func TestWriteContainerFailure(t *testing.T) {
	env := newEnvironment(t)
	var b bytes.Buffer

	err := cartridge.WriteContainer(env, &b, "NOSUCH", "test", image(0x2000, 0))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnsupportedMapping))

	err = cartridge.WriteContainer(env, &b, "AR", "test", image(0x2000, 0))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrImageSize))
	test.ExpectEquality(t, b.Len(), 0)
}
