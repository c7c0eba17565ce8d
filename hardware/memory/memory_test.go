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

package memory_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jetsetilly/gopher64/cartridgeloader"
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/snapshot"
	"github.com/jetsetilly/gopher64/test"
)

func newMemory(t *testing.T) *memory.Memory {
	t.Helper()
	t.Setenv("GOPHER64_RESOURCES", t.TempDir())
	env, err := environment.NewEnvironment(nil, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	mem := memory.NewMemory(env)
	mem.PowerUp()
	return mem
}

func attachTurtle(t *testing.T, mem *memory.Memory) {
	t.Helper()
	data := make([]uint8, 0x4000)
	for i := range data {
		data[i] = 0xc0 + uint8(i>>13)
	}
	ld, err := cartridgeloader.NewLoaderFromData("test.turtle", data, cartridgeloader.AutoMapping)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Cart.Attach(ld))
}

func rom(v uint8) []uint8 {
	return bytes.Repeat([]uint8{v}, 0x2000)
}

func TestInterfaces(t *testing.T) {
	mem := newMemory(t)
	test.DemandImplements[bus.CPUBus](t, mem)
	test.DemandImplements[bus.DebuggerBus](t, mem)
	test.DemandImplements[bus.SystemBus](t, mem)
}

func TestEmptyPort(t *testing.T) {
	mem := newMemory(t)
	test.DemandSuccess(t, mem.BASIC.Load(rom(0xba)))
	test.DemandSuccess(t, mem.KERNAL.Load(rom(0xea)))
	test.ExpectSuccess(t, mem.Cart.IsEjected())

	// power-up pattern
	test.ExpectEquality(t, mem.Read(0x0000), 0x00)
	test.ExpectEquality(t, mem.Read(0x0040), 0xff)

	mem.Write(0x8000, 0x12)
	test.ExpectEquality(t, mem.Read(0x8000), 0x12)

	test.ExpectEquality(t, mem.Read(0xa000), 0xba)
	test.ExpectEquality(t, mem.Read(0xe000), 0xea)

	// writes to ROM fall through to RAM
	mem.Write(0xa000, 0x34)
	test.ExpectEquality(t, mem.Read(0xa000), 0xba)
	test.ExpectEquality(t, mem.RAM.Read(0xa000), 0x34)

	// an I/O read with no device returns the last value on the bus
	mem.Write(0x0002, 0x77)
	test.ExpectEquality(t, mem.Read(0xde00), 0x77)
	test.ExpectEquality(t, mem.Read(0xdf80), 0x77)
}

func TestROMSize(t *testing.T) {
	mem := newMemory(t)
	err := mem.KERNAL.Load(make([]uint8, 100))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrROMSize))
}

func TestCartridgeWindows(t *testing.T) {
	mem := newMemory(t)
	test.DemandSuccess(t, mem.BASIC.Load(rom(0xba)))
	attachTurtle(t, mem)

	test.ExpectEquality(t, mem.MapAddress(0x8000).Area, memorymap.ROML)
	test.ExpectEquality(t, mem.Read(0x8000), 0xc0)
	test.ExpectEquality(t, mem.Read(0xa000), 0xba)

	// the ROML window in 8k mode is not writable. the write reaches the RAM
	// underneath
	mem.Write(0x8000, 0x56)
	test.ExpectEquality(t, mem.Read(0x8000), 0xc0)
	test.ExpectEquality(t, mem.RAM.Read(0x8000), 0x56)
	test.ExpectEquality(t, mem.ReadSystem(0x8000), 0x56)

	// any access of IO1 selects bank 1 of the turtle cartridge
	mem.Read(0xde00)
	test.ExpectEquality(t, mem.Read(0x8000), 0xc1)
	test.ExpectEquality(t, mem.Peek(0x8000), 0xc1)

	mem.Reset()
	test.ExpectEquality(t, mem.Peek(0x8000), 0xc0)

	mem.Cart.Detach()
	test.ExpectEquality(t, mem.Read(0x8000), 0x56)
}

func TestUltimax(t *testing.T) {
	mem := newMemory(t)
	test.DemandSuccess(t, mem.KERNAL.Load(rom(0xea)))

	data := make([]uint8, 0x1000)
	data[0] = 0x42
	ld, err := cartridgeloader.NewLoaderFromData("test.bin", data, "SS64")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Cart.Attach(ld))
	test.ExpectEquality(t, mem.Read(0xe000), 0xea)

	test.DemandSuccess(t, mem.Cart.Freeze())
	test.ExpectEquality(t, mem.MapAddress(0xe000).Area, memorymap.ROMH)
	test.ExpectEquality(t, mem.Read(0xe000), 0x42)

	// open addresses read the floating bus and ignore writes
	mem.Write(0x0002, 0x99)
	test.ExpectEquality(t, mem.Read(0x2000), 0x99)
	mem.Write(0x2000, 0x11)
	test.ExpectEquality(t, mem.RAM.Read(0x2000), mem.RAM.Read(0x2001))
}

func TestPoke(t *testing.T) {
	mem := newMemory(t)
	mem.Poke(0x1000, 0x12)
	test.ExpectEquality(t, mem.Peek(0x1000), 0x12)
	mem.Poke(0xd020, 0x0e)
	test.ExpectEquality(t, mem.Peek(0xd020), 0x0e)

	// peeking does not advance the cycle count
	c := mem.Cycles()
	mem.Peek(0x1000)
	test.ExpectEquality(t, mem.Cycles(), c)
	mem.Read(0x1000)
	test.ExpectEquality(t, mem.Cycles(), c+1)
}

func TestSnapshot(t *testing.T) {
	mem := newMemory(t)
	attachTurtle(t, mem)
	mem.Write(0x1234, 0xab)
	mem.Read(0xde00)

	s := snapshot.NewSnapshot(memory.Machine, "test")
	test.DemandSuccess(t, mem.WriteModule(s))
	test.ExpectEquality(t, len(s.Modules()), 3)

	var b bytes.Buffer
	_, err := s.WriteTo(&b)
	test.DemandSuccess(t, err)
	s, err = snapshot.Read(&b)
	test.DemandSuccess(t, err)

	rst := newMemory(t)
	test.DemandSuccess(t, rst.ReadModule(s))
	test.ExpectEquality(t, rst.Read(0x1234), 0xab)
	test.ExpectEquality(t, rst.Cart.ID(), "TURTLE")
	test.ExpectEquality(t, rst.Read(0x8000), 0xc1)
}

func TestSnapshotMachine(t *testing.T) {
	mem := newMemory(t)
	s := snapshot.NewSnapshot("VIC20", "test")
	test.DemandSuccess(t, mem.WriteModule(s))
	err := mem.ReadModule(s)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrMachine))
}
