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

package banks_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/banks"
	"github.com/jetsetilly/gopher64/test"
)

func TestMasking(t *testing.T) {
	b := banks.New("ROML", 4, 0x2000, false)
	test.ExpectEquality(t, b.Size(), 0x8000)

	for i := range b.Data() {
		b.Data()[i] = uint8(i >> 13)
	}

	// every register value selects a bank inside the storage
	for v := 0; v <= 255; v++ {
		o := b.Offset(v, 0x1fff)
		test.ExpectSuccess(t, o >= 0 && o < b.Size(), v)
		test.ExpectEquality(t, b.Read(v, 0x0000), uint8(v&3), v)
	}

	// address is masked by the bank size
	test.ExpectEquality(t, b.Offset(1, 0x9fff), 0x2000+0x1fff)
	test.ExpectEquality(t, b.Offset(1, 0xe000), 0x2000)
}

func TestReadOnly(t *testing.T) {
	rom := banks.New("ROM", 2, 0x1000, false)
	test.ExpectFailure(t, rom.Write(0, 0x0000, 0xff))
	test.ExpectEquality(t, rom.Read(0, 0x0000), uint8(0))

	rom.Poke(0x1234, 0xaa)
	test.ExpectEquality(t, rom.Read(1, 0x0234), uint8(0xaa))

	ram := banks.New("RAM", 2, 0x1000, true)
	test.ExpectSuccess(t, ram.Write(3, 0x0123, 0x55))
	test.ExpectEquality(t, ram.Read(1, 0x0123), uint8(0x55))
}

func TestLoad(t *testing.T) {
	b := banks.New("ROML", 2, 0x2000, false)

	data := make([]uint8, 0x2000)
	data[0] = 0x42
	test.ExpectSuccess(t, b.Load(0x2000, data))
	test.ExpectEquality(t, b.Read(1, 0), uint8(0x42))

	err := b.Load(0x2001, data)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, banks.ErrOverflow))
	test.ExpectFailure(t, b.Load(-1, data))
}

func TestSnapshot(t *testing.T) {
	b := banks.New("RAM", 1, 0x2000, true)
	b.Fill(0xff)

	s := b.Snapshot()
	b.Write(0, 0, 0x00)
	test.ExpectEquality(t, s.Read(0, 0), uint8(0xff))
	test.ExpectEquality(t, b.Read(0, 0), uint8(0x00))

	test.ExpectSuccess(t, b.Restore(s.Data()))
	test.ExpectEquality(t, b.Read(0, 0), uint8(0xff))
	test.ExpectFailure(t, b.Restore(make([]uint8, 10)))
}

func TestCopy(t *testing.T) {
	b := banks.New("ROML", 2, 0x2000, false)
	b.Poke(0x2000, 0x99)

	c := b.Copy(0x8000)
	test.ExpectEquality(t, len(c), 2)
	test.ExpectEquality(t, c[1].Data[0], uint8(0x99))
	test.ExpectEquality(t, c[1].Origins[0], uint16(0x8000))

	// copied data is not live
	c[1].Data[0] = 0
	test.ExpectEquality(t, b.Read(1, 0), uint8(0x99))
}

func TestPowerOfTwo(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	banks.New("bad", 3, 0x2000, false)
}
