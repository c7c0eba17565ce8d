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

package raminit_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/memory/raminit"
	"github.com/jetsetilly/gopher64/random"
	"github.com/jetsetilly/gopher64/test"
)

func TestCartridgePattern(t *testing.T) {
	data := make([]uint8, 0x200)
	raminit.Cartridge.Fill(data, nil)

	expected := []uint8{0xff, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff}
	for i, v := range expected {
		test.ExpectEquality(t, data[i], v, i)
		test.ExpectEquality(t, data[0x100+i], v^0xff, i)
	}
}

func TestSystemPattern(t *testing.T) {
	data := make([]uint8, 0x100)
	raminit.System.Fill(data, nil)
	test.ExpectEquality(t, data[0x00], uint8(0x00))
	test.ExpectEquality(t, data[0x3f], uint8(0x00))
	test.ExpectEquality(t, data[0x40], uint8(0xff))
	test.ExpectEquality(t, data[0x7f], uint8(0xff))
	test.ExpectEquality(t, data[0x80], uint8(0x00))
}

func TestRandomFill(t *testing.T) {
	rnd := random.NewRandom(nil)
	rnd.ZeroSeed = true

	a := make([]uint8, 0x100)
	b := make([]uint8, 0x100)
	raminit.Cartridge.Fill(a, rnd)
	raminit.Cartridge.Fill(b, rnd)
	test.ExpectEquality(t, string(a), string(b))
}
