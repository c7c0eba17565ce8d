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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/random"
	"github.com/jetsetilly/gopher64/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) Cycles() uint64 {
	return c.cycles
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&clock{cycles: 1000})
	b := random.NewRandom(&clock{cycles: 1000})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	da := make([]uint8, 64)
	db := make([]uint8, 64)
	a.Fill(da)
	b.Fill(db)
	test.ExpectEquality(t, string(da), string(db))
}

func TestNilClock(t *testing.T) {
	a := random.NewRandom(nil)
	a.ZeroSeed = true
	v := a.Intn(100)
	test.ExpectSuccess(t, v >= 0 && v < 100)
}
