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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of emulation time used to seed the random number
// generator.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// nil Clock is allowed, in which case the cycle count is always zero.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// Plumb a new clock into the random number generator. Useful when the clock
// is created after the Random instance.
func (rnd *Random) Plumb(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) rand() *rand.Rand {
	var cycles int64
	if rnd.clock != nil {
		cycles = int64(rnd.clock.Cycles())
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(cycles))
	}
	return rand.New(rand.NewSource(baseSeed + cycles))
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill the slice with random bytes.
func (rnd *Random) Fill(data []uint8) {
	r := rnd.rand()
	for i := range data {
		data[i] = uint8(r.Intn(256))
	}
}
