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

package performance

import (
	"fmt"
	"io"
	"time"
)

// Bus is the memory bus driven by Check().
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	Cycles() uint64
}

// the addresses visited by the workload. they cover RAM, both ROM windows and
// both I/O areas so that every path through the cartridge is exercised
var workload = [...]uint16{0x0801, 0x8000, 0x9fff, 0xa000, 0xbfff, 0xde00, 0xdf00, 0xdfff, 0xe000}

// PAL clock rate of the machine
const clockPAL = 985248.0

// Check drives the bus with reads for the specified duration and writes
// a summary of the bus throughput to output. Writes are made to RAM only.
// Reads of the I/O areas can change the banking state of some cartridges.
func Check(output io.Writer, bus Bus, duration time.Duration, profile Profile, filenameHeader string) error {
	if duration <= 0 {
		return fmt.Errorf("performance: duration must be positive")
	}

	start := bus.Cycles()
	var elapsed time.Duration

	err := RunProfiler(profile, filenameHeader, func() error {
		timesUp := time.After(duration)
		began := time.Now()

		for {
			select {
			case <-timesUp:
				elapsed = time.Since(began)
				return nil
			default:
			}

			for range 1000 {
				for _, a := range workload {
					bus.Read(a)
				}
				bus.Write(0x0801, 0x00)
			}
		}
	})
	if err != nil {
		return err
	}

	accesses := bus.Cycles() - start
	rate := float64(accesses) / elapsed.Seconds()
	fmt.Fprintf(output, "%.2f accesses/sec (%d accesses in %.2f seconds) %.1fx PAL\n",
		rate, accesses, elapsed.Seconds(), rate/clockPAL)

	return nil
}
