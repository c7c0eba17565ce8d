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

package mapper

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// Flags qualify a change of configuration.
type Flags uint8

// List of valid Flags.
const (
	// the configuration change was caused by a write access. without this
	// flag the change was caused by a read access
	FlagWrite Flags = 1 << iota

	// the freeze state is released
	FlagReleaseFreeze

	// cartridge RAM is mapped into the ROML window instead of ROM
	FlagExportRAM
)

// Config is the configuration of the cartridge as seen by the memory map.
type Config struct {
	Mode memorymap.Mode

	// the bank mapped into the ROML and ROMH windows. not all cartridges use
	// the same bank for both windows but all the cartridges currently
	// supported do
	Bank int

	ExportRAM     bool
	ReleaseFreeze bool

	// whether the last configuration change was caused by a write
	Write bool
}

func (c Config) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s bank %d", c.Mode, c.Bank))
	if c.ExportRAM {
		s.WriteString(" +RAM")
	}
	if c.ReleaseFreeze {
		s.WriteString(" +release")
	}
	if c.Write {
		s.WriteString(" (w)")
	}
	return s.String()
}

// Reconfigure changes the configuration. A change of configuration is
// always accepted.
func (c *Config) Reconfigure(mode memorymap.Mode, bank int, flags Flags) {
	c.Mode = mode & memorymap.ModeMask
	c.Bank = bank
	c.Write = flags&FlagWrite == FlagWrite
	c.ReleaseFreeze = flags&FlagReleaseFreeze == FlagReleaseFreeze
	c.ExportRAM = flags&FlagExportRAM == FlagExportRAM
}

// Flags returns the flags for the current configuration.
func (c Config) Flags() Flags {
	var f Flags
	if c.Write {
		f |= FlagWrite
	}
	if c.ReleaseFreeze {
		f |= FlagReleaseFreeze
	}
	if c.ExportRAM {
		f |= FlagExportRAM
	}
	return f
}
