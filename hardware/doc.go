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

// Package hardware is the base package for the emulation of the C64 expansion
// port. Its sub-packages contain everything required for a headless emulation
// of the memory bus and the cartridges that can be attached to it.
//
// The memory package is the root of the emulation. It owns the system RAM and
// ROMs, the I/O dispatcher and the cartridge. The preferences package holds
// the hardware preferences shared by all the sub-packages.
package hardware
