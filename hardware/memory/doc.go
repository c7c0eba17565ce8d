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

// Package memory implements the C64 memory as seen by the CPU. The memory
// sub-packages do most of the work.
//
// Memory is divided into areas, defined in the memorymap package. Which area
// an address falls in depends on the configuration mode of the cartridge in
// the expansion port:
//
//	                           ---- RAM
//	                          |
//	                          |---- BASIC / KERNAL
//	    CPU ---- cpu bus ---- *
//	                          |---- Chips
//	                          |
//	                           ---- Cartridge ---- ROML / ROMH
//	                                        \
//	                                         ---- cartio ---- IO1 / IO2
//
// The asterisk indicates that addresses used by the CPU are first mapped with
// memorymap.MapAddress(). A write to a ROM area that is not writable falls
// through to the RAM underneath. The cartridge still sees the write because
// some cartridges latch data written to the ROM windows.
//
// The cartridge is given access to the memory underneath it through the
// bus.SystemBus interface, which the Memory type implements.
//
// The DebuggerBus interface allows memory to be inspected and changed
// without affecting the emulation.
package memory
