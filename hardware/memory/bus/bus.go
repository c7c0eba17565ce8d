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

package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The Memory type implements this interface and maps the read/write
// address to the correct memory area, meaning that CPU access need not care
// which part of memory it is writing to.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebuggerBus defines the meta-operations for memory. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine. A Peek() never changes the state of the
// emulation.
type DebuggerBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}

// FloatingBus is implemented by the memory system to provide the value of
// the data bus when no device drives it. On the C64 this is the last value
// fetched by the VIC-II during phi1.
type FloatingBus interface {
	FloatingBus() uint8
}

// SystemBus gives a cartridge access to the memory underneath the expansion
// port. Some cartridges do not fully disconnect from the bus and so the value
// seen by the CPU is a combination of the cartridge and system memory.
type SystemBus interface {
	FloatingBus

	// ReadSystem returns the value at the address as though no cartridge
	// was attached. It has no side effects.
	ReadSystem(address uint16) uint8
}
