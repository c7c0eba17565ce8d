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

// Package monitor implements an interactive command line for inspecting and
// controlling the C64 memory and the cartridge in the expansion port.
//
// The monitor reads commands from a terminal.Terminal implementation. Each
// line of input is a single command followed by its arguments. Addresses and
// values are given in hexadecimal, with an optional $ or 0x prefix:
//
//	peek $8000 10
//	store de00 22
//	freeze
//	dump
//
// The HELP command lists all commands.
//
// The monitor implements the notifications.Notify interface and will print
// the notices it receives from the expansion port.
package monitor
