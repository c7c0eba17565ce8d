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

// Package terminal defines the operations required for command-line
// interaction with the monitor.
//
// There are two implementations of the Terminal interface: the PlainTerminal
// and the ColorTerminal, found respectively in the plainterm and colorterm
// sub-packages. The ColorTerminal keeps a command history and allows line
// editing. The PlainTerminal works with any io.Reader and io.Writer and is
// used when the monitor is not connected to a real terminal.
package terminal
