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

// Package banks implements bank-selectable storage for cartridge ROM and RAM.
//
// Storage is a single contiguous array divided into a power-of-two number of
// banks, each of a power-of-two size. Every access is masked so that an
// out-of-range bank number or address can never reach outside the allocated
// storage. Bank numbers wrap around the number of banks in the same way that
// unused address lines on a real cartridge would.
package banks
