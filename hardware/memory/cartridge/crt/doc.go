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

// Package crt reads and writes the CRT cartridge container format.
//
// A CRT file begins with a header that identifies the hardware type of the
// cartridge and the initial state of the EXROM and GAME lines. The header is
// followed by any number of CHIP packets, each containing a single ROM or RAM
// image along with its bank number and load address. All integer values in
// the format are big-endian.
//
//	offset  size  field
//	$00     16    "C64 CARTRIDGE   "
//	$10     4     header length
//	$14     2     version
//	$16     2     hardware type
//	$18     1     EXROM line (0 is active)
//	$19     1     GAME line (0 is active)
//	$1a     1     hardware revision
//	$1b     5     reserved
//	$20     32    name (NUL padded)
//
// The CHIP packet:
//
//	offset  size  field
//	$00     4     "CHIP"
//	$04     4     packet length (including the 16 byte header)
//	$08     2     chip type
//	$0a     2     bank
//	$0c     2     load address
//	$0e     2     image size
//	$10     n     image data
package crt
