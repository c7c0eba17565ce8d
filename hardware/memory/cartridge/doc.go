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

// Package cartridge implements the C64 expansion port and the cartridges
// that can be attached to it.
//
// The Cartridge type is the expansion port. A cartridge is attached with the
// Attach() function and the data is either a raw binary image or a CRT
// container. Devices in the IO1 and IO2 windows are registered with the
// cartio.Dispatcher and the GAME and EXROM lines are reserved with the
// cartio.Exports instance. Detach() releases everything and is safe to call
// more than once.
//
// Currently supported cartridge types are listed below. The strings in
// quotation marks are the identifiers that should be used to specify a
// particular mapping in the Mapping field of cartridgeloader.Loader. An empty
// string or "AUTO" tells the cartridge system to decide from the CRT header
// or from the size of a binary image.
//
//	Action Replay (4.2, 5, 6)	"AR"		crt type 1
//	Final Cartridge I			"FC1"		crt type 13
//	Freeze Frame				"FF"		crt type 45
//	Snapshot 64					"SS64"		crt type 47
//	Pagefox						"PAGEFOX"	crt type 53
//	Turtle Graphics II			"TURTLE"	crt type 76
//
// Hardware quirks are reproduced and not fixed. For example, reading the
// Action Replay control register corrupts it with the value on the floating
// bus. Quirks are logged if the cartridge.quirkwarnings preference is set.
package cartridge
