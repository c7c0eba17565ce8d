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

package cartridge

import "errors"

// Sentinel errors returned by the cartridge package.
var (
	// the size of the binary image is wrong for the mapping
	ErrImageSize = errors.New("wrong image size")

	// the mapping or CRT hardware type is not supported
	ErrUnsupportedMapping = errors.New("unsupported mapping")

	// a CHIP packet in a CRT file has the wrong bank, size or load address.
	// or there are not enough CHIP packets
	ErrChipLayout = errors.New("bad chip layout")

	// the cartridge does not have a freeze button
	ErrNoFreeze = errors.New("cartridge has no freeze button")

	// the mapping in the snapshot is not known
	ErrSnapshotMapping = errors.New("unknown mapping in snapshot")

	// no cartridge is attached
	ErrEjected = errors.New("no cartridge attached")
)
