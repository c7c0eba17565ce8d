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

// Package archivefs treats zip archives as directories when resolving a
// filename. A cartridge file can be named by a path that passes through an
// archive:
//
//	carts/collection.zip/utilities/pagefox.bin
//
// Paths that do not pass through an archive are resolved by the normal file
// system.
package archivefs

import "io"

// ReadFile returns the contents of the named file. The filename can be inside
// an archive supported by archivefs.
func ReadFile(filename string) ([]uint8, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, err
	}
	defer afs.Close()

	r, _, err := afs.Open()
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	return io.ReadAll(r)
}
