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

package snapshot

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by CheckVersion().
var (
	// ErrHigherVersion is returned when a module or file has a higher minor
	// version than the reader supports.
	ErrHigherVersion = errors.New("version is higher than supported")

	// ErrIncompatibleVersion is returned when the major version of a module
	// or file is different to the major version the reader supports.
	ErrIncompatibleVersion = errors.New("incompatible major version")
)

// Version of a module or file.
type Version struct {
	Major uint8
	Minor uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Less returns true if v is a lower version than o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// CheckVersion returns ErrIncompatibleVersion if the major versions differ and
// ErrHigherVersion if found has a higher minor version than supported.
func CheckVersion(found Version, supported Version) error {
	if found.Major != supported.Major {
		return fmt.Errorf("%w: found %s, supported %s", ErrIncompatibleVersion, found, supported)
	}
	if supported.Less(found) {
		return fmt.Errorf("%w: found %s, supported %s", ErrHigherVersion, found, supported)
	}
	return nil
}
