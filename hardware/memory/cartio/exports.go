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

package cartio

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrExportConflict is returned by Exports.Add() when a line is already in
// use by another cartridge.
var ErrExportConflict = errors.New("expansion port line already in use")

// Export records the usage of the expansion port by a cartridge.
type Export struct {
	Name string

	// the GAME and EXROM lines are exclusive. only one cartridge can use
	// each line
	Game  bool
	ExROM bool

	// I/O areas can be shared. a read collision is handled by the Dispatcher
	IO1 bool
	IO2 bool
}

func (e Export) String() string {
	var s []string
	if e.Game {
		s = append(s, "GAME")
	}
	if e.ExROM {
		s = append(s, "EXROM")
	}
	if e.IO1 {
		s = append(s, "IO1")
	}
	if e.IO2 {
		s = append(s, "IO2")
	}
	return fmt.Sprintf("%s: %s", e.Name, strings.Join(s, " "))
}

// Exports is the list of Export reservations on the expansion port.
type Exports struct {
	list []Export
}

// NewExports is the preferred method of initialisation for the Exports type.
func NewExports() *Exports {
	return &Exports{}
}

// Add a reservation. The reservation is refused with ErrExportConflict if
// the GAME or EXROM line is already in use, or if a reservation with the same
// name already exists.
func (e *Exports) Add(x Export) error {
	for _, o := range e.list {
		if o.Name == x.Name {
			return fmt.Errorf("%w: %s is already reserved", ErrExportConflict, x.Name)
		}
		if x.Game && o.Game {
			return fmt.Errorf("%w: GAME line is in use by %s", ErrExportConflict, o.Name)
		}
		if x.ExROM && o.ExROM {
			return fmt.Errorf("%w: EXROM line is in use by %s", ErrExportConflict, o.Name)
		}
	}
	e.list = append(e.list, x)
	return nil
}

// Remove the reservation with the name. Removing a reservation that does not
// exist does nothing.
func (e *Exports) Remove(name string) {
	for i, o := range e.list {
		if o.Name == name {
			e.list = append(e.list[:i], e.list[i+1:]...)
			return
		}
	}
}

// Reserved returns true if there is a reservation with the name.
func (e *Exports) Reserved(name string) bool {
	for _, o := range e.list {
		if o.Name == name {
			return true
		}
	}
	return false
}

// Dump writes the list of reservations to the io.Writer.
func (e *Exports) Dump(w io.Writer) {
	for _, o := range e.list {
		io.WriteString(w, fmt.Sprintf("%s\n", o))
	}
}
