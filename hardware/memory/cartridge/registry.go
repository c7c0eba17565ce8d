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

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/mapper"
)

// loadableMapper is a mapper that can be created from a binary image or a CRT
// container.
type loadableMapper interface {
	mapper.CartMapper
	loadable
}

// mapping describes a supported cartridge type.
type mapping struct {
	id   string
	name string

	// the hardware type in the CRT header
	hardwareType uint16

	// sizes of the binary image that identify the cartridge type when the
	// mapping is decided automatically
	sizes []int

	// the chip packets in a CRT file
	layout chipLayout

	create func(env *environment.Environment) loadableMapper
}

var registry = []mapping{
	{
		id: "AR", name: "Action Replay", hardwareType: 1,
		sizes:  []int{0x8000, 0x8002},
		layout: actionReplayLayout,
		create: func(env *environment.Environment) loadableMapper {
			return newActionReplay(env)
		},
	},
	{
		id: "FC1", name: "Final Cartridge", hardwareType: 13,
		sizes:  []int{0x4000, 0x4002},
		layout: finalV1Layout,
		create: func(env *environment.Environment) loadableMapper {
			return newFinalV1(env)
		},
	},
	{
		id: "FF", name: "Freeze Frame", hardwareType: 45,
		sizes:  []int{0x2000, 0x2002},
		layout: freezeFrameLayout,
		create: func(env *environment.Environment) loadableMapper {
			return newFreezeFrame(env)
		},
	},
	{
		id: "SS64", name: "Snapshot 64", hardwareType: 47,
		sizes:  []int{0x1000, 0x1002},
		layout: snapshot64Layout,
		create: func(env *environment.Environment) loadableMapper {
			return newSnapshot64(env)
		},
	},
	{
		id: "PAGEFOX", name: "Pagefox", hardwareType: 53,
		sizes:  []int{0x10000, 0x10002},
		layout: pagefoxLayout,
		create: func(env *environment.Environment) loadableMapper {
			return newPagefox(env)
		},
	},
	{
		id: "TURTLE", name: "Turtle Graphics II", hardwareType: 76,
		sizes:  []int{0x4000},
		layout: turtleLayout,
		create: func(env *environment.Environment) loadableMapper {
			return newTurtle(env)
		},
	},
}

// Mappings returns a description of each supported mapping, one per line,
// in the form "ID (CRT type): name".
func Mappings() []string {
	s := make([]string, 0, len(registry))
	for _, m := range registry {
		s = append(s, fmt.Sprintf("%s (%d): %s", m.id, m.hardwareType, m.name))
	}
	return s
}

// SupportedMapping returns true if the mapping ID is recognised.
func SupportedMapping(id string) bool {
	_, err := lookupID(id)
	return err == nil
}

// HardwareType returns the CRT hardware type for the mapping ID.
func HardwareType(id string) (uint16, error) {
	m, err := lookupID(id)
	if err != nil {
		return 0, err
	}
	return m.hardwareType, nil
}

func lookupID(id string) (mapping, error) {
	id = strings.ToUpper(id)
	for _, m := range registry {
		if m.id == id {
			return m, nil
		}
	}
	return mapping{}, fmt.Errorf("%w: %s", ErrUnsupportedMapping, id)
}

func lookupHardwareType(t uint16) (mapping, error) {
	for _, m := range registry {
		if m.hardwareType == t {
			return m, nil
		}
	}
	return mapping{}, fmt.Errorf("%w: CRT hardware type %d", ErrUnsupportedMapping, t)
}

// fingerprint decides the mapping of a binary image from its size. a size
// shared by more than one mapping cannot be decided
func fingerprint(data []uint8) (mapping, error) {
	var found []mapping
	for _, m := range registry {
		if slices.Contains(m.sizes, len(data)) {
			found = append(found, m)
		}
	}

	switch len(found) {
	case 0:
		return mapping{}, fmt.Errorf("%w: no mapping for %d bytes", ErrUnsupportedMapping, len(data))
	case 1:
		return found[0], nil
	}

	ids := make([]string, len(found))
	for i, m := range found {
		ids[i] = m.id
	}
	return mapping{}, fmt.Errorf("%w: %d bytes could be %s", ErrUnsupportedMapping, len(data), strings.Join(ids, " or "))
}
