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

// Package preferences holds the preference values that affect the emulated
// hardware.
package preferences

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher64/prefs"
	"github.com/jetsetilly/gopher64/resources"
)

// Collision methods for the I/O dispatcher. See the Collision field in the
// Preferences type.
const (
	CollisionAND  = "AND"
	CollisionLast = "LAST"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// initialise system and cartridge RAM to a random state on power-up rather than the
	// RAM init pattern
	RandomState prefs.Bool

	// log warnings when a cartridge does something that would be harmful or
	// undefined on real hardware. for example, reading an Action Replay
	// register
	QuirkWarnings prefs.Bool

	// the method used to resolve a read from an I/O address that is claimed by
	// more than one device. one of CollisionAND or CollisionLast
	Collision prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file in the resource
// directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Collision.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case CollisionAND, CollisionLast:
			return nil
		}
		return fmt.Errorf("preferences: unknown collision method (%v)", v)
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("cartridge.quirkwarnings", &p.QuirkWarnings)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("cartridge.collision", &p.Collision)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !errors.Is(err, prefs.ErrNoPrefsFile) {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.QuirkWarnings.Set(true)
	p.Collision.Set(CollisionAND)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
