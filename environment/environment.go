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

// Package environment provides the context for an emulation. An emulation
// is given an Environment on creation and passes it on to the components
// that need access to preferences or random numbers.
package environment

import (
	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/notifications"
	"github.com/jetsetilly/gopher64/random"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main emulation
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences

	// notifications from the hardware. can be nil
	Notifications notifications.Notify
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The clock argument is used to seed random numbers and can be nil. In the
// case of the prefs argument, a nil value will cause a new Preferences
// instance to be created. Providing a non-nil value allows the preferences of
// more than one emulation to be synchronised.
func NewEnvironment(clock random.Clock, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  MainEmulation,
		Random: random.NewRandom(clock),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// regression testing where the initial state must be the same for every run of
// the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to create log entries.
func (env *Environment) AllowLogging() bool {
	return env == nil || env.IsMainEmulation()
}

// QuirkWarnings returns true if hardware quirks should be logged.
func (env *Environment) QuirkWarnings() bool {
	if env == nil || env.Prefs == nil {
		return true
	}
	return env.Prefs.QuirkWarnings.Get().(bool)
}

// Notify sends the notice to the Notifications instance, if there is one.
// Errors are logged and not returned because the hardware has no way of
// dealing with them.
func (env *Environment) Notify(notice notifications.Notice) {
	if env == nil || env.Notifications == nil {
		return
	}
	if err := env.Notifications.Notify(notice); err != nil {
		logger.Log(env, "environment", err)
	}
}
