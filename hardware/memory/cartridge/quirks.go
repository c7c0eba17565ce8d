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
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/raminit"
	"github.com/jetsetilly/gopher64/logger"
)

// quirk logs a warning about a hardware quirk. quirks are reproduced and so
// the warning is only a courtesy to the user
func quirk(env *environment.Environment, tag string, detail string, args ...any) {
	if !env.QuirkWarnings() {
		return
	}
	logger.Logf(env, tag, detail, args...)
}

// initRAM fills cartridge RAM with the power-up pattern or with random values
// if the hardware.randstate preference is set
func initRAM(env *environment.Environment, data []uint8) {
	if env != nil && env.Prefs != nil && env.Prefs.RandomState.Get().(bool) {
		raminit.Cartridge.Fill(data, env.Random)
		return
	}
	raminit.Cartridge.Fill(data, nil)
}
