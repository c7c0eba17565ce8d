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

package cartio_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/memory/cartio"
	"github.com/jetsetilly/gopher64/test"
)

func TestExports(t *testing.T) {
	e := cartio.NewExports()

	test.ExpectSuccess(t, e.Add(cartio.Export{Name: "AR", Game: true, ExROM: true, IO1: true, IO2: true}))
	test.ExpectSuccess(t, e.Reserved("AR"))

	// GAME line already in use
	err := e.Add(cartio.Export{Name: "SS64", Game: true, IO2: true})
	test.ExpectSuccess(t, errors.Is(err, cartio.ErrExportConflict))
	test.ExpectFailure(t, e.Reserved("SS64"))

	// IO areas can be shared
	test.ExpectSuccess(t, e.Add(cartio.Export{Name: "clockport", IO1: true}))

	// remove is idempotent
	e.Remove("AR")
	e.Remove("AR")
	test.ExpectFailure(t, e.Reserved("AR"))
	test.ExpectSuccess(t, e.Add(cartio.Export{Name: "SS64", Game: true, IO2: true}))

	w := &test.CompareWriter{}
	e.Dump(w)
	test.ExpectSuccess(t, w.Compare("clockport: IO1\nSS64: GAME IO2\n"))
}
