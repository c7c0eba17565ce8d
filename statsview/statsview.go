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

//go:build statsview

package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gopher64/logger"
)

// Address of the stats server.
const Address = "localhost:12064"

const url = "/debug/statsview"

// sampling interval of the charts in milliseconds. the perf command runs for
// a few seconds only and so the default interval of two seconds is too coarse
const interval = 250

// Launch the stats server in a new goroutine. The charts show the heap,
// garbage collection and goroutine activity of the emulator, which is most
// useful while the perf command is driving the memory bus or while the
// monitor holds a cartridge.
//
// A failure to start the server is logged and does not stop the emulation.
func Launch(output io.Writer) {
	viewer.SetConfiguration(
		viewer.WithAddr(Address),
		viewer.WithInterval(interval),
		viewer.WithTheme(viewer.ThemeWesteros),
	)
	mgr := statsview.New()

	go func() {
		err := mgr.Start()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logf(logger.Allow, "statsview", "server stopped: %v", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
