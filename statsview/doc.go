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

// Package statsview is an optional package that is built only when the
// statsview build constraint is present. Without the constraint the package
// still exists but Available() returns false and Launch() does nothing.
//
// It provides a HTTP server running locally that charts the runtime
// statistics of the emulator: heap size, garbage collection pauses and the
// number of goroutines. It is launched with the --statsview flag and is
// intended for use alongside the perf command, where allocation in the
// cartridge read and write paths shows up in the heap chart. Underlying
// functionality provided by "github.com/go-echarts/statsview"
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12064/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12064/debug/pprof/
package statsview
