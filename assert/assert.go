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

// Package assert provides checks for programming errors. An assertion that
// fails is not a recoverable error and will cause a panic.
package assert

import "fmt"

// Invariant panics with the message if the condition is false.
func Invariant(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assert: %s", fmt.Sprintf(msg, args...)))
	}
}

// PowerOfTwo returns true if n is a positive power of two.
func PowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
