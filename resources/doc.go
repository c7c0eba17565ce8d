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

// Package resources contains functions to prepare paths for gopher64
// resources.
//
// The resource directory is ".gopher64" in the current working directory if
// it exists. Otherwise it is "gopher64" in the user's configuration directory,
// as reported by os.UserConfigDir(). The GOPHER64_RESOURCES environment
// variable overrides both.
//
// The JoinPath() function creates any missing directories in the path so
// the caller can create the file without further preparation.
package resources
