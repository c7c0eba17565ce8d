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

// Package prefs facilitates the storing of preference values on disk. Values
// are added to a Disk instance with the Add() function and the Disk instance
// can then Save() or Load() those values.
//
// The types Bool, String, Int and Generic are supported. The Generic type
// is useful for values that need to be formatted in a particular way.
//
// The file format is a simple list of key/value pairs, one per line, with the
// WarningBoilerPlate on the first line:
//
//	*** do not edit this file by hand ***
//	cartridge.collision :: AND
//	cartridge.quirkwarnings :: true
//
// Values can be overridden for the lifetime of a session with the command
// line stack. See PushCommandLineStack().
package prefs
