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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated expansion port.
//
// The NewLoader() function reads the data from a local file or over HTTP. A
// local file can be inside a zip archive (see the archivefs package).
// NewLoaderFromData() wraps data that is already in memory. In both cases the
// Mapping field is decided by the mapping argument, the filename extension
// or by looking at the data itself, in that order.
//
// The simplest instance of the Loader type:
//
//	ld, err := cartridgeloader.NewLoader("carts/ar5.crt", "AUTO", "")
//
// Data in the CRT container format is recognised by extension or by the
// signature at the start of the file. In that case the IsContainer field is
// true and the mapping is decided by the hardware type in the CRT header.
//
// The Loader type implements io.Reader and io.Seeker. Reading starts from the
// beginning of the data each time Load() is called.
package cartridgeloader
