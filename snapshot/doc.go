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

// Package snapshot implements the snapshot file format. A snapshot is a
// header followed by a list of named modules. Each component of the emulation
// writes its state to its own module and reads it back from the module with
// the same name.
//
// The snapshot header:
//
//	magic          "GOPHER64 Snapshot" followed by $1a
//	major, minor   file version
//	machine        16 bytes, NUL padded
//	application    32 bytes, NUL padded
//
// Each module:
//
//	name           16 bytes, NUL padded
//	major, minor   module version
//	size           little-endian uint32, including the 22 byte module header
//	data
//
// All values in module data are little-endian.
//
// Modules are versioned independently. A module can be read if its major
// version matches and its minor version is no higher than the version
// supported by the reader. Fields that were added in later minor versions are
// described with a Field table, which gives each field the version it first
// appeared in and a default value to use when reading an older module:
//
//	fields := []snapshot.Field{
//		snapshot.Bool("active", &active, snapshot.Version{}, true),
//		snapshot.Array("RAM", ram, snapshot.Version{}),
//		snapshot.Byte("regvalue", &regvalue, snapshot.Version{Minor: 1}, 0),
//	}
//
// Modules opened with OpenModule() must always be closed with Close(), whether
// the read was successful or not. A created module is only added to the
// snapshot when it is closed. If a write fails the module is discarded, and
// the usual pattern is to defer Discard() and call Close() on success:
//
//	m, err := s.CreateModule("CARTAR", version)
//	if err != nil {
//		return err
//	}
//	defer m.Discard()
//	if err := snapshot.WriteFields(m, fields); err != nil {
//		return err
//	}
//	return m.Close()
package snapshot
