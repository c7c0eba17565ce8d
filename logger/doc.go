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

// Package logger is the central log repository for the emulation. Entries are
// tagged, usually with the name of the cartridge or the subsystem making the
// entry, and a detail value which can be a string, an error, a fmt.Stringer or
// any other value that can be formatted with the %v verb.
//
//	logger.Log(env, "AR5", "reading IO1 area at 0xde00, this corrupts the register")
//
// The first argument is a Permission. An environment.Environment satisfies the
// Permission interface and will decide whether the entry should be made. Use
// logger.Allow when the entry should always be made.
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count. This is important for hardware quirk warnings,
// which can be triggered on every bus cycle of a tight loop.
//
// The central logger is limited in size. Older entries are discarded as new
// entries are added. Private loggers can be created with NewLogger(), which
// is mostly useful for testing.
package logger
