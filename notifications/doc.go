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

// Package notifications allow communication from the cartridge port directly
// to the emulation instance. This is useful, for example, for a monitor that
// wants to tell the user that the freeze button has been pressed or that a
// cartridge has been detached.
//
// Notifications are sometimes passed onto the user interface to indicate to
// the user the event that has happened. For some notifications however, it is
// appropriate for the emulation instance to deal with the notification
// invisibly.
package notifications
