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

package notifications

// Notice describes events that somehow change the state of the expansion
// port. These notifications can be used to present additional information
// to the user.
type Notice string

// List of defined notifications.
const (
	// a cartridge has been attached or detached
	NotifyAttached Notice = "NotifyAttached"
	NotifyDetached Notice = "NotifyDetached"

	// the freeze button has been pressed
	NotifyFreeze Notice = "NotifyFreeze"

	// the cartridge has been reset or powered up
	NotifyReset   Notice = "NotifyReset"
	NotifyPowerUp Notice = "NotifyPowerUp"

	// cartridge state has been restored from a snapshot
	NotifySnapshotRestored Notice = "NotifySnapshotRestored"
)

// Notify is used for direct communication between the hardware and the
// emulation instance.
type Notify interface {
	Notify(notice Notice) error
}
