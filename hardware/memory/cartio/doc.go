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

// Package cartio dispatches accesses to the IO1 ($DE00-$DEFF) and IO2
// ($DF00-$DFFF) windows to the devices that have registered an interest in
// them.
//
// A device describes the range of addresses it responds to, a mask that is
// applied to the address before it is given to the device's Handler, and
// whether a read from the device can ever be valid. Write-only registers are
// common on cartridges and a read from such a register returns the value on
// the floating bus.
//
// More than one device may claim the same address. A store is given to every
// device. A read is given to every device but if more than one device
// returns a valid value then the result is a collision. Collisions are logged
// and resolved according to the cartridge.collision preference.
//
// The Exports type keeps track of which cartridge is using the GAME and
// EXROM lines of the expansion port.
package cartio
