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

package cartio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/preferences"
	"github.com/jetsetilly/gopher64/logger"
)

// ErrDevice is returned by Register() when the Device is malformed.
var ErrDevice = errors.New("malformed device")

// Registration is returned by Register() and is used to Unregister() the
// device.
type Registration struct {
	Device

	// the order in which the device was registered. later registrations have
	// higher values
	order int

	// nil when the device has been unregistered
	dispatcher *Dispatcher
}

// Registered returns true if the registration is still active.
func (r *Registration) Registered() bool {
	return r != nil && r.dispatcher != nil
}

// Dispatcher routes accesses in the IO1 and IO2 windows to registered
// devices.
type Dispatcher struct {
	env *environment.Environment
	bus bus.FloatingBus

	registrations []*Registration
	order         int
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
func NewDispatcher(env *environment.Environment, bus bus.FloatingBus) *Dispatcher {
	return &Dispatcher{
		env: env,
		bus: bus,
	}
}

// Plumb a new environment into the dispatcher.
func (d *Dispatcher) Plumb(env *environment.Environment) {
	d.env = env
}

// Register a device with the dispatcher.
func (d *Dispatcher) Register(dev Device) (*Registration, error) {
	if err := dev.check(); err != nil {
		return nil, err
	}
	d.order++
	r := &Registration{
		Device:     dev,
		order:      d.order,
		dispatcher: d,
	}
	d.registrations = append(d.registrations, r)
	return r, nil
}

// Unregister a device. Unregistering a nil registration or a registration
// that has already been unregistered does nothing.
func (d *Dispatcher) Unregister(r *Registration) {
	if r == nil || r.dispatcher != d {
		return
	}
	for i, o := range d.registrations {
		if o == r {
			d.registrations = append(d.registrations[:i], d.registrations[i+1:]...)
			break
		}
	}
	r.dispatcher = nil
}

// Registrations returns the registered devices in the order of registration.
func (d *Dispatcher) Registrations() []Device {
	devs := make([]Device, 0, len(d.registrations))
	for _, r := range d.registrations {
		devs = append(devs, r.Device)
	}
	return devs
}

// Store data at the address. Every device that claims the address receives
// the data.
func (d *Dispatcher) Store(addr uint16, data uint8) {
	for _, r := range d.snapshot() {
		if r.contains(addr) {
			r.Handler.Store(addr&r.Mask, data)
		}
	}
}

// Read the value at the address. If no device responds with a valid read
// then the value on the floating bus is returned.
func (d *Dispatcher) Read(addr uint16) uint8 {
	var value uint8
	var valid []*Registration

	for _, r := range d.snapshot() {
		if !r.contains(addr) {
			continue
		}
		v, ok := r.Handler.Read(addr & r.Mask)
		if ok && r.ReadValid {
			if len(valid) == 0 {
				value = v
			} else if d.collisionMethod() == preferences.CollisionLast {
				value = v
			} else {
				value &= v
			}
			valid = append(valid, r)
		}
	}

	switch len(valid) {
	case 0:
		return d.floatingBus()
	case 1:
		return value
	}

	names := make([]string, len(valid))
	for i, r := range valid {
		names[i] = r.Name
	}
	logger.Logf(d.env, "cartio", "read collision at $%04X (%s): result $%02X", addr, strings.Join(names, ", "), value)

	return value
}

// Peek returns the value at the address without side effects. The value from
// the most recently registered device is returned. If no device claims the
// address then the value on the floating bus is returned.
func (d *Dispatcher) Peek(addr uint16) uint8 {
	for i := len(d.registrations) - 1; i >= 0; i-- {
		r := d.registrations[i]
		if r.contains(addr) {
			return r.Handler.Peek(addr & r.Mask)
		}
	}
	return d.floatingBus()
}

// Dump writes a list of registered devices to the io.Writer.
func (d *Dispatcher) Dump(w io.Writer) {
	if len(d.registrations) == 0 {
		io.WriteString(w, "no I/O devices\n")
		return
	}
	for _, r := range d.registrations {
		io.WriteString(w, fmt.Sprintf("%s\n", r.Device))
	}
}

// a store or read can cause a device to be unregistered. for example, a
// cartridge might detach itself. iterate over a copy of the list
func (d *Dispatcher) snapshot() []*Registration {
	c := make([]*Registration, len(d.registrations))
	copy(c, d.registrations)
	return c
}

func (d *Dispatcher) floatingBus() uint8 {
	if d.bus == nil {
		return 0
	}
	return d.bus.FloatingBus()
}

func (d *Dispatcher) collisionMethod() string {
	if d.env == nil || d.env.Prefs == nil {
		return preferences.CollisionAND
	}
	return strings.ToUpper(d.env.Prefs.Collision.String())
}
