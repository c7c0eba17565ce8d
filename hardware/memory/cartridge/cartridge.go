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

package cartridge

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher64/cartridgeloader"
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/memory/cartio"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/banks"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/crt"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/notifications"
	"github.com/jetsetilly/gopher64/snapshot"
)

// Cartridge defines the information and operations for the expansion port
// and the cartridge attached to it.
type Cartridge struct {
	env  *environment.Environment
	host bus.SystemBus

	io      *cartio.Dispatcher
	exports *cartio.Exports

	// filename and hash of the attached cartridge. empty when ejected
	Filename string
	Hash     string

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper.CartMapper

	// the I/O registrations and export reservation of the attached cartridge
	registrations []*cartio.Registration
	export        string
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The host bus gives the cartridge access to the memory underneath it
// and can be nil.
func NewCartridge(env *environment.Environment, host bus.SystemBus, io *cartio.Dispatcher, exports *cartio.Exports) *Cartridge {
	return &Cartridge{
		env:     env,
		host:    host,
		io:      io,
		exports: exports,
		mapper:  newEjected(),
	}
}

func (cart *Cartridge) String() string {
	if cart.IsEjected() {
		return "no cartridge"
	}
	return fmt.Sprintf("%s [%s] %s", cart.ShortFilename(), cart.mapper.ID(), cart.mapper.MappedBanks())
}

// ShortFilename returns the filename of the cartridge without the path or
// extension.
func (cart *Cartridge) ShortFilename() string {
	return strings.TrimSuffix(filepath.Base(cart.Filename), filepath.Ext(cart.Filename))
}

// Snapshot creates a copy of the cartridge for inspection. The copy is not
// attached to the expansion port and changes to it have no effect on the
// I/O dispatcher.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	n.mapper = cart.mapper.Snapshot()
	n.registrations = nil
	return &n
}

// Plumb a new environment and host bus into the cartridge.
func (cart *Cartridge) Plumb(env *environment.Environment, host bus.SystemBus) {
	cart.env = env
	cart.host = host
	cart.mapper.Plumb(env, host)
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.mapper.ID() == ejectedID
}

// ID returns the mapping ID of the attached cartridge.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// MappedBanks returns a string describing the banks that are currently
// mapped.
func (cart *Cartridge) MappedBanks() string {
	return cart.mapper.MappedBanks()
}

// Attach the cartridge data in the loader to the expansion port. Any
// cartridge already attached is detached first.
//
// On error the expansion port is left with no cartridge attached and nothing
// registered with the I/O dispatcher.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	cart.Detach()

	m, err := cart.load(cartload)
	if err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	m.Plumb(cart.env, cart.host)
	m.PowerUp()

	if err := cart.insert(m); err != nil {
		return fmt.Errorf("cartridge: %s: %w", m.ID(), err)
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash

	logger.Logf(cart.env, "cartridge", "attached %s as %s", cartload.ShortName(), m.ID())
	cart.env.Notify(notifications.NotifyAttached)

	return nil
}

// create and load the mapper for the loader. the mapping is decided from the
// CRT header or the size of the image unless the loader specifies a mapping
func (cart *Cartridge) load(cartload cartridgeloader.Loader) (loadableMapper, error) {
	cartload.Reset()

	if cartload.IsContainer {
		h, err := crt.ReadHeader(&cartload)
		if err != nil {
			return nil, err
		}

		reg, err := lookupHardwareType(h.HardwareType)
		if err != nil {
			return nil, err
		}

		if !cartload.IsAuto() && reg.id != cartload.Mapping {
			return nil, fmt.Errorf("%w: CRT file is %s but %s was requested", ErrUnsupportedMapping, reg.id, cartload.Mapping)
		}

		m := reg.create(cart.env)
		if err := m.loadContainer(&cartload); err != nil {
			return nil, err
		}
		return m, nil
	}

	var reg mapping
	var err error

	if cartload.IsAuto() {
		reg, err = fingerprint(cartload.Data)
	} else {
		reg, err = lookupID(cartload.Mapping)
	}
	if err != nil {
		return nil, err
	}

	m := reg.create(cart.env)
	if err := m.loadBinary(cartload.Data); err != nil {
		return nil, err
	}
	return m, nil
}

// reserve the expansion port lines and register the I/O devices of the
// mapper. nothing is left registered on error
func (cart *Cartridge) insert(m mapper.CartMapper) error {
	x := m.Export()
	if err := cart.exports.Add(x); err != nil {
		return err
	}
	cart.export = x.Name

	for _, dev := range m.Devices() {
		r, err := cart.io.Register(dev)
		if err != nil {
			cart.release()
			return err
		}
		cart.registrations = append(cart.registrations, r)
	}

	cart.mapper = m

	return nil
}

// release the I/O registrations and the export reservation
func (cart *Cartridge) release() {
	for _, r := range cart.registrations {
		cart.io.Unregister(r)
	}
	cart.registrations = cart.registrations[:0]

	if cart.export != "" {
		cart.exports.Remove(cart.export)
		cart.export = ""
	}
}

// Detach the cartridge from the expansion port. Detaching when there is no
// cartridge attached does nothing.
func (cart *Cartridge) Detach() {
	if cart.IsEjected() {
		return
	}

	cart.release()
	cart.mapper = newEjected()
	cart.Filename = ""
	cart.Hash = ""

	cart.env.Notify(notifications.NotifyDetached)
}

// Reset the cartridge.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
	cart.env.Notify(notifications.NotifyReset)
}

// PowerUp the cartridge. Unlike Reset() any cartridge RAM is initialised.
func (cart *Cartridge) PowerUp() {
	cart.mapper.PowerUp()
	cart.env.Notify(notifications.NotifyPowerUp)
}

// Freeze presses the freeze button of the cartridge. The cartridge is put
// into Ultimax mode with cartridge RAM exported. The cartridge then makes
// any changes specific to the hardware.
//
// Returns ErrNoFreeze if the cartridge has no freeze button.
func (cart *Cartridge) Freeze() error {
	if cart.IsEjected() {
		return fmt.Errorf("cartridge: %w", ErrEjected)
	}

	f, ok := cart.mapper.(mapper.Freezer)
	if !ok {
		return fmt.Errorf("cartridge: %s: %w", cart.mapper.ID(), ErrNoFreeze)
	}

	cfg := cart.mapper.Config()
	cfg.Reconfigure(memorymap.ModeUltimax, cfg.Bank, mapper.FlagExportRAM|mapper.FlagReleaseFreeze)
	f.Freeze()

	cart.env.Notify(notifications.NotifyFreeze)

	return nil
}

// Config returns a copy of the current configuration.
func (cart *Cartridge) Config() mapper.Config {
	return *cart.mapper.Config()
}

// Mode returns the current configuration mode. Used by the memory map.
func (cart *Cartridge) Mode() memorymap.Mode {
	return cart.mapper.Config().Mode
}

// Read the value at the address in the area. The address is a CPU address.
// Reads of IO1 and IO2 go through the I/O dispatcher.
func (cart *Cartridge) Read(area memorymap.Area, addr uint16) uint8 {
	switch area {
	case memorymap.ROML, memorymap.ROMH:
		return cart.mapper.Read(area, memorymap.Normalise(addr, area))
	case memorymap.IO1, memorymap.IO2:
		return cart.io.Read(addr)
	}
	return 0
}

// Write the data to the address in the area. The address is a CPU address.
func (cart *Cartridge) Write(area memorymap.Area, addr uint16, data uint8) {
	switch area {
	case memorymap.ROML, memorymap.ROMH:
		cart.mapper.Write(area, memorymap.Normalise(addr, area), data)
	case memorymap.IO1, memorymap.IO2:
		cart.io.Store(addr, data)
	}
}

// Peek is like Read() but without side effects.
func (cart *Cartridge) Peek(area memorymap.Area, addr uint16) uint8 {
	switch area {
	case memorymap.ROML, memorymap.ROMH:
		return cart.mapper.Peek(area, memorymap.Normalise(addr, area))
	case memorymap.IO1, memorymap.IO2:
		return cart.io.Peek(addr)
	}
	return 0
}

// Dump writes a description of the cartridge state to the io.Writer.
func (cart *Cartridge) Dump(w io.Writer) {
	if !cart.IsEjected() {
		fmt.Fprintf(w, "%s (%s)\n", cart.ShortFilename(), cart.mapper.ID())
		fmt.Fprintf(w, "config: %s\n", cart.mapper.Config())
	}
	cart.mapper.Dump(w)
}

// GetBanks returns the bank information for the ROML and ROMH windows.
func (cart *Cartridge) GetBanks() [2]mapper.BankInfo {
	var ram bool
	if r := cart.GetRAMbus(); r != nil {
		for _, c := range r.GetRAM() {
			ram = ram || c.Mapped
		}
	}
	return mapper.GetBanks(*cart.mapper.Config(), ram)
}

// CopyBanks returns copies of all the banks in the cartridge.
func (cart *Cartridge) CopyBanks() []banks.Content {
	return cart.mapper.CopyBanks()
}

// GetRAMbus returns the cartridge RAM bus or nil if the cartridge has no
// RAM.
func (cart *Cartridge) GetRAMbus() mapper.CartRAMbus {
	if r, ok := cart.mapper.(mapper.CartRAMbus); ok {
		return r
	}
	return nil
}

var cartridgeVersion = snapshot.Version{Major: 0, Minor: 0}

const cartridgeModule = "CARTRIDGE"

// WriteModule writes the expansion port module followed by the module of the
// attached cartridge.
func (cart *Cartridge) WriteModule(s *snapshot.Snapshot) error {
	m, err := s.CreateModule(cartridgeModule, cartridgeVersion)
	if err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}
	defer m.Discard()

	cfg := cart.mapper.Config()

	for _, t := range []string{cart.mapper.ID(), cart.Filename, cart.Hash} {
		if err := m.WriteText(t); err != nil {
			return fmt.Errorf("cartridge: %w", err)
		}
	}
	for _, b := range []uint8{uint8(cfg.Mode), uint8(cfg.Bank), uint8(cfg.Flags())} {
		if err := m.WriteByte(b); err != nil {
			return fmt.Errorf("cartridge: %w", err)
		}
	}

	if err := m.Close(); err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	return cart.mapper.WriteModule(s)
}

// ReadModule restores the expansion port from the snapshot. The cartridge is
// recreated from the mapping ID in the snapshot and replaces any cartridge
// that is currently attached.
//
// If an error is returned the expansion port is unchanged.
func (cart *Cartridge) ReadModule(s *snapshot.Snapshot) error {
	m, err := s.OpenModule(cartridgeModule)
	if err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}
	defer m.Close()

	if err := snapshot.CheckVersion(m.Version, cartridgeVersion); err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	// mapping ID, filename and hash
	var text [3]string
	for i := range text {
		text[i], err = m.ReadText()
		if err != nil {
			return fmt.Errorf("cartridge: %w", err)
		}
	}

	// mode, bank and flags
	var cfg [3]uint8
	for i := range cfg {
		cfg[i], err = m.ReadByte()
		if err != nil {
			return fmt.Errorf("cartridge: %w", err)
		}
	}

	id := text[0]

	if id == ejectedID {
		cart.Detach()
		cart.env.Notify(notifications.NotifySnapshotRestored)
		return nil
	}

	reg, err := lookupID(id)
	if err != nil {
		return fmt.Errorf("cartridge: %w: %s", ErrSnapshotMapping, id)
	}

	nm := reg.create(cart.env)
	nm.Plumb(cart.env, cart.host)
	if err := nm.ReadModule(s); err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}
	nm.Config().Reconfigure(memorymap.Mode(cfg[0]), int(cfg[1]), mapper.Flags(cfg[2]))

	// swap the new cartridge in. if the new cartridge cannot be inserted
	// then the previous cartridge is put back
	prev := cart.mapper
	cart.release()
	if err := cart.insert(nm); err != nil {
		if prev.ID() != ejectedID {
			if rerr := cart.insert(prev); rerr != nil {
				logger.Log(cart.env, "cartridge", rerr)
			}
		}
		return fmt.Errorf("cartridge: %s: %w", id, err)
	}

	cart.Filename = text[1]
	cart.Hash = text[2]

	cart.env.Notify(notifications.NotifySnapshotRestored)

	return nil
}
