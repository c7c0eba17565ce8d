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

package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrTruncated is returned when a read goes past the end of the data.
var ErrTruncated = errors.New("truncated data")

// ErrClosed is returned when a closed module is accessed.
var ErrClosed = errors.New("module is closed")

// ErrAborted is returned by Close() when an earlier write to the module failed.
var ErrAborted = errors.New("module aborted after failed write")

// the length of a module name and the module header
const (
	moduleNameLength   = 16
	moduleHeaderLength = moduleNameLength + 2 + 4
)

// Module is a single named section of a snapshot.
type Module struct {
	Name    string
	Version Version

	data []uint8
	pos  int

	// for modules created with CreateModule(). the module is added to the
	// snapshot on Close()
	snapshot *Snapshot

	closed bool

	// set when a write fails. a failed module is never added to the snapshot
	failed bool
}

func (m *Module) String() string {
	return fmt.Sprintf("%s %s (%d bytes)", m.Name, m.Version, len(m.data)+moduleHeaderLength)
}

// Size returns the size of the module including the module header.
func (m *Module) Size() int {
	return len(m.data) + moduleHeaderLength
}

// Close the module. If the module was created with CreateModule() it is added
// to the snapshot, replacing any module with the same name. Closing a module
// more than once is allowed.
//
// A module that has had a failed write is discarded and ErrAborted is
// returned.
func (m *Module) Close() error {
	if m.closed {
		return nil
	}
	if m.failed {
		m.Discard()
		return fmt.Errorf("snapshot: %s: %w", m.Name, ErrAborted)
	}
	m.closed = true
	if m.snapshot != nil {
		m.snapshot.add(m)
		m.snapshot = nil
	}
	return nil
}

// Discard closes the module without adding it to the snapshot. It does
// nothing if the module has already been closed, so it is suitable for
// deferring immediately after CreateModule(), with Close() called on success.
func (m *Module) Discard() {
	if m.closed {
		return
	}
	m.closed = true
	m.snapshot = nil
	m.data = nil
}

func (m *Module) write(b ...uint8) error {
	if m.closed || m.snapshot == nil {
		m.failed = true
		return fmt.Errorf("snapshot: %s: %w", m.Name, ErrClosed)
	}
	m.data = append(m.data, b...)
	return nil
}

// WriteByte writes a single byte value to the module.
func (m *Module) WriteByte(v byte) error {
	return m.write(v)
}

// WriteBool writes a boolean value as a single byte.
func (m *Module) WriteBool(v bool) error {
	if v {
		return m.write(1)
	}
	return m.write(0)
}

// WriteWord writes a 16 bit value.
func (m *Module) WriteWord(v uint16) error {
	return m.write(binary.LittleEndian.AppendUint16(nil, v)...)
}

// WriteDWord writes a 32 bit value.
func (m *Module) WriteDWord(v uint32) error {
	return m.write(binary.LittleEndian.AppendUint32(nil, v)...)
}

// WriteArray writes a byte array. The length of the array is not written.
func (m *Module) WriteArray(v []uint8) error {
	return m.write(v...)
}

// WriteText writes a string preceded by its length as a 16 bit value.
func (m *Module) WriteText(v string) error {
	if len(v) > 0xffff {
		m.failed = true
		return fmt.Errorf("snapshot: %s: string too long", m.Name)
	}
	if err := m.WriteWord(uint16(len(v))); err != nil {
		return err
	}
	return m.write([]uint8(v)...)
}

func (m *Module) read(n int) ([]uint8, error) {
	if m.closed {
		return nil, fmt.Errorf("snapshot: %s: %w", m.Name, ErrClosed)
	}
	if m.pos+n > len(m.data) {
		return nil, fmt.Errorf("snapshot: %s: %w", m.Name, ErrTruncated)
	}
	b := m.data[m.pos : m.pos+n]
	m.pos += n
	return b, nil
}

// ReadByte reads a single byte value from the module.
func (m *Module) ReadByte() (byte, error) {
	b, err := m.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool reads a boolean value. Any non-zero value is true.
func (m *Module) ReadBool() (bool, error) {
	v, err := m.ReadByte()
	return v != 0, err
}

// ReadWord reads a 16 bit value.
func (m *Module) ReadWord() (uint16, error) {
	b, err := m.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadDWord reads a 32 bit value.
func (m *Module) ReadDWord() (uint32, error) {
	b, err := m.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadArray fills the byte array with data from the module.
func (m *Module) ReadArray(v []uint8) error {
	b, err := m.read(len(v))
	if err != nil {
		return err
	}
	copy(v, b)
	return nil
}

// ReadText reads a string written by WriteText().
func (m *Module) ReadText() (string, error) {
	n, err := m.ReadWord()
	if err != nil {
		return "", err
	}
	b, err := m.read(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
