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
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Magic is the first sequence of bytes in every snapshot file.
const Magic = "GOPHER64 Snapshot\x1a"

// FileVersion is the version of the snapshot file format written by this
// package.
var FileVersion = Version{Major: 1, Minor: 0}

// lengths of the fixed length strings in the file header
const (
	machineNameLength = 16
	applicationLength = 32
)

// Sentinel errors for snapshot files.
var (
	ErrMagic          = errors.New("not a snapshot file")
	ErrModuleNotFound = errors.New("module not found")
)

// Snapshot is an ordered list of modules.
type Snapshot struct {
	Machine     string
	Application string
	Version     Version

	modules []*Module
}

// NewSnapshot is the preferred method of initialisation for the Snapshot
// type.
func NewSnapshot(machine string, application string) *Snapshot {
	return &Snapshot{
		Machine:     machine,
		Application: application,
		Version:     FileVersion,
	}
}

func (s *Snapshot) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%s snapshot %s (%s)\n", s.Machine, s.Version, s.Application))
	for _, m := range s.modules {
		b.WriteString(fmt.Sprintf("  %s\n", m))
	}
	return b.String()
}

// Modules returns the names of the modules in the snapshot in the order they
// were added.
func (s *Snapshot) Modules() []string {
	n := make([]string, len(s.modules))
	for i, m := range s.modules {
		n[i] = m.Name
	}
	return n
}

// CreateModule creates a new module for writing. The module will be added to
// the snapshot when it is closed.
func (s *Snapshot) CreateModule(name string, version Version) (*Module, error) {
	if len(name) == 0 || len(name) > moduleNameLength {
		return nil, fmt.Errorf("snapshot: illegal module name (%s)", name)
	}
	return &Module{
		Name:     name,
		Version:  version,
		snapshot: s,
	}, nil
}

// OpenModule opens the named module for reading. Returns ErrModuleNotFound if
// there is no module with that name.
func (s *Snapshot) OpenModule(name string) (*Module, error) {
	for _, m := range s.modules {
		if m.Name == name {
			return &Module{
				Name:    m.Name,
				Version: m.Version,
				data:    m.data,
			}, nil
		}
	}
	return nil, fmt.Errorf("snapshot: %s: %w", name, ErrModuleNotFound)
}

func (s *Snapshot) add(m *Module) {
	c := &Module{
		Name:    m.Name,
		Version: m.Version,
		data:    m.data,
		closed:  true,
	}
	for i, o := range s.modules {
		if o.Name == m.Name {
			s.modules[i] = c
			return
		}
	}
	s.modules = append(s.modules, c)
}

func fixedString(s string, n int) []uint8 {
	b := make([]uint8, n)
	copy(b, s)
	return b
}

func trimString(b []uint8) string {
	return strings.TrimRight(string(b), "\x00")
}

// WriteTo writes the snapshot to the io.Writer. Implements the io.WriterTo
// interface.
func (s *Snapshot) WriteTo(w io.Writer) (int64, error) {
	var n int64

	write := func(b []uint8) error {
		c, err := w.Write(b)
		n += int64(c)
		return err
	}

	hdr := []uint8(Magic)
	hdr = append(hdr, s.Version.Major, s.Version.Minor)
	hdr = append(hdr, fixedString(s.Machine, machineNameLength)...)
	hdr = append(hdr, fixedString(s.Application, applicationLength)...)
	if err := write(hdr); err != nil {
		return n, fmt.Errorf("snapshot: %w", err)
	}

	for _, m := range s.modules {
		mh := fixedString(m.Name, moduleNameLength)
		mh = append(mh, m.Version.Major, m.Version.Minor)
		mh = binary.LittleEndian.AppendUint32(mh, uint32(m.Size()))
		if err := write(mh); err != nil {
			return n, fmt.Errorf("snapshot: %s: %w", m.Name, err)
		}
		if err := write(m.data); err != nil {
			return n, fmt.Errorf("snapshot: %s: %w", m.Name, err)
		}
	}

	return n, nil
}

// Read a snapshot from the io.Reader.
func Read(r io.Reader) (*Snapshot, error) {
	full := func(b []uint8) error {
		_, err := io.ReadFull(r, b)
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}

	magic := make([]uint8, len(Magic))
	if err := full(magic); err != nil || string(magic) != Magic {
		return nil, fmt.Errorf("snapshot: %w", ErrMagic)
	}

	hdr := make([]uint8, 2+machineNameLength+applicationLength)
	if err := full(hdr); err != nil {
		return nil, fmt.Errorf("snapshot: %w", ErrTruncated)
	}

	s := &Snapshot{}
	s.Version = Version{Major: hdr[0], Minor: hdr[1]}
	s.Machine = trimString(hdr[2 : 2+machineNameLength])
	s.Application = trimString(hdr[2+machineNameLength:])

	if err := CheckVersion(s.Version, FileVersion); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	for {
		mh := make([]uint8, moduleHeaderLength)
		if err := full(mh); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("snapshot: %w", err)
		}

		m := &Module{
			Name:    trimString(mh[:moduleNameLength]),
			Version: Version{Major: mh[moduleNameLength], Minor: mh[moduleNameLength+1]},
			closed:  true,
		}

		size := binary.LittleEndian.Uint32(mh[moduleNameLength+2:])
		if size < moduleHeaderLength {
			return nil, fmt.Errorf("snapshot: %s: %w", m.Name, ErrTruncated)
		}

		// the size is not trusted. the data is read up to the claimed size
		// and a short read means the file is truncated or corrupt
		n := int64(size - moduleHeaderLength)
		data, err := io.ReadAll(io.LimitReader(r, n))
		if err != nil {
			return nil, fmt.Errorf("snapshot: %s: %w", m.Name, err)
		}
		if int64(len(data)) != n {
			return nil, fmt.Errorf("snapshot: %s: %w", m.Name, ErrTruncated)
		}
		m.data = data

		s.modules = append(s.modules, m)
	}

	return s, nil
}

// Save the snapshot to the named file.
func (s *Snapshot) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := s.WriteTo(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Load a snapshot from the named file.
func Load(filename string) (*Snapshot, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}
