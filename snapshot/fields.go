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

import "fmt"

// Field is a single value in a module. Use the Byte(), Bool(), Word(),
// DWord() and Array() functions to create a Field.
type Field interface {
	Name() string

	// the module version the field first appeared in
	Since() Version

	write(m *Module) error
	read(m *Module) error
	reset()
}

type field struct {
	name  string
	since Version
}

func (f field) Name() string {
	return f.name
}

func (f field) Since() Version {
	return f.since
}

type byteField struct {
	field
	p   *uint8
	def uint8
}

// Byte creates a Field for a uint8 value.
func Byte(name string, p *uint8, since Version, def uint8) Field {
	return &byteField{field: field{name: name, since: since}, p: p, def: def}
}

func (f *byteField) write(m *Module) error {
	return m.WriteByte(*f.p)
}

func (f *byteField) read(m *Module) (err error) {
	*f.p, err = m.ReadByte()
	return err
}

func (f *byteField) reset() {
	*f.p = f.def
}

type boolField struct {
	field
	p   *bool
	def bool
}

// Bool creates a Field for a boolean value. The value is stored as a single
// byte.
func Bool(name string, p *bool, since Version, def bool) Field {
	return &boolField{field: field{name: name, since: since}, p: p, def: def}
}

func (f *boolField) write(m *Module) error {
	return m.WriteBool(*f.p)
}

func (f *boolField) read(m *Module) (err error) {
	*f.p, err = m.ReadBool()
	return err
}

func (f *boolField) reset() {
	*f.p = f.def
}

type wordField struct {
	field
	p   *uint16
	def uint16
}

// Word creates a Field for a uint16 value.
func Word(name string, p *uint16, since Version, def uint16) Field {
	return &wordField{field: field{name: name, since: since}, p: p, def: def}
}

func (f *wordField) write(m *Module) error {
	return m.WriteWord(*f.p)
}

func (f *wordField) read(m *Module) (err error) {
	*f.p, err = m.ReadWord()
	return err
}

func (f *wordField) reset() {
	*f.p = f.def
}

type dwordField struct {
	field
	p   *uint32
	def uint32
}

// DWord creates a Field for a uint32 value.
func DWord(name string, p *uint32, since Version, def uint32) Field {
	return &dwordField{field: field{name: name, since: since}, p: p, def: def}
}

func (f *dwordField) write(m *Module) error {
	return m.WriteDWord(*f.p)
}

func (f *dwordField) read(m *Module) (err error) {
	*f.p, err = m.ReadDWord()
	return err
}

func (f *dwordField) reset() {
	*f.p = f.def
}

type arrayField struct {
	field
	p []uint8
}

// Array creates a Field for a byte array. The default for an array is all
// zeroes.
func Array(name string, p []uint8, since Version) Field {
	return &arrayField{field: field{name: name, since: since}, p: p}
}

func (f *arrayField) write(m *Module) error {
	return m.WriteArray(f.p)
}

func (f *arrayField) read(m *Module) error {
	return m.ReadArray(f.p)
}

func (f *arrayField) reset() {
	clear(f.p)
}

// WriteFields writes every field to the module in order.
func WriteFields(m *Module, fields []Field) error {
	for _, f := range fields {
		if err := f.write(m); err != nil {
			return fmt.Errorf("%s: %w", f.Name(), err)
		}
	}
	return nil
}

// ReadFields reads every field from the module in order. Fields that are
// newer than the module's version are set to their default value.
func ReadFields(m *Module, fields []Field) error {
	for _, f := range fields {
		if m.Version.Less(f.Since()) {
			f.reset()
			continue
		}
		if err := f.read(m); err != nil {
			return fmt.Errorf("%s: %w", f.Name(), err)
		}
	}
	return nil
}
