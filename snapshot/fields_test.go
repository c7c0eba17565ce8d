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

package snapshot_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher64/snapshot"
	"github.com/jetsetilly/gopher64/test"
)

type state struct {
	active   bool
	bank     uint16
	ram      []uint8
	regvalue uint8
}

func (s *state) fields() []snapshot.Field {
	return []snapshot.Field{
		snapshot.Bool("active", &s.active, snapshot.Version{}, true),
		snapshot.Word("bank", &s.bank, snapshot.Version{}, 0),
		snapshot.Array("RAM", s.ram, snapshot.Version{}),
		snapshot.Byte("regvalue", &s.regvalue, snapshot.Version{Minor: 1}, 0x99),
	}
}

func TestFields(t *testing.T) {
	a := &state{active: false, bank: 3, ram: []uint8{1, 2, 3, 4}, regvalue: 0x22}

	s := snapshot.NewSnapshot("C64", "")
	m, err := s.CreateModule("FIELDS", snapshot.Version{Minor: 1})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, snapshot.WriteFields(m, a.fields()))
	test.ExpectSuccess(t, m.Close())

	b := &state{ram: make([]uint8, 4)}
	m, err = s.OpenModule("FIELDS")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, snapshot.ReadFields(m, b.fields()))
	test.ExpectSuccess(t, m.Close())

	test.ExpectEquality(t, b.active, a.active)
	test.ExpectEquality(t, b.bank, a.bank)
	test.ExpectEquality(t, string(b.ram), string(a.ram))
	test.ExpectEquality(t, b.regvalue, a.regvalue)
}

func TestFieldsOlderVersion(t *testing.T) {
	a := &state{active: false, bank: 1, ram: []uint8{5, 6, 7, 8}}

	// write a version 0.0 module. the regvalue field did not exist in 0.0
	s := snapshot.NewSnapshot("C64", "")
	m, err := s.CreateModule("FIELDS", snapshot.Version{})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, snapshot.WriteFields(m, a.fields()[:3]))
	test.ExpectSuccess(t, m.Close())

	b := &state{ram: make([]uint8, 4), regvalue: 0x12}
	m, err = s.OpenModule("FIELDS")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, snapshot.ReadFields(m, b.fields()))
	test.ExpectSuccess(t, m.Close())

	test.ExpectEquality(t, b.bank, uint16(1))
	test.ExpectEquality(t, b.regvalue, uint8(0x99))
}

func TestFieldsTruncated(t *testing.T) {
	s := snapshot.NewSnapshot("C64", "")
	m, err := s.CreateModule("FIELDS", snapshot.Version{Minor: 1})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, m.WriteBool(true))
	test.ExpectSuccess(t, m.Close())

	b := &state{ram: make([]uint8, 4)}
	m, err = s.OpenModule("FIELDS")
	test.DemandSuccess(t, err)
	defer m.Close()
	err = snapshot.ReadFields(m, b.fields())
	test.ExpectSuccess(t, errors.Is(err, snapshot.ErrTruncated))
}
