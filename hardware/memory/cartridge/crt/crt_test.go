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

package crt_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/crt"
	"github.com/jetsetilly/gopher64/test"
)

func TestReadWrite(t *testing.T) {
	b := &bytes.Buffer{}

	h := crt.Header{HardwareType: 53, ExROM: 0, Game: 0, Name: "PAGEFOX"}
	test.DemandSuccess(t, crt.WriteHeader(b, h))
	test.ExpectEquality(t, b.Len(), crt.HeaderLength)
	test.ExpectSuccess(t, crt.Sniff(b.Bytes()))

	for bank := 0; bank < 4; bank++ {
		data := bytes.Repeat([]uint8{uint8(bank)}, 0x4000)
		test.DemandSuccess(t, crt.WriteChip(b, crt.Chip{Type: crt.ChipROM, Bank: uint16(bank), Start: 0x8000, Data: data}))
	}

	r := bytes.NewReader(b.Bytes())
	rh, err := crt.ReadHeader(r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rh.HardwareType, uint16(53))
	test.ExpectEquality(t, rh.Name, "PAGEFOX")
	test.ExpectEquality(t, rh.Version, uint16(crt.Version))
	test.ExpectEquality(t, rh.Length, uint32(crt.HeaderLength))

	var n int
	for {
		c, err := crt.ReadChip(r)
		if errors.Is(err, io.EOF) {
			break
		}
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, c.Bank, uint16(n))
		test.ExpectEquality(t, c.Start, uint16(0x8000))
		test.ExpectEquality(t, c.Size, uint16(0x4000))
		test.ExpectEquality(t, c.Data[0x1234], uint8(n))
		n++
	}
	test.ExpectEquality(t, n, 4)
}

func TestBadSignature(t *testing.T) {
	data := make([]uint8, crt.HeaderLength)
	copy(data, "C64 CARTRIDGE  X")
	_, err := crt.ReadHeader(bytes.NewReader(data))
	test.ExpectSuccess(t, errors.Is(err, crt.ErrSignature))
	test.ExpectFailure(t, crt.Sniff(data))

	b := &bytes.Buffer{}
	test.DemandSuccess(t, crt.WriteHeader(b, crt.Header{HardwareType: 1}))
	b.WriteString("CHOP")
	b.Write(make([]uint8, 12))
	r := bytes.NewReader(b.Bytes())
	_, err = crt.ReadHeader(r)
	test.DemandSuccess(t, err)
	_, err = crt.ReadChip(r)
	test.ExpectSuccess(t, errors.Is(err, crt.ErrSignature))
}

func TestTruncated(t *testing.T) {
	b := &bytes.Buffer{}
	test.DemandSuccess(t, crt.WriteHeader(b, crt.Header{HardwareType: 1}))

	// truncated header
	_, err := crt.ReadHeader(bytes.NewReader(b.Bytes()[:0x30]))
	test.ExpectSuccess(t, errors.Is(err, crt.ErrTruncated))

	// truncated chip data
	test.DemandSuccess(t, crt.WriteChip(b, crt.Chip{Bank: 0, Start: 0x8000, Data: make([]uint8, 0x2000)}))
	r := bytes.NewReader(b.Bytes()[:b.Len()-1])
	_, err = crt.ReadHeader(r)
	test.DemandSuccess(t, err)
	_, err = crt.ReadChip(r)
	test.ExpectSuccess(t, errors.Is(err, crt.ErrTruncated))
}

func TestLongHeader(t *testing.T) {
	b := &bytes.Buffer{}
	test.DemandSuccess(t, crt.WriteHeader(b, crt.Header{HardwareType: 47, Name: "SS64"}))

	// patch header length to include 16 extra bytes
	data := b.Bytes()
	data[0x13] = 0x50
	data = append(data, make([]uint8, 0x10)...)

	cb := &bytes.Buffer{}
	test.DemandSuccess(t, crt.WriteChip(cb, crt.Chip{Start: 0x8000, Data: make([]uint8, 0x1000)}))
	data = append(data, cb.Bytes()...)

	r := bytes.NewReader(data)
	h, err := crt.ReadHeader(r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Length, uint32(0x50))

	c, err := crt.ReadChip(r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Size, uint16(0x1000))
}
