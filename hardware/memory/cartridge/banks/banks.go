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

package banks

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher64/assert"
)

// ErrOverflow is returned by Load() when the data does not fit into the
// storage at the requested offset.
var ErrOverflow = errors.New("data overflows storage")

// Banks is a contiguous area of bank-selectable storage.
type Banks struct {
	label    string
	numBanks int
	bankSize int
	writable bool

	bankMask int
	addrMask uint16

	data []uint8
}

// New is the preferred method of initialisation for the Banks type. Both
// numBanks and bankSize must be a power of two. The bankSize can be no
// larger than 64k.
func New(label string, numBanks int, bankSize int, writable bool) *Banks {
	assert.Invariant(assert.PowerOfTwo(numBanks), "banks: %s: number of banks (%d) is not a power of two", label, numBanks)
	assert.Invariant(assert.PowerOfTwo(bankSize), "banks: %s: bank size (%d) is not a power of two", label, bankSize)
	assert.Invariant(bankSize <= 0x10000, "banks: %s: bank size (%d) is too large", label, bankSize)

	return &Banks{
		label:    label,
		numBanks: numBanks,
		bankSize: bankSize,
		writable: writable,
		bankMask: numBanks - 1,
		addrMask: uint16(bankSize - 1),
		data:     make([]uint8, numBanks*bankSize),
	}
}

func (b *Banks) String() string {
	kind := "ROM"
	if b.writable {
		kind = "RAM"
	}
	return fmt.Sprintf("%s: %d x %dk %s", b.label, b.numBanks, b.bankSize/1024, kind)
}

// Label returns the name given to the storage on creation.
func (b *Banks) Label() string {
	return b.label
}

// NumBanks returns the number of banks in the storage.
func (b *Banks) NumBanks() int {
	return b.numBanks
}

// BankSize returns the size of each bank in bytes.
func (b *Banks) BankSize() int {
	return b.bankSize
}

// Size returns the total size of the storage in bytes.
func (b *Banks) Size() int {
	return len(b.data)
}

// Writable returns true if the storage is RAM.
func (b *Banks) Writable() bool {
	return b.writable
}

// Offset returns the index into the storage for the bank and address. Both
// the bank and the address are masked.
func (b *Banks) Offset(bank int, addr uint16) int {
	return (bank&b.bankMask)*b.bankSize + int(addr&b.addrMask)
}

// Read the value at the address in the bank.
func (b *Banks) Read(bank int, addr uint16) uint8 {
	return b.data[b.Offset(bank, addr)]
}

// Write the value at the address in the bank. Returns false if the storage
// is not writable.
func (b *Banks) Write(bank int, addr uint16, data uint8) bool {
	if !b.writable {
		return false
	}
	b.data[b.Offset(bank, addr)] = data
	return true
}

// Poke writes to the storage regardless of whether it is writable. The
// offset is an index into the storage and is masked by the size of the
// storage.
func (b *Banks) Poke(offset int, data uint8) {
	b.data[offset&(len(b.data)-1)] = data
}

// Load copies data into the storage starting at offset. Returns ErrOverflow
// if the data does not fit, in which case the storage is not changed.
func (b *Banks) Load(offset int, data []uint8) error {
	if offset < 0 || offset+len(data) > len(b.data) {
		return fmt.Errorf("%s: %w (%d bytes at offset %#x)", b.label, ErrOverflow, len(data), offset)
	}
	copy(b.data[offset:], data)
	return nil
}

// Data returns the live storage. Changes to the returned slice will change
// the storage.
func (b *Banks) Data() []uint8 {
	return b.data
}

// Bank returns the live storage for the bank. The bank number is masked.
func (b *Banks) Bank(bank int) []uint8 {
	o := (bank & b.bankMask) * b.bankSize
	return b.data[o : o+b.bankSize]
}

// Fill sets every byte in the storage to the value.
func (b *Banks) Fill(value uint8) {
	for i := range b.data {
		b.data[i] = value
	}
}

// Snapshot returns a copy of the storage.
func (b *Banks) Snapshot() *Banks {
	n := *b
	n.data = make([]uint8, len(b.data))
	copy(n.data, b.data)
	return &n
}

// Restore replaces the contents of the storage with data of the same size.
func (b *Banks) Restore(data []uint8) error {
	if len(data) != len(b.data) {
		return fmt.Errorf("%s: restore size mismatch (%d bytes, expected %d)", b.label, len(data), len(b.data))
	}
	copy(b.data, data)
	return nil
}
