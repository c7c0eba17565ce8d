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

package crt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Signature is the first 16 bytes of every CRT file.
const Signature = "C64 CARTRIDGE   "

// ChipSignature is the first 4 bytes of every CHIP packet.
const ChipSignature = "CHIP"

// HeaderLength is the length of a CRT header as written by WriteHeader().
const HeaderLength = 0x40

// ChipHeaderLength is the length of the header of a CHIP packet.
const ChipHeaderLength = 0x10

// Version is the CRT version written by WriteHeader().
const Version = 0x0100

// Sentinel errors returned by the read functions.
var (
	ErrSignature = errors.New("bad signature")
	ErrTruncated = errors.New("truncated data")
)

// Header is the CRT file header.
type Header struct {
	Length       uint32
	Version      uint16
	HardwareType uint16
	ExROM        uint8
	Game         uint8
	Revision     uint8
	Name         string
}

func (h Header) String() string {
	return fmt.Sprintf("%s [type %d, v%d.%d, EXROM %d, GAME %d]", h.Name, h.HardwareType, h.Version>>8, h.Version&0xff, h.ExROM, h.Game)
}

// ChipType is the type of memory in a CHIP packet.
type ChipType uint16

// List of valid ChipType values.
const (
	ChipROM ChipType = iota
	ChipRAM
	ChipFlash
	ChipEEPROM
)

func (t ChipType) String() string {
	switch t {
	case ChipROM:
		return "ROM"
	case ChipRAM:
		return "RAM"
	case ChipFlash:
		return "Flash"
	case ChipEEPROM:
		return "EEPROM"
	}
	return "unknown"
}

// Chip is a single CHIP packet.
type Chip struct {
	Type  ChipType
	Bank  uint16
	Start uint16
	Size  uint16
	Data  []uint8
}

func (c Chip) String() string {
	return fmt.Sprintf("%s bank %d at $%04X (%d bytes)", c.Type, c.Bank, c.Start, c.Size)
}

// Sniff returns true if the data looks like a CRT file.
func Sniff(data []uint8) bool {
	return bytes.HasPrefix(data, []byte(Signature))
}

// read exactly len(b) bytes. a clean end of file is returned as io.EOF and
// a partial read as ErrTruncated
func readFull(r io.Reader, b []uint8) error {
	_, err := io.ReadFull(r, b)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// ReadHeader reads the CRT header from the io.Reader. On return, the
// io.Reader will be positioned at the first CHIP packet.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header

	b := make([]uint8, HeaderLength)
	if err := readFull(r, b); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrTruncated
		}
		return h, fmt.Errorf("crt: header: %w", err)
	}

	if string(b[:len(Signature)]) != Signature {
		return h, fmt.Errorf("crt: header: %w", ErrSignature)
	}

	h.Length = binary.BigEndian.Uint32(b[0x10:])
	h.Version = binary.BigEndian.Uint16(b[0x14:])
	h.HardwareType = binary.BigEndian.Uint16(b[0x16:])
	h.ExROM = b[0x18]
	h.Game = b[0x19]
	h.Revision = b[0x1a]
	h.Name = strings.TrimRight(string(b[0x20:0x40]), "\x00")

	// some files have a longer header than the standard. skip any
	// additional bytes. headers shorter than the standard are treated as
	// though they were the standard length
	if h.Length > HeaderLength {
		n, err := io.CopyN(io.Discard, r, int64(h.Length-HeaderLength))
		if err != nil || n != int64(h.Length-HeaderLength) {
			return h, fmt.Errorf("crt: header: %w", ErrTruncated)
		}
	}

	return h, nil
}

// ReadChip reads the next CHIP packet from the io.Reader. Returns io.EOF if
// there are no more packets.
func ReadChip(r io.Reader) (Chip, error) {
	var c Chip

	b := make([]uint8, ChipHeaderLength)
	if err := readFull(r, b); err != nil {
		if errors.Is(err, io.EOF) {
			return c, io.EOF
		}
		return c, fmt.Errorf("crt: chip: %w", err)
	}

	if string(b[:len(ChipSignature)]) != ChipSignature {
		return c, fmt.Errorf("crt: chip: %w", ErrSignature)
	}

	length := binary.BigEndian.Uint32(b[0x04:])
	c.Type = ChipType(binary.BigEndian.Uint16(b[0x08:]))
	c.Bank = binary.BigEndian.Uint16(b[0x0a:])
	c.Start = binary.BigEndian.Uint16(b[0x0c:])
	c.Size = binary.BigEndian.Uint16(b[0x0e:])

	c.Data = make([]uint8, c.Size)
	if err := readFull(r, c.Data); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrTruncated
		}
		return c, fmt.Errorf("crt: chip: %w", err)
	}

	// skip padding in packets that are longer than the image
	if length > uint32(c.Size)+ChipHeaderLength {
		pad := int64(length - uint32(c.Size) - ChipHeaderLength)
		n, err := io.CopyN(io.Discard, r, pad)
		if err != nil || n != pad {
			return c, fmt.Errorf("crt: chip: %w", ErrTruncated)
		}
	}

	return c, nil
}

// WriteHeader writes the CRT header to the io.Writer. The Length and Version
// fields of the Header are ignored.
func WriteHeader(w io.Writer, h Header) error {
	b := make([]uint8, HeaderLength)
	copy(b, Signature)
	binary.BigEndian.PutUint32(b[0x10:], HeaderLength)
	binary.BigEndian.PutUint16(b[0x14:], Version)
	binary.BigEndian.PutUint16(b[0x16:], h.HardwareType)
	b[0x18] = h.ExROM
	b[0x19] = h.Game
	b[0x1a] = h.Revision

	name := h.Name
	if len(name) > 0x20 {
		name = name[:0x20]
	}
	copy(b[0x20:], name)

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("crt: header: %w", err)
	}
	return nil
}

// WriteChip writes a CHIP packet to the io.Writer. The Size field of the Chip
// is ignored and the length of the Data field is used instead.
func WriteChip(w io.Writer, c Chip) error {
	if len(c.Data) > 0xffff {
		return fmt.Errorf("crt: chip: image too large (%d bytes)", len(c.Data))
	}

	b := make([]uint8, ChipHeaderLength)
	copy(b, ChipSignature)
	binary.BigEndian.PutUint32(b[0x04:], uint32(len(c.Data)+ChipHeaderLength))
	binary.BigEndian.PutUint16(b[0x08:], uint16(c.Type))
	binary.BigEndian.PutUint16(b[0x0a:], c.Bank)
	binary.BigEndian.PutUint16(b[0x0c:], c.Start)
	binary.BigEndian.PutUint16(b[0x0e:], uint16(len(c.Data)))

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("crt: chip: %w", err)
	}
	if _, err := w.Write(c.Data); err != nil {
		return fmt.Errorf("crt: chip: %w", err)
	}
	return nil
}
