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

package cartridgeloader_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher64/cartridgeloader"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/crt"
	"github.com/jetsetilly/gopher64/test"
)

func TestMappingFromExtension(t *testing.T) {
	data := make([]byte, 0x4000)

	ld, err := cartridgeloader.NewLoaderFromData("turtle.turtle", data, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.Mapping, "TURTLE")
	test.ExpectFailure(t, ld.IsContainer)

	ld, err = cartridgeloader.NewLoaderFromData("turtle.bin", data, "auto")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ld.IsAuto())

	// the mapping argument overrides the extension
	ld, err = cartridgeloader.NewLoaderFromData("turtle.bin", data, "fc1")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.Mapping, "FC1")

	// unknown extensions are treated as AUTO
	ld, err = cartridgeloader.NewLoaderFromData("turtle.xyz", data, "")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ld.IsAuto())
	test.ExpectEquality(t, ld.ShortName(), "turtle")
}

func TestContainerSniffing(t *testing.T) {
	b := &bytes.Buffer{}
	test.DemandSuccess(t, crt.WriteHeader(b, crt.Header{HardwareType: 47, Name: "SNAPSHOT 64"}))

	// the signature is found even with a misleading extension
	ld, err := cartridgeloader.NewLoaderFromData("ss64.bin", b.Bytes(), "")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ld.IsContainer)

	// a .crt file is always treated as a container
	ld, err = cartridgeloader.NewLoaderFromData("ss64.crt", []byte{0x00}, "")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ld.IsContainer)
}

func TestReader(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromData("test.bin", []byte{1, 2, 3, 4}, "")
	test.DemandSuccess(t, err)

	d, err := io.ReadAll(&ld)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(d), 4)

	d, err = io.ReadAll(&ld)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(d), 0)

	ld.Reset()
	d, err = io.ReadAll(&ld)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d[3], uint8(4))
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.ar")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 0x8000), 0o600))

	ld, err := cartridgeloader.NewLoader(fn, "", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.Mapping, "AR")
	test.ExpectEquality(t, ld.Size(), 0x8000)

	_, err = cartridgeloader.NewLoader(fn, "", ld.Hash)
	test.ExpectSuccess(t, err)

	_, err = cartridgeloader.NewLoader(fn, "", "0000")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrHash))

	_, err = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"), "", "")
	test.ExpectFailure(t, err)
}

func TestEmpty(t *testing.T) {
	_, err := cartridgeloader.NewLoaderFromData("empty.bin", nil, "")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrNoData))
}

func TestFileInArchive(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "carts.zip")

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("utilities/pagefox.pagefox")
	test.DemandSuccess(t, err)
	_, err = w.Write(make([]byte, 0x10000))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	ld, err := cartridgeloader.NewLoader(filepath.Join(fn, "utilities", "pagefox.pagefox"), "", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.Mapping, "PAGEFOX")
	test.ExpectEquality(t, ld.Size(), 0x10000)

	_, err = cartridgeloader.NewLoader(filepath.Join(fn, "utilities", "missing.bin"), "", "")
	test.ExpectFailure(t, err)
}
