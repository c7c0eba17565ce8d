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

package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher64/archivefs"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/crt"
)

// AutoMapping indicates that the mapping should be decided from the data.
const AutoMapping = "AUTO"

// ErrHash is returned when the data does not match the expected hash.
var ErrHash = errors.New("unexpected hash value")

// ErrNoData is returned when the loaded data is empty.
var ErrNoData = errors.New("no data")

// FileExtensions maps recognised file extensions to a mapping ID.
var FileExtensions = map[string]string{
	".CRT":     AutoMapping,
	".BIN":     AutoMapping,
	".ROM":     AutoMapping,
	".PRG":     AutoMapping,
	".AR":      "AR",
	".PAGEFOX": "PAGEFOX",
	".TURTLE":  "TURTLE",
	".SS64":    "SS64",
	".FF":      "FF",
	".FC1":     "FC1",
}

// Loader is used to specify the cartridge to use when Attach()ing to the
// expansion port.
type Loader struct {
	// filename of the cartridge data. for loaders created with
	// NewLoaderFromData() this is the name supplied to that function
	Filename string

	// mapping ID or AutoMapping
	Mapping string

	// sha1 of the data
	Hash string

	// copy of the loaded data
	Data []byte

	// data is in the CRT container format
	IsContainer bool

	data *bytes.Reader
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument will be used to set the Mapping field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
//
// The hash argument is optional. If it is not empty then the hash of the
// loaded data must match.
func NewLoader(filename string, mapping string, hash string) (Loader, error) {
	data, err := load(filename)
	if err != nil {
		return Loader{}, fmt.Errorf("cartridgeloader: %w", err)
	}
	return newLoader(filename, data, mapping, hash)
}

// NewLoaderFromData is like NewLoader() but for data that has already been
// loaded. The name is used as though it were a filename when deciding the
// mapping.
func NewLoaderFromData(name string, data []byte, mapping string) (Loader, error) {
	return newLoader(name, bytes.Clone(data), mapping, "")
}

func newLoader(filename string, data []byte, mapping string, hash string) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: %s: %w", filename, ErrNoData)
	}

	ld := Loader{
		Filename: filename,
		Mapping:  AutoMapping,
		Data:     data,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
	}

	if hash != "" && !strings.EqualFold(hash, ld.Hash) {
		return Loader{}, fmt.Errorf("cartridgeloader: %s: %w", filename, ErrHash)
	}

	ext := strings.ToUpper(filepath.Ext(filename))

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping != AutoMapping && mapping != "" {
		ld.Mapping = mapping
	} else if m, ok := FileExtensions[ext]; ok {
		ld.Mapping = m
	}

	// the container format is decided by the data and not by the filename
	// or the mapping argument. a .crt file that does not have the correct
	// signature will fail when it is attached
	ld.IsContainer = crt.Sniff(data) || ext == ".CRT"

	ld.data = bytes.NewReader(ld.Data)

	return ld, nil
}

func (ld Loader) String() string {
	if ld.IsContainer {
		return fmt.Sprintf("%s (crt)", ld.ShortName())
	}
	return fmt.Sprintf("%s (%s)", ld.ShortName(), ld.Mapping)
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	return strings.TrimSuffix(filepath.Base(ld.Filename), filepath.Ext(ld.Filename))
}

// IsAuto returns true if the mapping is to be decided from the data.
func (ld Loader) IsAuto() bool {
	return ld.Mapping == AutoMapping
}

// Reset the read position to the start of the data.
func (ld *Loader) Reset() {
	if ld.data == nil {
		ld.data = bytes.NewReader(ld.Data)
	}
	ld.data.Reset(ld.Data)
}

// Read implements the io.Reader interface.
func (ld *Loader) Read(p []byte) (int, error) {
	if ld.data == nil {
		ld.Reset()
	}
	return ld.data.Read(p)
}

// Seek implements the io.Seeker interface.
func (ld *Loader) Seek(offset int64, whence int) (int64, error) {
	if ld.data == nil {
		ld.Reset()
	}
	return ld.data.Seek(offset, whence)
}

// Size returns the number of bytes in the data.
func (ld Loader) Size() int {
	return len(ld.Data)
}

// load the data from a local file or from the network if the filename has a
// http or https scheme. a local filename can name a file inside a zip archive
func load(filename string) ([]byte, error) {
	if u, err := url.Parse(filename); err == nil {
		switch u.Scheme {
		case "http", "https":
			resp, err := http.Get(filename)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("%s: %s", filename, resp.Status)
			}
			return io.ReadAll(resp.Body)
		}
	}
	return archivefs.ReadFile(filename)
}
