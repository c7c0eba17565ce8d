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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in the preferences file
const separator = " :: "

// ErrNoPrefsFile is returned by Load() when the preferences file does not
// exist.
var ErrNoPrefsFile = errors.New("no prefs file")

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk. The key
// must be unique to the Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Reset all entries to their default values.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// read the key/value pairs in the prefs file. a missing file is reported
// with ErrNoPrefsFile
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("prefs: %w", ErrNoPrefsFile)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	vals := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l := scanner.Text()
		if l == WarningBoilerPlate || len(strings.TrimSpace(l)) == 0 {
			continue
		}
		k, v, ok := strings.Cut(l, separator)
		if !ok {
			continue
		}
		vals[k] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return vals, nil
}

// Save current preference values to disk. Values in the file that are not
// known to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	vals, err := dsk.read()
	if err != nil && !errors.Is(err, ErrNoPrefsFile) {
		return err
	}
	if vals == nil {
		vals = make(map[string]string)
	}

	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, vals[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values on the current command line
// stack override the values in the file.
//
// If saveOnFail is true and the file does not exist then the current values
// are saved and no error is returned.
func (dsk *Disk) Load(saveOnFail bool) error {
	vals, err := dsk.read()
	if err != nil {
		if !errors.Is(err, ErrNoPrefsFile) || !saveOnFail {
			if errors.Is(err, ErrNoPrefsFile) {
				dsk.applyCommandLine()
			}
			return err
		}
		dsk.applyCommandLine()
		return dsk.Save()
	}

	for k, v := range vals {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	dsk.applyCommandLine()

	return nil
}

// values from the command line stack are applied but never saved unless
// Save() is called explicitly
func (dsk *Disk) applyCommandLine() {
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			_ = p.Set(v)
		}
	}
}
