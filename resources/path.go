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

package resources

import (
	"os"
	"path/filepath"
)

// the portable resource path is used in preference to the user's
// configuration directory if it exists in the current working directory
const portablePath = ".gopher64"

// name of the resource directory in the user's configuration directory
const configPath = "gopher64"

// environment variable that overrides the resource path
const envPath = "GOPHER64_RESOURCES"

func checkPortable() bool {
	info, err := os.Stat(portablePath)
	return err == nil && info.IsDir()
}

func resourcePath() (string, error) {
	if p, ok := os.LookupEnv(envPath); ok && p != "" {
		return p, nil
	}
	if checkPortable() {
		return portablePath, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, configPath), nil
}
