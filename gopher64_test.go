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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher64/test"
)

// run the command line through the parser and return the output
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out strings.Builder

	cli := &CLI{}
	cli.Globals.Output = &out

	parser, err := newParser(cli)
	test.DemandSuccess(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	err = ctx.Run(&cli.Globals)
	return out.String(), err
}

func turtleImage(t *testing.T, dir string) string {
	t.Helper()

	data := make([]uint8, 0x4000)
	for i := range data {
		data[i] = 0xc0 + uint8(i>>13)
	}
	fn := filepath.Join(dir, "game.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestMappings(t *testing.T) {
	t.Setenv("GOPHER64_RESOURCES", t.TempDir())

	out, err := run(t, "mappings")
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.ExpectEquality(t, len(lines), 6)
}

func TestCrtAndInfo(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOPHER64_RESOURCES", dir)

	bin := turtleImage(t, dir)

	out, err := run(t, "crt", bin, "--mapping", "turtle")
	test.DemandSuccess(t, err)
	crtFile := filepath.Join(dir, "game.crt")
	test.ExpectEquality(t, out, crtFile+" written\n")

	out, err = run(t, "info", crtFile)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(out, "CRT: GAME [type"))
	test.ExpectSuccess(t, strings.Contains(out, "game [TURTLE]"))

	// the binary image needs no container to be understood
	out, err = run(t, "info", bin, "--mapping", "TURTLE")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, strings.HasPrefix(out, "CRT:"))
	test.ExpectSuccess(t, strings.Contains(out, "game [TURTLE]"))
}

func TestCrtFailure(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOPHER64_RESOURCES", dir)

	bin := turtleImage(t, dir)

	// mapping is required
	_, err := run(t, "crt", bin)
	test.ExpectFailure(t, err)

	_, err = run(t, "crt", bin, "--mapping", "NOSUCH")
	test.ExpectFailure(t, err)

	_, err = os.Stat(filepath.Join(dir, "game.crt"))
	test.ExpectFailure(t, err)
}

func TestSnapshotRestore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOPHER64_RESOURCES", dir)

	bin := turtleImage(t, dir)
	snap := filepath.Join(dir, "game.snap")

	_, err := run(t, "snapshot", bin, snap, "--mapping", "TURTLE")
	test.DemandSuccess(t, err)

	out, err := run(t, "restore", snap)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "C64"))

	// turtle has no freeze button
	_, err = run(t, "snapshot", bin, snap, "--mapping", "TURTLE", "--freeze")
	test.ExpectFailure(t, err)
}

func TestMonitorScript(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOPHER64_RESOURCES", dir)

	bin := turtleImage(t, dir)
	script := filepath.Join(dir, "script")
	test.DemandSuccess(t, os.WriteFile(script, []byte("peek $8000\nquit\n"), 0o600))

	out, err := run(t, "monitor", bin, "--mapping", "TURTLE", "--script", script)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "c0"))
}

func TestUnknownCommand(t *testing.T) {
	_, err := run(t, "nosuchcommand")
	test.ExpectFailure(t, err)
}

func TestPerf(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOPHER64_RESOURCES", dir)

	bin := turtleImage(t, dir)

	out, err := run(t, "perf", bin, "--mapping", "TURTLE", "--duration", "20ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "accesses/sec"))

	_, err = run(t, "perf", "--profile", "trace")
	test.ExpectFailure(t, err)
}
