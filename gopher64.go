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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jetsetilly/gopher64/cartridgeloader"
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge/crt"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/monitor"
	"github.com/jetsetilly/gopher64/monitor/terminal"
	"github.com/jetsetilly/gopher64/monitor/terminal/colorterm"
	"github.com/jetsetilly/gopher64/monitor/terminal/plainterm"
	"github.com/jetsetilly/gopher64/performance"
	"github.com/jetsetilly/gopher64/prefs"
	"github.com/jetsetilly/gopher64/snapshot"
	"github.com/jetsetilly/gopher64/statsview"
	"github.com/jetsetilly/gopher64/version"
)

// Globals are the flags that apply to every command.
type Globals struct {
	Log       bool   `help:"Echo log entries to stderr."`
	Prefs     string `help:"Preferences for this session only. eg. \"cartridge.collision::LAST; cartridge.quirkwarnings::false\"."`
	Statsview bool   `help:"Launch the statsview server (requires the statsview build tag)."`
	Basic     string `type:"existingfile" help:"BASIC ROM image (8k)."`
	Kernal    string `type:"existingfile" help:"KERNAL ROM image (8k)."`

	Output io.Writer `kong:"-"`
}

// CLI is the command line interface of the gopher64 application.
type CLI struct {
	Globals

	Version  kong.VersionFlag `help:"Show version and exit."`
	Info     InfoCmd          `cmd:"" help:"Show information about a cartridge file."`
	Monitor  MonitorCmd       `cmd:"" help:"Run the interactive monitor."`
	Crt      CrtCmd           `cmd:"" help:"Wrap a binary cartridge image in a CRT container."`
	Snapshot SnapshotCmd      `cmd:"" help:"Attach a cartridge and save a snapshot of the machine."`
	Restore  RestoreCmd       `cmd:"" help:"Restore a snapshot and show the state of the cartridge."`
	Mappings MappingsCmd      `cmd:"" help:"List the supported cartridge mappings."`
	Perf     PerfCmd          `cmd:"" help:"Measure the throughput of the memory bus with a cartridge attached."`
}

// newEmulation creates the environment and memory for a command. The
// session preferences are pushed onto the command line stack before the
// preferences are loaded.
func (g *Globals) newEmulation() (*environment.Environment, *memory.Memory, error) {
	if g.Output == nil {
		g.Output = os.Stdout
	}

	if g.Log {
		logger.SetEcho(os.Stderr, false)
	}

	if g.Statsview {
		if statsview.Available() {
			statsview.Launch(g.Output)
		} else {
			logger.Log(logger.Allow, "gopher64", "statsview not available in this build")
		}
	}

	if g.Prefs != "" {
		prefs.PushCommandLineStack(g.Prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "gopher64", "unused preferences: %s", unused)
			}
		}()
	}

	env, err := environment.NewEnvironment(nil, nil)
	if err != nil {
		return nil, nil, err
	}

	mem := memory.NewMemory(env)
	env.Random.Plumb(mem)

	for _, r := range []struct {
		filename string
		rom      *memory.ROM
	}{
		{g.Basic, mem.BASIC},
		{g.Kernal, mem.KERNAL},
	} {
		if r.filename == "" {
			continue
		}
		data, err := os.ReadFile(r.filename)
		if err != nil {
			return nil, nil, err
		}
		if err := r.rom.Load(data); err != nil {
			return nil, nil, err
		}
	}

	mem.PowerUp()

	return env, mem, nil
}

// attach the cartridge file to the expansion port of the memory.
func attach(mem *memory.Memory, filename string, mapping string) error {
	ld, err := cartridgeloader.NewLoader(filename, strings.ToUpper(mapping), "")
	if err != nil {
		return err
	}
	return mem.Cart.Attach(ld)
}

// InfoCmd shows information about a cartridge file.
type InfoCmd struct {
	Cartridge string `arg:"" type:"existingfile" help:"Cartridge file (binary or CRT)."`
	Mapping   string `default:"AUTO" help:"Cartridge mapping. AUTO decides from the file."`
}

// Run executes the info command.
func (c *InfoCmd) Run(g *Globals) error {
	_, mem, err := g.newEmulation()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Cartridge)
	if err != nil {
		return err
	}
	if crt.Sniff(data) {
		hdr, err := crt.ReadHeader(bytes.NewReader(data))
		if err != nil {
			return err
		}
		fmt.Fprintf(g.Output, "CRT: %s\n", hdr)
	}

	if err := attach(mem, c.Cartridge, c.Mapping); err != nil {
		return err
	}

	fmt.Fprintf(g.Output, "%s\n", mem.Cart)
	mem.Cart.Dump(g.Output)
	mem.Exports.Dump(g.Output)
	mem.IO.Dump(g.Output)
	for _, b := range mem.Cart.CopyBanks() {
		fmt.Fprintf(g.Output, "%s\n", b)
	}

	return nil
}

// MonitorCmd runs the interactive monitor.
type MonitorCmd struct {
	Cartridge string `arg:"" optional:"" type:"existingfile" help:"Cartridge file to attach before the monitor starts."`
	Mapping   string `default:"AUTO" help:"Cartridge mapping. AUTO decides from the file."`
	Plain     bool   `help:"Use the plain terminal even if a color terminal is available."`
	Script    string `type:"existingfile" help:"Run the commands in the file rather than reading from the terminal."`
}

// Run executes the monitor command.
func (c *MonitorCmd) Run(g *Globals) error {
	env, mem, err := g.newEmulation()
	if err != nil {
		return err
	}

	var term terminal.Terminal

	switch {
	case c.Script != "":
		f, err := os.Open(c.Script)
		if err != nil {
			return err
		}
		defer f.Close()
		term = plainterm.NewPlainTerminal(f, g.Output, false)
	case !c.Plain && colorterm.Available():
		term = &colorterm.ColorTerminal{}
	default:
		term = plainterm.NewPlainTerminal(os.Stdin, g.Output, true)
	}

	mon := monitor.NewMonitor(env, mem, term)

	if c.Cartridge != "" {
		if err := attach(mem, c.Cartridge, c.Mapping); err != nil {
			return err
		}
	}

	return mon.Run()
}

// CrtCmd wraps a binary image in a CRT container.
type CrtCmd struct {
	Binary  string `arg:"" type:"existingfile" help:"Binary cartridge image."`
	Output  string `arg:"" optional:"" help:"CRT file to create. Defaults to the binary filename with the .crt extension."`
	Mapping string `required:"" help:"Cartridge mapping of the binary image."`
	Name    string `help:"Cartridge name in the CRT header. Defaults to the binary filename."`
}

// Run executes the crt command.
func (c *CrtCmd) Run(g *Globals) error {
	env, _, err := g.newEmulation()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Binary)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(c.Binary, filepath.Ext(c.Binary))
	if c.Output == "" {
		c.Output = base + ".crt"
	}
	if c.Name == "" {
		c.Name = strings.ToUpper(filepath.Base(base))
	}

	var b bytes.Buffer
	if err := cartridge.WriteContainer(env, &b, c.Mapping, c.Name, data); err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, b.Bytes(), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(g.Output, "%s written\n", c.Output)
	return nil
}

// SnapshotCmd attaches a cartridge and saves a snapshot.
type SnapshotCmd struct {
	Cartridge string `arg:"" type:"existingfile" help:"Cartridge file (binary or CRT)."`
	Output    string `arg:"" help:"Snapshot file to create."`
	Mapping   string `default:"AUTO" help:"Cartridge mapping. AUTO decides from the file."`
	Freeze    bool   `help:"Press the freeze button before saving the snapshot."`
}

// Run executes the snapshot command.
func (c *SnapshotCmd) Run(g *Globals) error {
	_, mem, err := g.newEmulation()
	if err != nil {
		return err
	}

	if err := attach(mem, c.Cartridge, c.Mapping); err != nil {
		return err
	}
	if c.Freeze {
		if err := mem.Cart.Freeze(); err != nil {
			return err
		}
	}

	s := snapshot.NewSnapshot(memory.Machine, version.String())
	if err := mem.WriteModule(s); err != nil {
		return err
	}
	if err := s.Save(c.Output); err != nil {
		return err
	}

	fmt.Fprintf(g.Output, "%s", s)
	return nil
}

// RestoreCmd restores a snapshot.
type RestoreCmd struct {
	Snapshot string `arg:"" type:"existingfile" help:"Snapshot file."`
	Monitor  bool   `help:"Start the interactive monitor after the snapshot has been restored."`
}

// Run executes the restore command.
func (c *RestoreCmd) Run(g *Globals) error {
	env, mem, err := g.newEmulation()
	if err != nil {
		return err
	}

	s, err := snapshot.Load(c.Snapshot)
	if err != nil {
		return err
	}
	if err := mem.ReadModule(s); err != nil {
		return err
	}

	fmt.Fprintf(g.Output, "%s", s)
	mem.Cart.Dump(g.Output)

	if c.Monitor {
		var term terminal.Terminal
		if colorterm.Available() {
			term = &colorterm.ColorTerminal{}
		} else {
			term = plainterm.NewPlainTerminal(os.Stdin, g.Output, true)
		}
		return monitor.NewMonitor(env, mem, term).Run()
	}

	return nil
}

// PerfCmd measures bus throughput.
type PerfCmd struct {
	Cartridge string        `arg:"" optional:"" type:"existingfile" help:"Cartridge file to attach."`
	Mapping   string        `default:"AUTO" help:"Cartridge mapping. AUTO decides from the file."`
	Duration  time.Duration `default:"5s" help:"Length of the measurement."`
	Profile   string        `default:"NONE" help:"Generate profiles: CPU, MEM, ALL or NONE."`
}

// Run executes the perf command.
func (c *PerfCmd) Run(g *Globals) error {
	profile, err := performance.ParseProfileString(c.Profile)
	if err != nil {
		return err
	}

	_, mem, err := g.newEmulation()
	if err != nil {
		return err
	}

	hdr := "perf"
	if c.Cartridge != "" {
		if err := attach(mem, c.Cartridge, c.Mapping); err != nil {
			return err
		}
		hdr = mem.Cart.ShortFilename()
	}

	return performance.Check(g.Output, mem, c.Duration, profile, hdr)
}

// MappingsCmd lists the supported mappings.
type MappingsCmd struct{}

// Run executes the mappings command.
func (c *MappingsCmd) Run(g *Globals) error {
	if g.Output == nil {
		g.Output = os.Stdout
	}
	for _, m := range cartridge.Mappings() {
		fmt.Fprintln(g.Output, m)
	}
	return nil
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("gopher64"),
		kong.Description("C64 expansion port cartridge emulation and monitor."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
}

func main() {
	cli := &CLI{}

	parser, err := newParser(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(10)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&cli.Globals); err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(10)
	}
}
