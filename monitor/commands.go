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

package monitor

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher64/archivefs"
	"github.com/jetsetilly/gopher64/cartridgeloader"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/monitor/terminal"
	"github.com/jetsetilly/gopher64/snapshot"
	"github.com/jetsetilly/gopher64/version"
)

// Sentinel errors returned by Execute().
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
	ErrAddress        = errors.New("invalid address")
	ErrValue          = errors.New("invalid value")
)

type command struct {
	name    string
	usage   string
	help    string
	minArgs int
	maxArgs int
	run     func(mon *Monitor, args []string) error
}

// the list of commands is created in init() because the HELP command refers
// to the list
var commands []command

func init() {
	commands = []command{
		{"ATTACH", "<file> [mapping]", "attach cartridge file to the expansion port", 1, 2, (*Monitor).attach},
		{"FILES", "[path]", "list files. zip archives are listed as directories", 0, 1, (*Monitor).files},
		{"DETACH", "", "remove cartridge from the expansion port", 0, 0, (*Monitor).detach},
		{"RESET", "", "reset the machine", 0, 0, (*Monitor).reset},
		{"POWERUP", "", "power cycle the machine", 0, 0, (*Monitor).powerUp},
		{"FREEZE", "", "press the freeze button of the cartridge", 0, 0, (*Monitor).freeze},
		{"PEEK", "<address> [count]", "show memory without side effects", 1, 2, (*Monitor).peek},
		{"READ", "<address>", "read memory as the CPU would", 1, 1, (*Monitor).read},
		{"STORE", "<address> <value>", "write memory as the CPU would", 2, 2, (*Monitor).store},
		{"POKE", "<address> <value>", "change RAM or chip registers without side effects", 2, 2, (*Monitor).poke},
		{"MAP", "<address>", "show the memory area for the address in the current mode", 1, 1, (*Monitor).mapAddress},
		{"DUMP", "", "show the state of the cartridge, exports and I/O devices", 0, 0, (*Monitor).dump},
		{"BANKS", "", "list the banks of the cartridge", 0, 0, (*Monitor).banks},
		{"RAM", "", "show the contents of cartridge RAM", 0, 0, (*Monitor).ram},
		{"HOTSPOTS", "", "list the I/O registers of the cartridge", 0, 0, (*Monitor).hotspots},
		{"SAVE", "<file>", "save snapshot to file", 1, 1, (*Monitor).save},
		{"LOAD", "<file>", "restore snapshot from file", 1, 1, (*Monitor).load},
		{"LOG", "[count|CLEAR]", "show the most recent log entries", 0, 1, (*Monitor).log},
		{"MEMVIZ", "<file>", "write a graph of the cartridge structures to a dot file", 1, 1, (*Monitor).memviz},
		{"PREFS", "[SAVE]", "list hardware preferences or save them to disk", 0, 1, (*Monitor).prefs},
		{"COLLISION", "[AND|LAST]", "show or set the I/O read collision method", 0, 1, (*Monitor).collision},
		{"QUIT", "", "leave the monitor", 0, 0, (*Monitor).quitMonitor},
		{"HELP", "[command]", "list commands or show help for a command", 0, 1, (*Monitor).help},
	}
}

// lookupCommand is case insensitive
func lookupCommand(name string) (command, error) {
	name = strings.ToUpper(name)
	i := slices.IndexFunc(commands, func(c command) bool {
		return c.name == name
	})
	if i == -1 {
		return command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return commands[i], nil
}

// parseAddress accepts hexadecimal with an optional $ or 0x prefix
func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(trimHex(s), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrAddress, s)
	}
	return uint16(v), nil
}

func parseValue(s string) (uint8, error) {
	v, err := strconv.ParseUint(trimHex(s), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrValue, s)
	}
	return uint8(v), nil
}

func trimHex(s string) string {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	return s
}

func (mon *Monitor) attach(args []string) error {
	mapping := cartridgeloader.AutoMapping
	if len(args) > 1 {
		mapping = strings.ToUpper(args[1])
		if !cartridge.SupportedMapping(mapping) {
			return fmt.Errorf("%w: %s", cartridge.ErrUnsupportedMapping, mapping)
		}
	}
	ld, err := cartridgeloader.NewLoader(args[0], mapping, "")
	if err != nil {
		return err
	}
	return mon.mem.Cart.Attach(ld)
}

func (mon *Monitor) files(args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	var afs archivefs.Path
	defer afs.Close()

	if err := afs.Set(path); err != nil {
		return err
	}

	ent, err := afs.List()
	if err != nil {
		return err
	}

	for _, e := range ent {
		if e.IsDir {
			mon.printLine(terminal.StyleFeedback, "%s/", e.Name)
		} else {
			mon.printLine(terminal.StyleFeedback, e.Name)
		}
	}

	return nil
}

func (mon *Monitor) detach(_ []string) error {
	mon.mem.Cart.Detach()
	return nil
}

func (mon *Monitor) reset(_ []string) error {
	mon.mem.Reset()
	return nil
}

func (mon *Monitor) powerUp(_ []string) error {
	mon.mem.PowerUp()
	return nil
}

func (mon *Monitor) freeze(_ []string) error {
	return mon.mem.Cart.Freeze()
}

func (mon *Monitor) peek(args []string) error {
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	count := 1
	if len(args) > 1 {
		n, err := strconv.ParseUint(trimHex(args[1]), 16, 17)
		if err != nil || n == 0 {
			return fmt.Errorf("%w: %s", ErrValue, args[1])
		}
		count = int(n)
	}

	s := strings.Builder{}
	for i := range count {
		a := addr + uint16(i)
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("$%04X %-6s", a, mon.mem.MapAddress(a).Area))
		}
		s.WriteString(fmt.Sprintf(" %02x", mon.mem.Peek(a)))
	}
	mon.printLine(terminal.StyleFeedback, s.String())

	return nil
}

func (mon *Monitor) read(args []string) error {
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	v := mon.mem.Read(addr)
	mon.printLine(terminal.StyleFeedback, "$%04X %-6s %02x", addr, mon.mem.MapAddress(addr).Area, v)
	return nil
}

func (mon *Monitor) store(args []string) error {
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[1])
	if err != nil {
		return err
	}
	mon.mem.Write(addr, v)
	return nil
}

func (mon *Monitor) poke(args []string) error {
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[1])
	if err != nil {
		return err
	}
	mon.mem.Poke(addr, v)
	return nil
}

func (mon *Monitor) mapAddress(args []string) error {
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	m := mon.mem.MapAddress(addr)
	mon.printLine(terminal.StyleFeedback, "$%04X %s (readable: %v, writable: %v)", addr, m.Area, m.Readable, m.Writable)
	return nil
}

func (mon *Monitor) dump(_ []string) error {
	w := mon.printStyle(terminal.StyleFeedback)
	mon.mem.Cart.Dump(w)
	mon.mem.Exports.Dump(w)
	mon.mem.IO.Dump(w)
	return nil
}

func (mon *Monitor) banks(_ []string) error {
	if mon.mem.Cart.IsEjected() {
		return fmt.Errorf("cartridge: %w", cartridge.ErrEjected)
	}
	b := mon.mem.Cart.GetBanks()
	mon.printLine(terminal.StyleFeedback, "%s  %s", b[0], b[1])
	mon.printLine(terminal.StyleFeedback, mon.mem.Cart.MappedBanks())
	for _, c := range mon.mem.Cart.CopyBanks() {
		mon.printLine(terminal.StyleHelp, c.String())
	}
	return nil
}

func (mon *Monitor) ram(_ []string) error {
	r := mon.mem.Cart.GetRAMbus()
	if r == nil {
		return errors.New("cartridge has no RAM")
	}
	for _, seg := range r.GetRAM() {
		mon.printLine(terminal.StyleFeedback, "%s $%04X (mapped: %v)", seg.Label, seg.Origin, seg.Mapped)
		mon.printLine(terminal.StyleHelp, hex.Dump(seg.Data))
	}
	return nil
}

func (mon *Monitor) hotspots(_ []string) error {
	regs := mon.mem.IO.Registrations()
	if len(regs) == 0 {
		mon.printLine(terminal.StyleFeedback, "no I/O devices")
		return nil
	}
	for _, d := range regs {
		mon.printLine(terminal.StyleFeedback, "%s %s", d, d.Action)
	}
	return nil
}

func (mon *Monitor) save(args []string) error {
	s := snapshot.NewSnapshot(memory.Machine, version.String())
	if err := mon.mem.WriteModule(s); err != nil {
		return err
	}
	if err := s.Save(args[0]); err != nil {
		return err
	}
	mon.printLine(terminal.StyleFeedback, "snapshot saved to %s", args[0])
	return nil
}

func (mon *Monitor) load(args []string) error {
	s, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	return mon.mem.ReadModule(s)
}

func (mon *Monitor) log(args []string) error {
	count := 10
	if len(args) > 0 {
		if strings.ToUpper(args[0]) == "CLEAR" {
			logger.Clear()
			return nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s", ErrValue, args[0])
		}
		count = n
	}
	logger.Tail(mon.printStyle(terminal.StyleFeedback), count)
	return nil
}

func (mon *Monitor) memviz(args []string) error {
	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, mon.mem.Cart)
	mon.printLine(terminal.StyleFeedback, "memviz graph written to %s", args[0])
	return nil
}

func (mon *Monitor) prefs(args []string) error {
	if len(args) > 0 {
		if strings.ToUpper(args[0]) != "SAVE" {
			return fmt.Errorf("%w: PREFS %s", ErrValue, args[0])
		}
		return mon.env.Prefs.Save()
	}
	mon.printLine(terminal.StyleFeedback, mon.env.Prefs.String())
	return nil
}

func (mon *Monitor) collision(args []string) error {
	if len(args) > 0 {
		if err := mon.env.Prefs.Collision.Set(strings.ToUpper(args[0])); err != nil {
			return err
		}
	}
	mon.printLine(terminal.StyleFeedback, "collision method: %s", mon.env.Prefs.Collision.String())
	return nil
}

func (mon *Monitor) quitMonitor(_ []string) error {
	mon.quit = true
	return nil
}

func (mon *Monitor) help(args []string) error {
	if len(args) > 0 {
		cmd, err := lookupCommand(args[0])
		if err != nil {
			return err
		}
		mon.printLine(terminal.StyleFeedback, "%s %s", cmd.name, cmd.usage)
		mon.printLine(terminal.StyleHelp, cmd.help)
		return nil
	}
	for _, cmd := range commands {
		mon.printLine(terminal.StyleHelp, "%-10s %s", cmd.name, cmd.usage)
	}
	return nil
}
