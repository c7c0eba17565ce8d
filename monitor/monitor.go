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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/monitor/terminal"
	"github.com/jetsetilly/gopher64/notifications"
)

// Monitor is the interactive command line for the C64 memory.
type Monitor struct {
	env  *environment.Environment
	mem  *memory.Memory
	term terminal.Terminal

	// set by the QUIT command
	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The monitor installs itself as the notifications handler of the
// environment.
func NewMonitor(env *environment.Environment, mem *memory.Memory, term terminal.Terminal) *Monitor {
	mon := &Monitor{
		env:  env,
		mem:  mem,
		term: term,
	}
	env.Notifications = mon
	return mon
}

// Notify implements the notifications.Notify interface.
func (mon *Monitor) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifyAttached:
		mon.printLine(terminal.StyleNotice, "attached: %s", mon.mem.Cart)
	case notifications.NotifyDetached:
		mon.printLine(terminal.StyleNotice, "detached")
	case notifications.NotifyFreeze:
		mon.printLine(terminal.StyleNotice, "frozen: %s", mon.mem.Cart.Config())
	case notifications.NotifyReset:
		mon.printLine(terminal.StyleNotice, "reset")
	case notifications.NotifyPowerUp:
		mon.printLine(terminal.StyleNotice, "power up")
	case notifications.NotifySnapshotRestored:
		mon.printLine(terminal.StyleNotice, "snapshot restored: %s", mon.mem.Cart)
	default:
		return fmt.Errorf("monitor: unhandled notice (%s)", notice)
	}
	return nil
}

// prompt shows the current configuration mode of the expansion port.
func (mon *Monitor) prompt() string {
	return fmt.Sprintf("[ %s ] > ", mon.mem.Cart.Config())
}

// Run the monitor until the QUIT command is received or the input is
// exhausted.
func (mon *Monitor) Run() error {
	if err := mon.term.Initialise(); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer mon.term.CleanUp()

	mon.quit = false

	for !mon.quit {
		input, err := mon.term.TermRead(mon.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, terminal.ErrUserInterrupt) {
				return nil
			}
			return fmt.Errorf("monitor: %w", err)
		}

		mon.term.TermPrintLine(terminal.StyleEcho, input)

		if err := mon.Execute(input); err != nil {
			mon.printLine(terminal.StyleError, "%s", err)
			if !mon.term.IsInteractive() {
				logger.Log(mon.env, "monitor", err)
			}
		}
	}

	return nil
}

// Execute a single line of input. Empty lines and lines starting with # are
// ignored.
func (mon *Monitor) Execute(input string) error {
	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, "#") {
		return nil
	}

	tokens := strings.Fields(input)

	cmd, err := lookupCommand(tokens[0])
	if err != nil {
		return err
	}

	args := tokens[1:]
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return fmt.Errorf("%w: %s %s", ErrArguments, cmd.name, cmd.usage)
	}

	return cmd.run(mon, args)
}
