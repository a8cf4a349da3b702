// This file is part of Padbridge.
//
// Padbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padbridge.  If not, see <https://www.gnu.org/licenses/>.

//go:build unix

package injector

import (
	"fmt"
	"io"

	"github.com/pkg/term"

	"github.com/jetsetilly/padbridge/curated"
)

// sentinal error patterns.
const (
	TerminalError = "injector: terminal: %v"
)

// the device opened by RunTerminal().
const ttyDevice = "/dev/tty"

// RunTerminal puts the controlling terminal into raw mode and runs the
// session with the keys typed into the terminal. The terminal is restored
// before returning.
func RunTerminal(s *Session, output io.Writer) error {
	tty, err := term.Open(ttyDevice, term.RawMode)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	defer tty.Close()

	defer func() {
		_ = tty.Restore()
		fmt.Fprintln(output)
	}()

	fmt.Fprint(output, "type keys to toggle them. space releases all. escape to quit\r\n")

	return s.Run(tty)
}
