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

//go:build !unix

package injector

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// RunTerminal runs the session with keys read from stdin. Without raw mode
// keys are only received when the return key is pressed.
func RunTerminal(s *Session, output io.Writer) error {
	fmt.Fprint(output, "type keys and press return to toggle them. space releases all. escape to quit\n")
	return s.Run(bufio.NewReader(os.Stdin))
}
