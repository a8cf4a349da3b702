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

package injector

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/padbridge/wire"
)

// control keys recognised by a Session.
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
	keySpace  = ' '
)

// Target is a pad and the sender it is sent with.
type Target struct {
	Pad    *Pad
	Sender *Sender
}

// Session toggles keys on a set of targets.
type Session struct {
	targets []Target

	// the state of every pad is printed to output after every change. can be
	// nil
	output io.Writer
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(targets []Target, output io.Writer) *Session {
	return &Session{
		targets: targets,
		output:  output,
	}
}

// HandleKey processes a single key. Escape and Ctrl-C release every key on
// every target and return true to indicate that the session should end. Space
// releases every key but does not end the session. Keys that are not in any
// keyset are ignored.
func (s *Session) HandleKey(key byte) (bool, error) {
	switch key {
	case keyCtrlC, keyEscape:
		return true, s.ReleaseAll()
	case keySpace:
		return false, s.ReleaseAll()
	}

	for _, t := range s.targets {
		if t.Pad.Toggle(wire.KeyCode(key)) {
			if err := t.Sender.Send(t.Pad); err != nil {
				return false, err
			}
			s.status()
		}
	}

	return false, nil
}

// ReleaseAll releases every key on every target and sends the new state.
func (s *Session) ReleaseAll() error {
	for _, t := range s.targets {
		t.Pad.Release()
		if err := t.Sender.Send(t.Pad); err != nil {
			return err
		}
	}
	s.status()
	return nil
}

// Run reads keys from the reader until the session ends or the reader
// returns an error. io.EOF ends the session without error.
//
// An escape byte is only treated as the escape key if it is the last byte of
// a read. Otherwise it begins an escape sequence, such as the one sent by a
// cursor key, and the whole sequence is ignored.
func (s *Session) Run(input io.Reader) error {
	s.status()

	buf := make([]byte, 16)
	for {
		n, err := input.Read(buf)
		for i := 0; i < n; i++ {
			if buf[i] == keyEscape && i+1 < n {
				i += escapeSequenceLen(buf[i:n]) - 1
				continue
			}

			end, err := s.HandleKey(buf[i])
			if err != nil {
				return err
			}
			if end {
				return nil
			}
		}
		if err != nil {
			if err == io.EOF {
				return s.ReleaseAll()
			}
			return err
		}
	}
}

// escapeSequenceLen returns the number of bytes in the escape sequence at the
// start of seq. CSI and SS3 sequences (ESC [ and ESC O) end with a byte in the
// range 0x40 to 0x7e. Any other escape sequence is two bytes long, as sent by
// the alt modifier.
func escapeSequenceLen(seq []byte) int {
	if len(seq) < 2 {
		return len(seq)
	}

	if seq[1] != '[' && seq[1] != 'O' {
		return 2
	}

	for i := 2; i < len(seq); i++ {
		if seq[i] >= 0x40 && seq[i] <= 0x7e {
			return i + 1
		}
	}

	return len(seq)
}

// print the state of every pad on a single line. the line is reprinted in
// place with a carriage return.
func (s *Session) status() {
	if s.output == nil {
		return
	}
	p := make([]string, 0, len(s.targets))
	for _, t := range s.targets {
		p = append(p, fmt.Sprintf("%s [%s]", t.Sender.Addr(), t.Pad))
	}
	fmt.Fprintf(s.output, "\r%s", strings.Join(p, "  "))
}
