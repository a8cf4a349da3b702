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

package injector_test

import (
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/padbridge/injector"
	"github.com/jetsetilly/padbridge/test"
	"github.com/jetsetilly/padbridge/wire"
)

// a UDP socket that receives the datagrams sent by the injector.
type receiver struct {
	t  *testing.T
	pc net.PacketConn
}

func newReceiver(t *testing.T) *receiver {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		_ = pc.Close()
	})
	return &receiver{t: t, pc: pc}
}

// receive the next datagram and decode it with the keyset.
func (r *receiver) next(keyset wire.Keyset) []wire.Delta {
	r.t.Helper()
	test.DemandSuccess(r.t, r.pc.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 64)
	n, _, err := r.pc.ReadFrom(buf)
	test.DemandSuccess(r.t, err)
	return wire.Decode(buf[:n], keyset)
}

func pressed(deltas []wire.Delta) string {
	s := strings.Builder{}
	for _, d := range deltas {
		if d.Pressed {
			s.WriteString(d.Key.String())
		}
	}
	return s.String()
}

func TestPad(t *testing.T) {
	p := injector.NewPad(wire.KeysetPort0)
	test.ExpectEquality(t, p.String(), "........")

	test.ExpectSuccess(t, p.Toggle('q'))
	test.ExpectSuccess(t, p.IsPressed('q'))
	test.ExpectFailure(t, p.Toggle('r'))
	test.ExpectFailure(t, p.IsPressed('r'))
	test.ExpectEquality(t, p.String(), "...q....")

	test.ExpectSuccess(t, p.SetPressed('x', true))
	test.ExpectFailure(t, p.SetPressed('v', true))
	test.ExpectEquality(t, pressed(wire.Decode(p.Datagram(), wire.KeysetPort0)), "xq")

	p.Release()
	test.ExpectEquality(t, pressed(wire.Decode(p.Datagram(), wire.KeysetPort0)), "")
}

func TestSender(t *testing.T) {
	r := newReceiver(t)

	s, err := injector.NewSender(r.pc.LocalAddr().String())
	test.DemandSuccess(t, err)
	defer s.Close()

	p := injector.NewPad(wire.KeysetPort1)
	p.SetPressed('r', true)
	test.ExpectSuccess(t, s.Send(p))

	deltas := r.next(wire.KeysetPort1)
	test.DemandEquality(t, len(deltas), wire.NumKeys)
	test.ExpectEquality(t, pressed(deltas), "r")
}

func TestSession(t *testing.T) {
	r0 := newReceiver(t)
	r1 := newReceiver(t)

	s0, err := injector.NewSender(r0.pc.LocalAddr().String())
	test.DemandSuccess(t, err)
	defer s0.Close()
	s1, err := injector.NewSender(r1.pc.LocalAddr().String())
	test.DemandSuccess(t, err)
	defer s1.Close()

	tw := &test.CompareWriter{}
	session := injector.NewSession([]injector.Target{
		{Pad: injector.NewPad(wire.KeysetPort0), Sender: s0},
		{Pad: injector.NewPad(wire.KeysetPort1), Sender: s1},
	}, tw)

	// 'w' is in the first keyset only
	end, err := session.HandleKey('w')
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, end)
	test.ExpectEquality(t, pressed(r0.next(wire.KeysetPort0)), "w")

	// 'm' is in the second keyset only
	_, err = session.HandleKey('m')
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pressed(r1.next(wire.KeysetPort1)), "m")

	// toggling 'w' again releases it
	_, err = session.HandleKey('w')
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pressed(r0.next(wire.KeysetPort0)), "")

	// unknown keys send nothing. the next datagram on r1 is from the escape
	// key that follows
	_, err = session.HandleKey('1')
	test.ExpectSuccess(t, err)

	// escape releases everything and ends the session
	end, err = session.HandleKey(0x1b)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, end)
	test.ExpectEquality(t, pressed(r0.next(wire.KeysetPort0)), "")
	test.ExpectEquality(t, pressed(r1.next(wire.KeysetPort1)), "")

	test.ExpectSuccess(t, strings.Contains(tw.String(), "[....m...]"))
}

func TestSessionRun(t *testing.T) {
	r := newReceiver(t)
	s, err := injector.NewSender(r.pc.LocalAddr().String())
	test.DemandSuccess(t, err)
	defer s.Close()

	session := injector.NewSession([]injector.Target{
		{Pad: injector.NewPad(wire.KeysetPort0), Sender: s},
	}, nil)

	// keys after the Ctrl-C are not processed
	test.ExpectSuccess(t, session.Run(strings.NewReader("xz\x03a")))
	test.ExpectEquality(t, pressed(r.next(wire.KeysetPort0)), "x")
	test.ExpectEquality(t, pressed(r.next(wire.KeysetPort0)), "xz")
	test.ExpectEquality(t, pressed(r.next(wire.KeysetPort0)), "")

	// end of input releases every key
	test.ExpectSuccess(t, session.Run(strings.NewReader("d")))
	test.ExpectEquality(t, pressed(r.next(wire.KeysetPort0)), "d")
	test.ExpectEquality(t, pressed(r.next(wire.KeysetPort0)), "")
}

// reader that returns one chunk per call to Read().
type chunks []string

func (c *chunks) Read(p []byte) (int, error) {
	if len(*c) == 0 {
		return 0, io.EOF
	}
	n := copy(p, (*c)[0])
	*c = (*c)[1:]
	return n, nil
}

func TestSessionEscapeSequences(t *testing.T) {
	r := newReceiver(t)
	s, err := injector.NewSender(r.pc.LocalAddr().String())
	test.DemandSuccess(t, err)
	defer s.Close()

	session := injector.NewSession([]injector.Target{
		{Pad: injector.NewPad(wire.KeysetPort0), Sender: s},
	}, nil)

	// cursor keys and alt modified keys are ignored. the escape key on its
	// own ends the session. the keys after it are never read
	input := &chunks{"\x1b[A", "x", "\x1bOB\x1b[1;5C", "\x1bz", "\x1b", "s"}
	test.ExpectSuccess(t, session.Run(input))
	test.ExpectEquality(t, pressed(r.next(wire.KeysetPort0)), "x")
	test.ExpectEquality(t, pressed(r.next(wire.KeysetPort0)), "")
	test.ExpectEquality(t, len(*input), 1)
}
