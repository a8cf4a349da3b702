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
	"net"

	"github.com/jetsetilly/padbridge/curated"
	"github.com/jetsetilly/padbridge/wire"
)

// sentinal error patterns.
const (
	SendError = "injector: %v"
)

// Pad is the pressed state of each key in a keyset.
type Pad struct {
	Keyset  wire.Keyset
	pressed [wire.NumKeys]bool
}

// NewPad is the preferred method of initialisation for the Pad type.
func NewPad(keyset wire.Keyset) *Pad {
	return &Pad{Keyset: keyset}
}

// SetPressed sets the state of the key. Returns false if the key is not in
// the keyset.
func (p *Pad) SetPressed(key wire.KeyCode, pressed bool) bool {
	i, ok := p.Keyset.Index(key)
	if !ok {
		return false
	}
	p.pressed[i] = pressed
	return true
}

// Toggle the state of the key. Returns false if the key is not in the keyset.
func (p *Pad) Toggle(key wire.KeyCode) bool {
	i, ok := p.Keyset.Index(key)
	if !ok {
		return false
	}
	p.pressed[i] = !p.pressed[i]
	return true
}

// IsPressed returns the state of the key.
func (p *Pad) IsPressed(key wire.KeyCode) bool {
	i, ok := p.Keyset.Index(key)
	return ok && p.pressed[i]
}

// Release every key.
func (p *Pad) Release() {
	p.pressed = [wire.NumKeys]bool{}
}

// Datagram returns the datagram describing the current state of the pad.
func (p *Pad) Datagram() []byte {
	return wire.Encode(p.pressed)
}

func (p *Pad) String() string {
	s := make([]byte, 0, wire.NumKeys)
	for i, k := range p.Keyset {
		if p.pressed[i] {
			s = append(s, byte(k))
		} else {
			s = append(s, '.')
		}
	}
	return string(s)
}

// Sender writes datagrams to a single UDP address.
type Sender struct {
	conn net.Conn
}

// NewSender is the preferred method of initialisation for the Sender type.
// The address is in the form accepted by net.Dial().
func NewSender(addr string) (*Sender, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, curated.Errorf(SendError, err)
	}
	return &Sender{conn: conn}, nil
}

// Send the state of the pad as a single datagram.
func (s *Sender) Send(p *Pad) error {
	if _, err := s.conn.Write(p.Datagram()); err != nil {
		return curated.Errorf(SendError, err)
	}
	return nil
}

// Addr returns the address that datagrams are sent to.
func (s *Sender) Addr() net.Addr {
	return s.conn.RemoteAddr()
}

// Close the sender.
func (s *Sender) Close() error {
	return s.conn.Close()
}
