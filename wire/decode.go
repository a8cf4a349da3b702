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

package wire

// protocol characters.
const (
	Marker   = 'b'
	Pressed  = 'p'
	Released = 'r'
)

// DatagramLen is the minimum length of a valid datagram. The last key flag
// is at offset 29.
const DatagramLen = 30

// Delta is the new state of a single key as described by a datagram.
type Delta struct {
	Key     KeyCode
	Pressed bool
}

// Valid returns true if the datagram is long enough and begins with the
// marker byte.
func Valid(datagram []byte) bool {
	return len(datagram) >= DatagramLen && datagram[0] == Marker
}

// Decode the datagram using the keyset. Returns one Delta for every key in
// the keyset, in keyset order. An invalid datagram returns nil.
func Decode(datagram []byte, keyset Keyset) []Delta {
	if !Valid(datagram) {
		return nil
	}

	deltas := make([]Delta, NumKeys)
	for i, o := range Offsets {
		deltas[i] = Delta{
			Key:     keyset[i],
			Pressed: datagram[o] == Pressed,
		}
	}
	return deltas
}

// Encode creates a datagram describing the pressed state of each key in a
// keyset. Bytes that are not key flags are set to the separator character.
func Encode(pressed [NumKeys]bool) []byte {
	d := make([]byte, DatagramLen)
	for i := range d {
		d[i] = ' '
	}
	d[0] = Marker
	for i, o := range Offsets {
		if pressed[i] {
			d[o] = Pressed
		} else {
			d[o] = Released
		}
	}
	return d
}
