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

// Package wire describes the key-state datagram sent by a remote pad and
// decodes it into key presses.
//
// A datagram is an ASCII string of at least DatagramLen bytes. The first byte
// is the Marker character 'b'. Each of the eight bytes at the offsets listed
// in Offsets describes one key: the key is pressed if the byte is the Pressed
// character 'p' and released otherwise. All other bytes are ignored.
//
//	offset:  0    1    5    9    13   17   21   25   29
//	         b    p    .    p    .    .    .    .    p
//
// The key that each offset refers to is decided by the Keyset of the
// receiving listener and not by the datagram. The datagram only ever carries
// a complete snapshot of eight keys so there is no notion of a key event.
//
// Datagrams that are too short or that have the wrong marker are not errors.
// They decode to no deltas and are otherwise ignored.
package wire
