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

// Package injector sends key-state datagrams to a listener. It is the
// client side of the listener package.
//
// A Pad holds the pressed state of the eight keys of a keyset. A Sender
// encodes the Pad as a datagram and writes it to a UDP address. Each datagram
// is a complete snapshot of the Pad.
//
// Session connects key presses to pads. Each key typed into a Session toggles
// the matching key on whichever pad has that key in its keyset, and the
// updated pad is sent immediately. RunTerminal() feeds a Session from the
// controlling terminal in raw mode.
package injector
