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

// Package listener receives key-state datagrams over UDP and applies them to
// the shared key state.
//
// Each Listener owns one socket and one receive goroutine. The goroutine
// blocks on the socket until a datagram arrives or until Stop() closes the
// socket. There is no receive timeout. A listener that never receives
// anything is idle, not in error.
//
// Datagrams are decoded with the wire package using the Keyset given in the
// Listener's Config. Malformed datagrams are counted and otherwise ignored.
//
// A failure to bind is returned from Start() as a curated error. It affects
// only the listener that failed. Group starts several listeners and keeps the
// ones that bound successfully.
package listener
