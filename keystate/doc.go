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

// Package keystate holds the pressed state of every KeyCode as written by the
// key injection listeners and read by the keyboard adapter.
//
// Each key is an independent atomic cell. There is no lock across keys and so
// no guarantee that a group of keys written by a single datagram will be
// observed together. Within a single key the most recently applied write
// always wins.
//
// The zero value of State is ready to use and has every key released. State
// is never reset.
package keystate
