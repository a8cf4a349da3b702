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

// Package profile loads the listener profile. The profile lists the UDP
// listeners to start and, optionally, the keys bound to each menu button.
//
// Profiles can be written in TOML or YAML. The format is decided by the file
// extension. A TOML profile looks like this:
//
//	[[listener]]
//	name = "player one"
//	port = 5000
//	keyset = "port0"
//
//	[[listener]]
//	host = "127.0.0.1"
//	port = 6000
//	keys = ["1", "2", "3", "4", "5", "6", "7", "8"]
//
//	[binds]
//	UP = ["w", "i"]
//	A = ["x"]
//
// Each listener must have either the name of a builtin keyset or a list of
// exactly eight keys. The keys are listed in datagram offset order. Binds
// replace the default keys for the named buttons. Buttons that are not named
// keep their default keys.
//
// The Watcher type watches a profile file and reloads it when it changes.
package profile
