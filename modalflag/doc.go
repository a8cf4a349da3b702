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

// Package modalflag wraps the flag package in the standard library and adds
// program modes. Each mode can have its own set of flags.
//
// Arguments are given to NewArgs() and then parsed with Parse(). If sub-modes
// have been added with AddSubModes() then the first non-flag argument is
// compared against the list of sub-modes (case insensitive). If there is no
// match the first sub-mode in the list is selected as the default.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS", "INJECT", "VERSION")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// Once the mode is known, NewMode() prepares the Modes type for the flags of
// that mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		fps := md.AddInt("fps", 60, "frames per second")
//		p, err := md.Parse()
//		...
//	}
//
// Path() returns every mode selected so far, separated by a forward slash. It
// is used as the banner in help messages.
package modalflag
