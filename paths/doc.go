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

// Package paths contains functions to prepare paths to Padbridge resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the listener profile:
//
//	p, err := paths.ResourcePath("", "profile.toml")
//
// If the base resource path, ".padbridge", is present in the program's
// current directory then that is the base path that is used. Otherwise the
// user's config directory is used, as returned by os.UserConfigDir(). On a
// Linux system the path returned in the example above would be:
//
//	/home/user/.config/padbridge/profile.toml
//
// The directory part of the path is created if it does not exist.
package paths
