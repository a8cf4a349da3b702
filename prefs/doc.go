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

// Package prefs holds typed preference values that can be saved to and loaded
// from disk.
//
// Preference values are Bool, Int and String. Each type can be given hook
// functions that are called whenever the value is set. Values are added to a
// Disk under a key:
//
//	var fps prefs.Int
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("bridge.fps", &fps)
//	dsk.Load()
//
// The prefs file is a plain text file. The first line is WarningBoilerPlate
// and every other line is a key and value separated by " :: ".
//
// Values given on the command line are pushed onto the command line stack
// with PushCommandLineStack(). Values on the top of the stack are used by
// Disk.Load() in preference to the values in the prefs file.
package prefs
