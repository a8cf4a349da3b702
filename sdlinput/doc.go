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

// Package sdlinput is the SDL platform for the bridge. It provides the
// physical keyboard to the keyboard adapter and samples any attached
// gamecontrollers as menu buttons.
//
// SDL requires that all functions are called from the main thread. The
// Platform type must therefore be created and used only by the goroutine
// running the frame loop, which must be the main goroutine. NewPlatform()
// locks the calling goroutine to its OS thread.
//
// A small window is opened because SDL only reports the keyboard state to a
// focused window.
package sdlinput
