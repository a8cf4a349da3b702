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

// Package menuinput turns per-frame button samples into navigation input for
// a menu.
//
// The Aggregator is stepped once per frame with a single sample of the
// logical buttons. In the normal trigger mode only buttons that were not
// pressed in the previous frame are reported. This stops a single press from
// moving the menu selection more than once.
//
// The analog directions of both sticks, and the L2 and R2 shoulder buttons, put
// the Aggregator into hold mode when they are held. For HoldDelay frames after
// entering hold mode the output is still trigger only. After that the full
// sample is reported every frame until the held buttons are released. The
// shoulder buttons do not enter hold mode when the context is
// ContextSettings.
//
// Samples come from a Sampler. KeySampler is a Sampler that builds the sample
// from keyboard binds and an optional joypad.
package menuinput
