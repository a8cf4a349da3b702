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

// Package bridge owns the shared key state, the listeners and the keyboard
// adapter, and runs the frame loop that turns key and gamecontroller input
// into menu input.
//
// The listeners are created from a profile.Profile. Reload() replaces the
// running listeners with the listeners of a new profile. The key state is
// kept across a reload.
//
// FrameLoop() runs on the calling goroutine. Once per frame it processes
// platform events, samples the bound keys and any gamecontrollers, steps the
// menuinput.Aggregator and passes the effective input to the consumer.
package bridge
