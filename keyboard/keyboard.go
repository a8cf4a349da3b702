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

// Package keyboard merges the physical keyboard with the injected key state.
//
// The merge policy is a logical OR. A key is down if it is down on the
// physical keyboard or if it is pressed in the injected state. Releasing an
// injected key never hides a physical press and vice versa.
package keyboard

import (
	"github.com/jetsetilly/padbridge/keystate"
	"github.com/jetsetilly/padbridge/wire"
)

// Physical is implemented by the platform keyboard backend.
type Physical interface {
	IsPhysicalKeyDown(wire.KeyCode) bool
}

// Adapter answers key queries for the joypad sampling layer.
type Adapter struct {
	physical Physical
	injected *keystate.State
}

// NewAdapter is the preferred method of initialisation for the Adapter type.
// The physical argument can be nil, in which case only the injected state is
// consulted.
func NewAdapter(physical Physical, injected *keystate.State) *Adapter {
	return &Adapter{
		physical: physical,
		injected: injected,
	}
}

// QueryKeyDown returns true if the key is down physically or by injection.
func (a *Adapter) QueryKeyDown(key wire.KeyCode) bool {
	if a.injected != nil && a.injected.IsPressed(key) {
		return true
	}
	return a.physical != nil && a.physical.IsPhysicalKeyDown(key)
}

// SetPhysical changes the physical backend. A nil value removes the physical
// backend. Must not be called concurrently with QueryKeyDown().
func (a *Adapter) SetPhysical(physical Physical) {
	a.physical = physical
}
