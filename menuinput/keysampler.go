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

package menuinput

import (
	"github.com/jetsetilly/padbridge/wire"
)

// KeyQuerier is implemented by keyboard.Adapter.
type KeyQuerier interface {
	QueryKeyDown(wire.KeyCode) bool
}

// Binds maps a single button to the keys that press it. More than one key can
// press the same button.
type Binds map[Buttons][]wire.KeyCode

// DefaultBinds returns the binds for the keys of the two builtin keysets.
func DefaultBinds() Binds {
	return Binds{
		// wire.KeysetPort0
		Up:      {'w'},
		Down:    {'s'},
		Left:    {'a'},
		Right:   {'d'},
		ButtonA: {'x'},
		ButtonB: {'z'},
		L2:      {'q'},
		R2:      {'c'},

		// wire.KeysetPort1
		UpAnalogL:    {'t'},
		DownAnalogL:  {'y'},
		LeftAnalogL:  {'r'},
		RightAnalogL: {'v'},
		Start:        {'m'},
		Select:       {'g'},
		L1:           {'b'},
		R1:           {'n'},
	}
}

// KeySampler is a Sampler that queries the keyboard for every bound key. The
// result is combined with the sample of an optional joypad.
type KeySampler struct {
	keys   KeyQuerier
	binds  Binds
	joypad Sampler
}

// NewKeySampler is the preferred method of initialisation for the KeySampler
// type. The joypad argument can be nil.
func NewKeySampler(keys KeyQuerier, binds Binds, joypad Sampler) *KeySampler {
	return &KeySampler{
		keys:   keys,
		binds:  binds,
		joypad: joypad,
	}
}

// Sample implements the Sampler interface.
func (ks *KeySampler) Sample() Buttons {
	var b Buttons

	if ks.joypad != nil {
		b = ks.joypad.Sample()
	}

	for button, keys := range ks.binds {
		if b.Has(button) {
			continue
		}
		for _, k := range keys {
			if ks.keys.QueryKeyDown(k) {
				b |= button
				break
			}
		}
	}

	return b
}
