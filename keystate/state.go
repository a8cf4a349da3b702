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

package keystate

import (
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/padbridge/wire"
)

// State is the shared injected key state. It must not be copied after first
// use.
type State struct {
	keys [256]atomic.Bool
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	return &State{}
}

// SetPressed sets the pressed state of the key.
func (st *State) SetPressed(key wire.KeyCode, pressed bool) {
	st.keys[key].Store(pressed)
}

// IsPressed returns the most recently written state of the key.
func (st *State) IsPressed(key wire.KeyCode) bool {
	return st.keys[key].Load()
}

// Apply writes each delta to the state, in order.
func (st *State) Apply(deltas []wire.Delta) {
	for _, d := range deltas {
		st.keys[d.Key].Store(d.Pressed)
	}
}

// Snapshot is a copy of the State at a point in time. The keys are loaded one
// at a time so the snapshot may mix the results of concurrent writes.
type Snapshot [256]bool

// Snapshot returns a copy of every key.
func (st *State) Snapshot() Snapshot {
	var s Snapshot
	for i := range st.keys {
		s[i] = st.keys[i].Load()
	}
	return s
}

// Pressed returns the list of pressed keys in the snapshot.
func (s Snapshot) Pressed() []wire.KeyCode {
	var p []wire.KeyCode
	for i, v := range s {
		if v {
			p = append(p, wire.KeyCode(i))
		}
	}
	return p
}

func (s Snapshot) String() string {
	p := s.Pressed()
	if len(p) == 0 {
		return "none"
	}
	b := strings.Builder{}
	for i, k := range p {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(k.String())
	}
	return b.String()
}
