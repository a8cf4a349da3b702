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

package listener

import (
	"errors"

	"github.com/jetsetilly/padbridge/keystate"
	"github.com/jetsetilly/padbridge/logger"
)

// Group is a set of listeners that share a key state and which are started and
// stopped together.
type Group struct {
	listeners []*Listener
}

// NewGroup creates a listener for each configuration. None of the listeners
// are started.
func NewGroup(cfgs []Config, state *keystate.State, perm logger.Permission) *Group {
	grp := &Group{}
	for _, cfg := range cfgs {
		grp.listeners = append(grp.listeners, NewListener(cfg, state, perm))
	}
	return grp
}

// Start every listener in the group. Listeners that fail to bind do not
// prevent other listeners from starting. The returned error joins every bind
// failure and is nil if all listeners started.
func (grp *Group) Start() error {
	var errs []error
	for _, l := range grp.listeners {
		if err := l.Start(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Stop every running listener in the group.
func (grp *Group) Stop() error {
	var errs []error
	for _, l := range grp.listeners {
		if err := l.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Listeners returns the listeners in the group in the order of the
// configurations given to NewGroup().
func (grp *Group) Listeners() []*Listener {
	return grp.listeners
}

// Running returns the number of running listeners.
func (grp *Group) Running() int {
	var n int
	for _, l := range grp.listeners {
		if l.Running() {
			n++
		}
	}
	return n
}

// Stats returns the sum of the stats of every listener in the group.
func (grp *Group) Stats() Stats {
	var s Stats
	for _, l := range grp.listeners {
		ls := l.Stats()
		s.Received += ls.Received
		s.Applied += ls.Applied
		s.Dropped += ls.Dropped
	}
	return s
}
