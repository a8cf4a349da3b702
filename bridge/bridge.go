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

package bridge

import (
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/padbridge/curated"
	"github.com/jetsetilly/padbridge/keyboard"
	"github.com/jetsetilly/padbridge/keystate"
	"github.com/jetsetilly/padbridge/listener"
	"github.com/jetsetilly/padbridge/logger"
	"github.com/jetsetilly/padbridge/menuinput"
	"github.com/jetsetilly/padbridge/profile"
)

// sentinal error patterns.
const (
	BridgeError = "bridge: %v"
	Stopped     = "bridge: stopped"
)

// Bridge connects the listeners to the menu input.
type Bridge struct {
	perm logger.Permission

	state    *keystate.State
	keyboard *keyboard.Adapter

	// the listener group is replaced on Reload(). the critical section
	// protects the group and the profile
	crit    sync.Mutex
	group   *listener.Group
	profile *profile.Profile

	// set by Stop() and cleared by Start(). a stopped bridge ignores Reload()
	stopped bool

	// binds are read by the frame loop every frame
	binds atomic.Pointer[menuinput.Binds]

	// the menu context is set by the consumer and read by the frame loop
	menuContext atomic.Int32
}

// NewBridge is the preferred method of initialisation for the Bridge type.
// The listeners are not started until Start() is called.
func NewBridge(prf *profile.Profile, perm logger.Permission) (*Bridge, error) {
	if perm == nil {
		perm = logger.Allow
	}

	b := &Bridge{
		perm:  perm,
		state: keystate.NewState(),
	}
	b.keyboard = keyboard.NewAdapter(nil, b.state)

	if err := b.setProfile(prf); err != nil {
		return nil, err
	}

	return b, nil
}

// setProfile creates a new listener group and binds from the profile. must
// be called from within the critical section or before the bridge is shared.
func (b *Bridge) setProfile(prf *profile.Profile) error {
	if prf == nil {
		prf = profile.Default()
	}

	cfgs, err := prf.ListenerConfigs()
	if err != nil {
		return curated.Errorf(BridgeError, err)
	}

	binds, err := prf.NavBinds()
	if err != nil {
		return curated.Errorf(BridgeError, err)
	}

	b.profile = prf
	b.group = listener.NewGroup(cfgs, b.state, b.perm)
	b.binds.Store(&binds)

	return nil
}

// Start the listeners. Listeners that fail to bind are logged and their
// errors returned. The other listeners are left running and the bridge
// remains usable.
func (b *Bridge) Start() error {
	b.crit.Lock()
	defer b.crit.Unlock()

	b.stopped = false

	err := b.group.Start()
	logger.Logf(b.perm, "bridge", "%d of %d listeners running", b.group.Running(), len(b.group.Listeners()))
	return err
}

// Reload stops the running listeners and starts the listeners in the new
// profile. If the new profile cannot be used the running listeners are not
// stopped. Returns a Stopped error and starts nothing if Stop() has been
// called.
func (b *Bridge) Reload(prf *profile.Profile) error {
	b.crit.Lock()
	defer b.crit.Unlock()

	if b.stopped {
		return curated.Errorf(Stopped)
	}

	old := b.group
	oldBinds := b.binds.Load()
	oldProfile := b.profile

	if err := b.setProfile(prf); err != nil {
		b.group = old
		b.binds.Store(oldBinds)
		b.profile = oldProfile
		return err
	}

	if err := old.Stop(); err != nil {
		logger.Log(b.perm, "bridge", err)
	}

	if prf != nil && prf.Path() != "" {
		logger.Logf(b.perm, "bridge", "reloaded profile %s", prf.Path())
	}

	err := b.group.Start()
	logger.Logf(b.perm, "bridge", "%d of %d listeners running", b.group.Running(), len(b.group.Listeners()))
	return err
}

// Stop all listeners. Reload() has no effect until Start() is called again.
func (b *Bridge) Stop() error {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.stopped = true
	return b.group.Stop()
}

// Running returns the number of running listeners.
func (b *Bridge) Running() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.group.Running()
}

// State returns the shared key state.
func (b *Bridge) State() *keystate.State {
	return b.state
}

// Keyboard returns the keyboard adapter.
func (b *Bridge) Keyboard() *keyboard.Adapter {
	return b.keyboard
}

// Binds returns the current menu binds.
func (b *Bridge) Binds() menuinput.Binds {
	return *b.binds.Load()
}

// Profile returns the current profile.
func (b *Bridge) Profile() *profile.Profile {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.profile
}

// Listeners returns the current listeners.
func (b *Bridge) Listeners() []*listener.Listener {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.group.Listeners()
}

// Stats returns the combined stats of the current listeners.
func (b *Bridge) Stats() listener.Stats {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.group.Stats()
}

// SetMenuContext changes the context of the menu. It can be called from any
// goroutine and takes effect from the next frame.
func (b *Bridge) SetMenuContext(ctx menuinput.Context) {
	b.menuContext.Store(int32(ctx))
}

// MenuContext returns the current menu context.
func (b *Bridge) MenuContext() menuinput.Context {
	return menuinput.Context(b.menuContext.Load())
}
