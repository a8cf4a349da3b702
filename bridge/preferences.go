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
	"fmt"

	"github.com/jetsetilly/padbridge/paths"
	"github.com/jetsetilly/padbridge/prefs"
)

// Preferences defines and collates all the preference values used by the
// bridge and the frame loop.
type Preferences struct {
	dsk *prefs.Disk

	// frames per second of the frame loop
	FPS prefs.Int

	// path to the profile file. empty for the default profile
	Profile prefs.String

	// echo log entries to stdout as they are added
	LogEcho prefs.Bool

	// open the SDL platform in RUN mode
	SDL prefs.Bool

	// seconds between stats log entries. zero disables the stats log
	StatsInterval prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the prefs file in the resource
// directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but loads the values from
// the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.FPS.SetHookPre(func(v prefs.Value) error {
		if fps := v.(int); fps < 1 || fps > 1000 {
			return fmt.Errorf("fps out of range (%d)", fps)
		}
		return nil
	})
	p.StatsInterval.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("stats interval cannot be negative")
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefs.Pref{
		"bridge.fps":           &p.FPS,
		"bridge.profile":       &p.Profile,
		"bridge.logecho":       &p.LogEcho,
		"bridge.sdl":           &p.SDL,
		"bridge.statsinterval": &p.StatsInterval,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.FPS.Set(60)
	_ = p.Profile.Set("")
	_ = p.LogEcho.Set(false)
	_ = p.SDL.Set(true)
	_ = p.StatsInterval.Set(0)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
