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

package profile

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/padbridge/curated"
	"github.com/jetsetilly/padbridge/listener"
	"github.com/jetsetilly/padbridge/menuinput"
	"github.com/jetsetilly/padbridge/wire"
)

// sentinal error patterns.
const (
	LoadError         = "profile: %v"
	UnsupportedFormat = "profile: unsupported format (%s)"
	InvalidProfile    = "profile: invalid: %v"
)

// Listener is the configuration of a single listener in the profile.
type Listener struct {
	Name   string   `toml:"name" yaml:"name"`
	Host   string   `toml:"host" yaml:"host"`
	Port   int      `toml:"port" yaml:"port"`
	Keyset string   `toml:"keyset" yaml:"keyset"`
	Keys   []string `toml:"keys" yaml:"keys"`
}

// Addr returns the address of the listener in the form used by
// listener.Config.
func (l Listener) Addr() string {
	return net.JoinHostPort(l.Host, strconv.Itoa(l.Port))
}

// keyset returns the builtin keyset or the keyset created from the list of
// keys.
func (l Listener) keyset() (wire.Keyset, error) {
	if l.Keyset != "" {
		return wire.BuiltinKeyset(l.Keyset)
	}
	return wire.NewKeyset(l.Keys)
}

// Profile is the content of a profile file.
type Profile struct {
	Listeners []Listener          `toml:"listener" yaml:"listeners"`
	Binds     map[string][]string `toml:"binds" yaml:"binds"`

	// the file the profile was loaded from. empty for the default profile
	path string
}

// Default returns the profile used when there is no profile file. It
// describes the listeners returned by listener.DefaultConfigs().
func Default() *Profile {
	return &Profile{
		Listeners: []Listener{
			{Name: "port0", Port: 5000, Keyset: "port0"},
			{Name: "port1", Port: 5001, Keyset: "port1"},
		},
	}
}

// Load the profile from the file. The file extension must be one of .toml,
// .yaml or .yml. The profile is validated before it is returned.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	prf := &Profile{path: path}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(prf); err != nil {
			return nil, curated.Errorf(LoadError, fmt.Errorf("decode TOML: %w", err))
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, prf); err != nil {
			return nil, curated.Errorf(LoadError, fmt.Errorf("decode YAML: %w", err))
		}
	default:
		return nil, curated.Errorf(UnsupportedFormat, ext)
	}

	if err := prf.Validate(); err != nil {
		return nil, err
	}

	return prf, nil
}

// Path returns the path of the file the profile was loaded from.
func (prf *Profile) Path() string {
	return prf.path
}

// Validate checks that the profile can be used to create listeners and
// binds.
func (prf *Profile) Validate() error {
	if len(prf.Listeners) == 0 {
		return curated.Errorf(InvalidProfile, "no listeners")
	}

	ports := make(map[int]bool)
	for i, l := range prf.Listeners {
		if l.Port < 1 || l.Port > 65535 {
			return curated.Errorf(InvalidProfile, fmt.Sprintf("listener %d: port %d out of range", i, l.Port))
		}
		if ports[l.Port] {
			return curated.Errorf(InvalidProfile, fmt.Sprintf("listener %d: port %d used more than once", i, l.Port))
		}
		ports[l.Port] = true

		if l.Keyset != "" && len(l.Keys) > 0 {
			return curated.Errorf(InvalidProfile, fmt.Sprintf("listener %d: both keyset and keys specified", i))
		}
		if _, err := l.keyset(); err != nil {
			return curated.Errorf(InvalidProfile, fmt.Errorf("listener %d: %w", i, err))
		}
	}

	if _, err := prf.NavBinds(); err != nil {
		return curated.Errorf(InvalidProfile, err)
	}

	return nil
}

// ListenerConfigs returns a listener.Config for each listener in the profile.
func (prf *Profile) ListenerConfigs() ([]listener.Config, error) {
	cfgs := make([]listener.Config, 0, len(prf.Listeners))
	for _, l := range prf.Listeners {
		ks, err := l.keyset()
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, listener.Config{
			Name:   l.Name,
			Addr:   l.Addr(),
			Keyset: ks,
		})
	}
	return cfgs, nil
}

// NavBinds returns the default binds amended by the binds in the profile.
func (prf *Profile) NavBinds() (menuinput.Binds, error) {
	binds := menuinput.DefaultBinds()

	for name, keys := range prf.Binds {
		b, err := menuinput.ParseButton(name)
		if err != nil {
			return nil, err
		}

		codes := make([]wire.KeyCode, 0, len(keys))
		for _, k := range keys {
			if len(k) != 1 {
				return nil, fmt.Errorf("bind %s: key %q is not a single character", name, k)
			}
			codes = append(codes, wire.KeyCode(k[0]))
		}
		binds[b] = codes
	}

	return binds, nil
}
