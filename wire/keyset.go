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

package wire

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/padbridge/curated"
)

// KeyCode identifies a single virtual key. Printable keys use their ASCII
// value, which is also the SDL keycode for the key.
type KeyCode byte

func (k KeyCode) String() string {
	if k > ' ' && k < 0x7f {
		return string(rune(k))
	}
	return fmt.Sprintf("%#02x", byte(k))
}

// NumKeys is the number of keys described by a datagram and consequently the
// size of a Keyset.
const NumKeys = 8

// Offsets lists the position of each key flag in the datagram. The index into
// this array is the index into a Keyset.
var Offsets = [NumKeys]int{1, 5, 9, 13, 17, 21, 25, 29}

// Keyset maps each of the eight datagram offsets to a KeyCode. The order of
// the keyset is the order of the Offsets array.
type Keyset [NumKeys]KeyCode

// the two keysets used by the default listeners. the keysets share no keys.
var (
	KeysetPort0 = Keyset{'x', 's', 'z', 'q', 'w', 'c', 'a', 'd'}
	KeysetPort1 = Keyset{'v', 'y', 't', 'r', 'm', 'g', 'b', 'n'}
)

// builtin keysets by name. used by the profile package.
var builtin = map[string]Keyset{
	"PORT0": KeysetPort0,
	"PORT1": KeysetPort1,
}

// sentinal error patterns for the keyset functions.
const (
	UnknownKeyset = "wire: unknown keyset (%s)"
	InvalidKeyset = "wire: invalid keyset: %s"
)

// BuiltinKeyset returns the named keyset. Names are case insensitive.
func BuiltinKeyset(name string) (Keyset, error) {
	if ks, ok := builtin[strings.ToUpper(name)]; ok {
		return ks, nil
	}
	return Keyset{}, curated.Errorf(UnknownKeyset, name)
}

// NewKeyset creates a keyset from a list of key names. Each name must be a
// single printable character and no key may appear more than once.
func NewKeyset(keys []string) (Keyset, error) {
	var ks Keyset

	if len(keys) != NumKeys {
		return ks, curated.Errorf(InvalidKeyset, fmt.Sprintf("%d keys given, %d required", len(keys), NumKeys))
	}

	seen := make(map[KeyCode]bool)
	for i, k := range keys {
		if len(k) != 1 || k[0] <= ' ' || k[0] >= 0x7f {
			return ks, curated.Errorf(InvalidKeyset, fmt.Sprintf("key %q is not a printable character", k))
		}
		c := KeyCode(k[0])
		if seen[c] {
			return ks, curated.Errorf(InvalidKeyset, fmt.Sprintf("key %q appears more than once", k))
		}
		seen[c] = true
		ks[i] = c
	}

	return ks, nil
}

// Index returns the position of the key in the keyset. Returns false if the
// key is not in the keyset.
func (ks Keyset) Index(k KeyCode) (int, bool) {
	for i := range ks {
		if ks[i] == k {
			return i, true
		}
	}
	return -1, false
}

func (ks Keyset) String() string {
	s := strings.Builder{}
	for i, k := range ks {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%d:%s", Offsets[i], k))
	}
	return s.String()
}
