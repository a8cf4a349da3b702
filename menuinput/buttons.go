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
	"fmt"
	"strings"

	"github.com/jetsetilly/padbridge/curated"
)

// Buttons is a mask of logical menu buttons. Only the lower 24 bits are used.
type Buttons uint32

// List of valid Buttons values.
const (
	Up Buttons = 1 << iota
	Down
	Left
	Right
	UpAnalogL
	DownAnalogL
	LeftAnalogL
	RightAnalogL
	UpAnalogR
	DownAnalogR
	LeftAnalogR
	RightAnalogR
	ButtonB
	ButtonA
	ButtonX
	ButtonY
	Start
	Select
	L1
	R1
	L2
	R2
	L3
	R3

	// the number of buttons
	numButtons = iota
)

// None is the empty button mask.
const None Buttons = 0

// AllButtons is the mask of every valid button.
const AllButtons Buttons = 1<<numButtons - 1

// the buttons that can put the aggregator into hold mode.
const (
	holdDirections = UpAnalogL | DownAnalogL | LeftAnalogL | RightAnalogL |
		UpAnalogR | DownAnalogR | LeftAnalogR | RightAnalogR
	holdShoulders  = L2 | R2
)

var buttonNames = [numButtons]string{
	"UP", "DOWN", "LEFT", "RIGHT",
	"UP_ANALOG_L", "DOWN_ANALOG_L", "LEFT_ANALOG_L", "RIGHT_ANALOG_L",
	"UP_ANALOG_R", "DOWN_ANALOG_R", "LEFT_ANALOG_R", "RIGHT_ANALOG_R",
	"B", "A", "X", "Y", "START", "SELECT",
	"L1", "R1", "L2", "R2", "L3", "R3",
}

// sentinal error patterns.
const (
	UnknownButton = "menuinput: unknown button (%s)"
)

// ParseButton returns the single button with the name. Names are those
// returned by String() and are case insensitive.
func ParseButton(name string) (Buttons, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range buttonNames {
		if n == name {
			return 1 << i, nil
		}
	}
	return None, curated.Errorf(UnknownButton, name)
}

// Has returns true if any of the buttons in the argument are set.
func (b Buttons) Has(o Buttons) bool {
	return b&o != 0
}

// List returns each button in the mask as a single button value, in bit
// order.
func (b Buttons) List() []Buttons {
	var l []Buttons
	for i := 0; i < numButtons; i++ {
		if b&(1<<i) != 0 {
			l = append(l, 1<<i)
		}
	}
	return l
}

func (b Buttons) String() string {
	if b == None {
		return "NONE"
	}

	s := strings.Builder{}
	for i := 0; i < numButtons; i++ {
		if b&(1<<i) != 0 {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(buttonNames[i])
		}
	}

	if b&^AllButtons != 0 {
		if s.Len() > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%#x", uint32(b&^AllButtons)))
	}

	return s.String()
}
