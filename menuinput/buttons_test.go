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

package menuinput_test

import (
	"testing"

	"github.com/jetsetilly/padbridge/curated"
	"github.com/jetsetilly/padbridge/menuinput"
	"github.com/jetsetilly/padbridge/test"
)

func TestButtons(t *testing.T) {
	// the order of the buttons is fixed
	test.ExpectEquality(t, menuinput.Up, menuinput.Buttons(1<<0))
	test.ExpectEquality(t, menuinput.UpAnalogL, menuinput.Buttons(1<<4))
	test.ExpectEquality(t, menuinput.ButtonB, menuinput.Buttons(1<<12))
	test.ExpectEquality(t, menuinput.R3, menuinput.Buttons(1<<23))
	test.ExpectEquality(t, menuinput.AllButtons, menuinput.Buttons(0xffffff))

	test.ExpectEquality(t, menuinput.None.String(), "NONE")
	test.ExpectEquality(t, (menuinput.Up | menuinput.ButtonA | menuinput.L2).String(), "UP A L2")
	test.ExpectEquality(t, (menuinput.Down | 1<<30).String(), "DOWN 0x40000000")

	test.ExpectEquality(t, len((menuinput.Up | menuinput.R3).List()), 2)
	test.ExpectSuccess(t, (menuinput.Up | menuinput.R3).Has(menuinput.R3|menuinput.L3))
	test.ExpectFailure(t, menuinput.Up.Has(menuinput.Down))
}

func TestParseButton(t *testing.T) {
	for _, b := range menuinput.AllButtons.List() {
		p, err := menuinput.ParseButton(b.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, b)
	}

	b, err := menuinput.ParseButton(" up_analog_l ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, menuinput.UpAnalogL)

	_, err = menuinput.ParseButton("Z")
	test.ExpectSuccess(t, curated.Is(err, menuinput.UnknownButton))
}
