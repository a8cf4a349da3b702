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

package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/padbridge/menuinput"
)

// gamecontroller buttons. the face buttons are named by position: the bottom
// face button is menuinput.ButtonB and the right face button is
// menuinput.ButtonA.
var buttons = []struct {
	sdl    sdl.GameControllerButton
	button menuinput.Buttons
}{
	{sdl.CONTROLLER_BUTTON_DPAD_UP, menuinput.Up},
	{sdl.CONTROLLER_BUTTON_DPAD_DOWN, menuinput.Down},
	{sdl.CONTROLLER_BUTTON_DPAD_LEFT, menuinput.Left},
	{sdl.CONTROLLER_BUTTON_DPAD_RIGHT, menuinput.Right},
	{sdl.CONTROLLER_BUTTON_A, menuinput.ButtonB},
	{sdl.CONTROLLER_BUTTON_B, menuinput.ButtonA},
	{sdl.CONTROLLER_BUTTON_X, menuinput.ButtonY},
	{sdl.CONTROLLER_BUTTON_Y, menuinput.ButtonX},
	{sdl.CONTROLLER_BUTTON_START, menuinput.Start},
	{sdl.CONTROLLER_BUTTON_BACK, menuinput.Select},
	{sdl.CONTROLLER_BUTTON_LEFTSHOULDER, menuinput.L1},
	{sdl.CONTROLLER_BUTTON_RIGHTSHOULDER, menuinput.R1},
	{sdl.CONTROLLER_BUTTON_LEFTSTICK, menuinput.L3},
	{sdl.CONTROLLER_BUTTON_RIGHTSTICK, menuinput.R3},
}

// axes of a stick and the buttons for the negative and positive directions.
type stick struct {
	x, y sdl.GameControllerAxis

	up, down, left, right menuinput.Buttons
}

var sticks = []stick{
	{
		x: sdl.CONTROLLER_AXIS_LEFTX, y: sdl.CONTROLLER_AXIS_LEFTY,
		up: menuinput.UpAnalogL, down: menuinput.DownAnalogL,
		left: menuinput.LeftAnalogL, right: menuinput.RightAnalogL,
	},
	{
		x: sdl.CONTROLLER_AXIS_RIGHTX, y: sdl.CONTROLLER_AXIS_RIGHTY,
		up: menuinput.UpAnalogR, down: menuinput.DownAnalogR,
		left: menuinput.LeftAnalogR, right: menuinput.RightAnalogR,
	},
}

// analog triggers.
var triggers = []struct {
	sdl    sdl.GameControllerAxis
	button menuinput.Buttons
}{
	{sdl.CONTROLLER_AXIS_TRIGGERLEFT, menuinput.L2},
	{sdl.CONTROLLER_AXIS_TRIGGERRIGHT, menuinput.R2},
}

func samplePad(pad *sdl.GameController) menuinput.Buttons {
	var b menuinput.Buttons

	for _, m := range buttons {
		if pad.Button(m.sdl) != 0 {
			b |= m.button
		}
	}

	for _, s := range sticks {
		b |= axisButtons(pad.Axis(s.x), s.left, s.right)
		b |= axisButtons(pad.Axis(s.y), s.up, s.down)
	}

	for _, t := range triggers {
		if pad.Axis(t.sdl) > deadzone {
			b |= t.button
		}
	}

	return b
}

// axisButtons returns the button for the direction of the axis value, if it
// is outside of the deadzone.
func axisButtons(v int16, negative menuinput.Buttons, positive menuinput.Buttons) menuinput.Buttons {
	switch {
	case v < -deadzone:
		return negative
	case v > deadzone:
		return positive
	}
	return menuinput.None
}
