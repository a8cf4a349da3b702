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
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/padbridge/logger"
	"github.com/jetsetilly/padbridge/menuinput"
	"github.com/jetsetilly/padbridge/version"
	"github.com/jetsetilly/padbridge/wire"
)

// size of the platform window.
const (
	windowWidth  = 320
	windowHeight = 200
)

// axis values beyond the deadzone count as a direction or a trigger press.
const deadzone = 0x4000

// Platform is the SDL window, keyboard and gamecontrollers.
type Platform struct {
	window *sdl.Window
	pads   map[sdl.JoystickID]*sdl.GameController
}

// NewPlatform is the preferred method of initialisation for the Platform
// type.
func NewPlatform() (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. we never
	// unlock it
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{
		pads: make(map[sdl.JoystickID]*sdl.GameController),
	}

	plt.window, err = sdl.CreateWindow(version.String(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowWidth, windowHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// gamecontrollers attached at startup are also reported with a
	// CONTROLLERDEVICEADDED event but we open them now so that they are
	// available for the first frame
	for i := 0; i < sdl.NumJoysticks(); i++ {
		plt.openPad(i)
	}

	if len(plt.pads) == 0 {
		logger.Log(logger.Allow, "sdl", "no gamecontrollers found")
	}

	return plt, nil
}

func (plt *Platform) openPad(index int) {
	if !sdl.IsGameController(index) {
		return
	}

	pad := sdl.GameControllerOpen(index)
	if pad == nil || !pad.Attached() {
		return
	}

	id := pad.Joystick().InstanceID()
	if _, ok := plt.pads[id]; ok {
		pad.Close()
		return
	}

	plt.pads[id] = pad
	logger.Logf(logger.Allow, "sdl", "gamecontroller: %s", pad.Name())
}

func (plt *Platform) closePad(id sdl.JoystickID) {
	if pad, ok := plt.pads[id]; ok {
		logger.Logf(logger.Allow, "sdl", "gamecontroller removed: %s", pad.Name())
		pad.Close()
		delete(plt.pads, id)
	}
}

// Poll processes pending SDL events. Returns true if the window has been
// closed.
func (plt *Platform) Poll() bool {
	var quit bool

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				plt.openPad(int(ev.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				plt.closePad(ev.Which)
			}
		}
	}

	return quit
}

// IsPhysicalKeyDown implements the keyboard.Physical interface.
func (plt *Platform) IsPhysicalKeyDown(key wire.KeyCode) bool {
	sc := sdl.GetScancodeFromKey(sdl.Keycode(key))
	if sc == sdl.SCANCODE_UNKNOWN {
		return false
	}
	state := sdl.GetKeyboardState()
	return int(sc) < len(state) && state[sc] != 0
}

// Sample implements the menuinput.Sampler interface. The result is the
// combination of every attached gamecontroller.
func (plt *Platform) Sample() menuinput.Buttons {
	var b menuinput.Buttons
	for _, pad := range plt.pads {
		b |= samplePad(pad)
	}
	return b
}

// Destroy the window and close all gamecontrollers.
func (plt *Platform) Destroy() error {
	for id := range plt.pads {
		plt.closePad(id)
	}

	if plt.window != nil {
		if err := plt.window.Destroy(); err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
		plt.window = nil
	}

	sdl.Quit()

	return nil
}
