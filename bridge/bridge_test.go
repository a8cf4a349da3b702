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

package bridge_test

import (
	"context"
	"net"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/padbridge/bridge"
	"github.com/jetsetilly/padbridge/curated"
	"github.com/jetsetilly/padbridge/logger"
	"github.com/jetsetilly/padbridge/menuinput"
	"github.com/jetsetilly/padbridge/prefs"
	"github.com/jetsetilly/padbridge/profile"
	"github.com/jetsetilly/padbridge/test"
	"github.com/jetsetilly/padbridge/wire"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// profile with listeners on random loopback ports.
func loopbackProfile(keysets ...string) *profile.Profile {
	prf := &profile.Profile{}
	for _, ks := range keysets {
		prf.Listeners = append(prf.Listeners, profile.Listener{Host: "127.0.0.1", Keyset: ks})
	}
	return prf
}

func sendTo(t *testing.T, addr net.Addr, d []byte) {
	t.Helper()
	conn, err := net.Dial("udp", addr.String())
	test.DemandSuccess(t, err)
	defer conn.Close()
	_, err = conn.Write(d)
	test.DemandSuccess(t, err)
}

func pressAt(offset int) []byte {
	var pressed [wire.NumKeys]bool
	for i, o := range wire.Offsets {
		pressed[i] = o == offset
	}
	return wire.Encode(pressed)
}

func TestBridge(t *testing.T) {
	b, err := bridge.NewBridge(loopbackProfile("port0", "port1"), logger.Allow)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, b.Start())
	defer b.Stop()

	l := b.Listeners()
	test.DemandEquality(t, len(l), 2)

	sendTo(t, l[0].Addr(), pressAt(13))
	sendTo(t, l[1].Addr(), pressAt(13))

	require.Eventually(t, func() bool {
		return b.Keyboard().QueryKeyDown('q') && b.Keyboard().QueryKeyDown('r')
	}, waitFor, tick)

	require.Eventually(t, func() bool { return b.Stats().Applied == 2 }, waitFor, tick)
}

func TestReload(t *testing.T) {
	b, err := bridge.NewBridge(loopbackProfile("port0"), logger.Allow)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, b.Start())
	defer b.Stop()

	old := b.Listeners()[0]
	sendTo(t, old.Addr(), pressAt(1))
	require.Eventually(t, func() bool { return b.State().IsPressed('x') }, waitFor, tick)

	// the new profile binds UP to a different key
	prf := loopbackProfile("port1")
	prf.Binds = map[string][]string{"UP": {"m"}}
	test.DemandSuccess(t, b.Reload(prf))

	test.ExpectFailure(t, old.Running())
	test.DemandEquality(t, len(b.Listeners()), 1)
	test.ExpectEquality(t, b.Listeners()[0].Config().Keyset, wire.KeysetPort1)
	test.ExpectEquality(t, b.Binds()[menuinput.Up][0], wire.KeyCode('m'))

	// key state survives the reload
	test.ExpectSuccess(t, b.State().IsPressed('x'))

	sendTo(t, b.Listeners()[0].Addr(), pressAt(1))
	require.Eventually(t, func() bool { return b.State().IsPressed('v') }, waitFor, tick)

	// an unusable profile leaves the running listeners alone
	bad := loopbackProfile("nosuchkeyset")
	test.ExpectFailure(t, b.Reload(bad))
	test.ExpectSuccess(t, b.Listeners()[0].Running())
	test.ExpectEquality(t, b.Profile(), prf)
}

func TestReloadAfterStop(t *testing.T) {
	b, err := bridge.NewBridge(loopbackProfile("port0"), logger.Allow)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, b.Start())
	test.ExpectEquality(t, b.Running(), 1)

	test.ExpectSuccess(t, b.Stop())
	test.ExpectEquality(t, b.Running(), 0)

	// a reload arriving after the bridge has stopped starts nothing
	err = b.Reload(loopbackProfile("port0", "port1"))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bridge.Stopped))
	test.ExpectEquality(t, b.Running(), 0)
	test.ExpectEquality(t, len(b.Listeners()), 1)

	// a restarted bridge accepts reloads again
	test.DemandSuccess(t, b.Start())
	defer b.Stop()
	test.ExpectSuccess(t, b.Reload(loopbackProfile("port0", "port1")))
	test.ExpectEquality(t, b.Running(), 2)
}

func TestBindFailureIsNotFatal(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	test.DemandSuccess(t, err)
	defer pc.Close()
	port := pc.LocalAddr().(*net.UDPAddr).Port

	prf := loopbackProfile("port0")
	prf.Listeners = append(prf.Listeners, profile.Listener{Host: "127.0.0.1", Port: port, Keyset: "port1"})

	b, err := bridge.NewBridge(prf, logger.Allow)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, b.Start())
	defer b.Stop()

	// the first listener is still running
	l := b.Listeners()
	test.ExpectSuccess(t, l[0].Running())
	test.ExpectFailure(t, l[1].Running())

	sendTo(t, l[0].Addr(), pressAt(29))
	require.Eventually(t, func() bool { return b.State().IsPressed('d') }, waitFor, tick)
}

// platform with a physical keyboard and a joypad. requests the end of the
// program after a fixed number of frames.
type platform struct {
	frames int
	keys   map[wire.KeyCode]bool
	joypad menuinput.Buttons
}

func (p *platform) IsPhysicalKeyDown(k wire.KeyCode) bool {
	return p.keys[k]
}

func (p *platform) Sample() menuinput.Buttons {
	return p.joypad
}

func (p *platform) Poll() bool {
	p.frames--
	return p.frames < 0
}

// consumer that records every frame of input.
type consumer struct {
	crit   sync.Mutex
	inputs []menuinput.Buttons
}

func (c *consumer) Consume(frame uint64, input menuinput.Buttons) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.inputs = append(c.inputs, input)
}

func TestFrameLoop(t *testing.T) {
	b, err := bridge.NewBridge(loopbackProfile(), logger.Allow)
	test.DemandSuccess(t, err)

	// injected 'w' is UP, physical 'x' is A and the joypad is pressing START
	b.State().SetPressed('w', true)
	plt := &platform{
		frames: 10,
		keys:   map[wire.KeyCode]bool{'x': true},
		joypad: menuinput.Start,
	}
	c := &consumer{}

	err = b.FrameLoop(context.Background(), bridge.FrameLoopConfig{
		FPS:      500,
		Platform: plt,
		Consumer: c,
	})
	test.ExpectSuccess(t, err)

	// one input per frame. only the first frame has an edge
	test.DemandEquality(t, len(c.inputs), 10)
	test.ExpectEquality(t, c.inputs[0], menuinput.Up|menuinput.ButtonA|menuinput.Start)
	for i := 1; i < len(c.inputs); i++ {
		test.ExpectEquality(t, c.inputs[i], menuinput.None, i)
	}

	// the physical keyboard is removed when the frame loop ends
	test.ExpectFailure(t, b.Keyboard().QueryKeyDown('x'))
}

func TestFrameLoopContext(t *testing.T) {
	b, err := bridge.NewBridge(loopbackProfile(), logger.Allow)
	test.DemandSuccess(t, err)

	b.SetMenuContext(menuinput.ContextSettings)
	test.ExpectEquality(t, b.MenuContext(), menuinput.ContextSettings)

	// injected 'q' is L2, which does not repeat in the settings context
	b.State().SetPressed('q', true)

	ctx, cancel := context.WithCancel(context.Background())
	c := &consumer{}
	var frames int
	counted := menuinput.ConsumerFunc(func(frame uint64, input menuinput.Buttons) {
		c.Consume(frame, input)
		frames++
		if frames == 20 {
			cancel()
		}
	})

	err = b.FrameLoop(ctx, bridge.FrameLoopConfig{FPS: 500, Consumer: counted})
	test.ExpectSuccess(t, err)

	test.DemandEquality(t, len(c.inputs), 20)
	test.ExpectEquality(t, c.inputs[0], menuinput.L2)
	for i := 1; i < len(c.inputs); i++ {
		test.ExpectEquality(t, c.inputs[i], menuinput.None, i)
	}
}

func TestFrameLoopInvalidFPS(t *testing.T) {
	b, err := bridge.NewBridge(loopbackProfile(), logger.Allow)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, b.FrameLoop(context.Background(), bridge.FrameLoopConfig{FPS: 0}))
}

func TestLogConsumer(t *testing.T) {
	logger.Clear()

	c := bridge.LogConsumer{}
	c.Consume(1, menuinput.None)
	c.Consume(2, menuinput.Up|menuinput.ButtonA)

	tw := &test.CompareWriter{}
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "menu: frame 2: UP A\n")
}

func TestPreferences(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := bridge.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.FPS.Get(), prefs.Value(60))
	test.ExpectEquality(t, p.SDL.Get(), prefs.Value(true))

	// out of range values are rejected
	test.ExpectFailure(t, p.FPS.Set(0))
	test.ExpectFailure(t, p.StatsInterval.Set(-1))

	test.ExpectSuccess(t, p.FPS.Set(30))
	test.ExpectSuccess(t, p.Save())

	p, err = bridge.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.FPS.Get(), prefs.Value(30))
	test.ExpectSuccess(t, strings.Contains(p.String(), "bridge.fps :: 30"))

	// command line values override saved values
	prefs.PushCommandLineStack("bridge.sdl::false")
	defer prefs.PopCommandLineStack()
	test.ExpectSuccess(t, p.Load())
	test.ExpectEquality(t, p.SDL.Get(), prefs.Value(false))
}
