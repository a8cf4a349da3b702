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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jetsetilly/padbridge/bridge"
	"github.com/jetsetilly/padbridge/injector"
	"github.com/jetsetilly/padbridge/logger"
	"github.com/jetsetilly/padbridge/modalflag"
	"github.com/jetsetilly/padbridge/performance"
	"github.com/jetsetilly/padbridge/prefs"
	"github.com/jetsetilly/padbridge/profile"
	"github.com/jetsetilly/padbridge/sdlinput"
	"github.com/jetsetilly/padbridge/statsview"
	"github.com/jetsetilly/padbridge/version"
	"github.com/jetsetilly/padbridge/wire"
)

// exit values.
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

// number of log entries printed when a mode ends with an error.
const tailOnError = 10

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the value
// to be used with os.Exit(). The RUN mode opens the SDL platform so launch()
// must be called from the main thread.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "INJECT", "VERSION")
	prefsArg := md.AddString("prefs", "", "preference values overriding those on disk (key::value; key::value)")
	md.AdditionalHelp("the default mode is RUN")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
	}

	// ctrl-c and SIGTERM end the RUN and HEADLESS modes gracefully. the
	// INJECT mode reads ctrl-c itself while the terminal is in raw mode
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output, false)

	case "HEADLESS":
		err = run(ctx, md, output, true)

	case "INJECT":
		err = inject(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		logger.Tail(output, tailOnError)
		return exitMode
	}

	return exitOK
}

// run the bridge. in headless mode the SDL platform is never opened and the
// frame loop can be profiled and run for a fixed duration.
func run(ctx context.Context, md *modalflag.Modes, output io.Writer, headless bool) error {
	pref, err := bridge.NewPreferences()
	if err != nil {
		return err
	}

	md.NewMode()
	profilePath := md.AddString("profile", pref.Profile.String(), "profile file describing listeners and binds (.toml or .yaml)")
	fps := md.AddInt("fps", pref.FPS.Get().(int), "frames per second of the frame loop")
	log := md.AddBool("log", pref.LogEcho.Get().(bool), "echo log to stdout")
	stats := md.AddInt("stats", pref.StatsInterval.Get().(int), "seconds between stats log entries (0 to disable)")
	useStatsview := md.AddBool("statsview", false, fmt.Sprintf("run stats server on %s", statsview.Address))

	var pprofArg *string
	var duration *int
	if headless {
		pprofArg = md.AddString("pprof", "NONE", "runtime profiles to create: CPU, MEM, ALL")
		duration = md.AddInt("duration", 0, "seconds to run for (0 to run until interrupted)")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if *useStatsview {
		if !statsview.Available() {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		} else {
			defer statsview.Launch(output)()
		}
	}

	b, closeBridge, err := startBridge(*profilePath)
	if err != nil {
		return err
	}
	defer closeBridge()

	cfg := bridge.FrameLoopConfig{
		FPS:           *fps,
		Consumer:      bridge.LogConsumer{Perm: logger.Allow},
		StatsInterval: time.Duration(*stats) * time.Second,
	}

	if headless {
		prf, err := performance.ParseProfile(*pprofArg)
		if err != nil {
			return err
		}

		if *duration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(*duration)*time.Second)
			defer cancel()
		}

		return performance.RunProfiler(prf, "padbridge_headless", func() error {
			return b.FrameLoop(ctx, cfg)
		})
	}

	if pref.SDL.Get().(bool) {
		plt, err := sdlinput.NewPlatform()
		if err != nil {
			return err
		}
		defer func() {
			if err := plt.Destroy(); err != nil {
				logger.Log(logger.Allow, "sdl", err)
			}
		}()
		cfg.Platform = plt
	}

	return b.FrameLoop(ctx, cfg)
}

// startBridge creates and starts a bridge with the profile at the path. An
// empty path means the default profile. A profile file is watched and the
// bridge is reloaded whenever the file changes.
//
// Listeners that fail to bind are logged but are not fatal. The returned
// function stops the watcher and the bridge.
func startBridge(profilePath string) (*bridge.Bridge, func(), error) {
	prf := profile.Default()
	if profilePath != "" {
		var err error
		prf, err = profile.Load(profilePath)
		if err != nil {
			return nil, nil, err
		}
	}

	b, err := bridge.NewBridge(prf, logger.Allow)
	if err != nil {
		return nil, nil, err
	}

	if err := b.Start(); err != nil {
		logger.Log(logger.Allow, "padbridge", err)
	}

	var watcher *profile.Watcher
	if profilePath != "" {
		watcher, err = profile.NewWatcher(profilePath,
			func(prf *profile.Profile) {
				if err := b.Reload(prf); err != nil {
					logger.Log(logger.Allow, "padbridge", err)
				}
			},
			func(err error) {
				logger.Log(logger.Allow, "padbridge", err)
			},
		)
		if err != nil {
			_ = b.Stop()
			return nil, nil, err
		}
	}

	return b, func() {
		if watcher != nil {
			if err := watcher.Close(); err != nil {
				logger.Log(logger.Allow, "padbridge", err)
			}
		}
		if err := b.Stop(); err != nil {
			logger.Log(logger.Allow, "padbridge", err)
		}
	}, nil
}

// inject toggles keys on two pads and sends the pads to a running bridge.
func inject(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	port0 := md.AddString("port0", "127.0.0.1:5000", "address of the listener using the port0 keyset")
	port1 := md.AddString("port1", "127.0.0.1:5001", "address of the listener using the port1 keyset")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var targets []injector.Target
	for _, t := range []struct {
		addr   string
		keyset wire.Keyset
	}{
		{addr: *port0, keyset: wire.KeysetPort0},
		{addr: *port1, keyset: wire.KeysetPort1},
	} {
		snd, err := injector.NewSender(t.addr)
		if err != nil {
			return err
		}
		defer snd.Close()
		targets = append(targets, injector.Target{Pad: injector.NewPad(t.keyset), Sender: snd})
	}

	fmt.Fprintf(output, "port0 %s: %s\n", *port0, wire.KeysetPort0)
	fmt.Fprintf(output, "port1 %s: %s\n", *port1, wire.KeysetPort1)

	return injector.RunTerminal(injector.NewSession(targets, output), output)
}
