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
	"context"
	"time"

	"github.com/jetsetilly/padbridge/keyboard"
	"github.com/jetsetilly/padbridge/logger"
	"github.com/jetsetilly/padbridge/menuinput"
	"github.com/jetsetilly/padbridge/performance"
	"github.com/jetsetilly/padbridge/performance/limiter"
)

// Platform is implemented by the platform layer (sdlinput.Platform). It
// provides the physical keyboard and gamecontroller samples.
type Platform interface {
	keyboard.Physical
	menuinput.Sampler

	// Poll processes platform events. Returns true if the platform has
	// requested that the program end
	Poll() bool
}

// FrameLoopConfig is the configuration for FrameLoop().
type FrameLoopConfig struct {
	// frames per second
	FPS int

	// the platform can be nil, in which case only injected keys are sampled
	Platform Platform

	// receives the effective menu input every frame. can be nil
	Consumer menuinput.Consumer

	// interval between stats log entries. zero or less disables the stats
	// log
	StatsInterval time.Duration
}

// bridgeSampler samples the keyboard with the most recent binds. the
// KeySampler is recreated whenever the binds change.
type bridgeSampler struct {
	b      *Bridge
	joypad menuinput.Sampler
	binds  *menuinput.Binds
	ks     *menuinput.KeySampler
}

func (s *bridgeSampler) Sample() menuinput.Buttons {
	if binds := s.b.binds.Load(); binds != s.binds {
		s.binds = binds
		s.ks = menuinput.NewKeySampler(s.b.keyboard, *binds, s.joypad)
	}
	return s.ks.Sample()
}

// FrameLoop runs until the context is cancelled or the platform requests
// that the program end. It must not be called more than once at a time.
func (b *Bridge) FrameLoop(ctx context.Context, cfg FrameLoopConfig) error {
	lim, err := limiter.NewFPSLimiter(cfg.FPS)
	if err != nil {
		return err
	}
	defer lim.Stop()

	sampler := &bridgeSampler{b: b}

	// the platform is both the physical keyboard and the joypad
	if cfg.Platform != nil {
		b.keyboard.SetPhysical(cfg.Platform)
		sampler.joypad = cfg.Platform
		defer b.keyboard.SetPhysical(nil)
	}

	agg := menuinput.NewAggregator(sampler)

	stats := newStatsLog(b, cfg.FPS, cfg.StatsInterval)

	for lim.Wait() {
		if ctx.Err() != nil {
			return nil
		}

		if cfg.Platform != nil && cfg.Platform.Poll() {
			logger.Log(b.perm, "bridge", "quit requested by platform")
			return nil
		}

		agg.SetContext(b.MenuContext())
		input := agg.Poll()

		if cfg.Consumer != nil {
			cfg.Consumer.Consume(agg.Frame(), input)
		}

		stats.frame(agg.Frame())
	}

	return nil
}

// statsLog writes the listener stats and the achieved frame rate to the log
// at a fixed interval.
type statsLog struct {
	b        *Bridge
	fps      int
	interval time.Duration

	last      time.Time
	lastFrame uint64
}

func newStatsLog(b *Bridge, fps int, interval time.Duration) *statsLog {
	return &statsLog{
		b:        b,
		fps:      fps,
		interval: interval,
		last:     time.Now(),
	}
}

func (s *statsLog) frame(frame uint64) {
	if s.interval <= 0 {
		return
	}

	now := time.Now()
	elapsed := now.Sub(s.last)
	if elapsed < s.interval {
		return
	}

	fps, accuracy := performance.CalcFPS(frame-s.lastFrame, elapsed, s.fps)
	logger.Logf(s.b.perm, "stats", "%.2f fps (%.1f%%) %s", fps, accuracy, s.b.Stats())
	logger.Logf(s.b.perm, "stats", "injected keys: %s", s.b.state.Snapshot())

	s.last = now
	s.lastFrame = frame
}

// LogConsumer is a menuinput.Consumer that writes non-empty input to the log.
type LogConsumer struct {
	Perm logger.Permission
}

// Consume implements the menuinput.Consumer interface.
func (c LogConsumer) Consume(frame uint64, input menuinput.Buttons) {
	if input == menuinput.None {
		return
	}
	perm := c.Perm
	if perm == nil {
		perm = logger.Allow
	}
	logger.Logf(perm, "menu", "frame %d: %s", frame, input)
}
