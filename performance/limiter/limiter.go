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

// Package limiter paces a loop to a fixed rate.
//
// A new FpsLimiter is created with:
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// The loop then waits for each frame:
//
//	for fps.Wait() {
//		frame()
//	}
//
// Wait() returns false once Stop() has been called.
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/padbridge/curated"
)

// sentinal error patterns.
const (
	InvalidRate = "limiter: invalid rate (%d)"
)

// FpsLimiter triggers a fixed number of times per second.
type FpsLimiter struct {
	framesPerSecond atomic.Int64
	secondsPerFrame atomic.Int64 // time.Duration

	tick chan bool
	stop chan bool
	done chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		tick: make(chan bool),
		stop: make(chan bool),
		done: make(chan bool),
	}

	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}

	go lim.run()

	return lim, nil
}

// the ticker goroutine adjusts the sleep duration on every frame to
// compensate for time lost waiting for the receiver.
func (lim *FpsLimiter) run() {
	defer close(lim.done)

	adjusted := time.Duration(lim.secondsPerFrame.Load())
	t := time.Now()

	for {
		select {
		case lim.tick <- true:
		case <-lim.stop:
			return
		}

		spf := time.Duration(lim.secondsPerFrame.Load())
		if adjusted > 0 {
			time.Sleep(adjusted)
		}

		nt := time.Now()
		adjusted -= nt.Sub(t) - spf

		// don't allow the adjustment to run away if the receiver has been
		// away for a long time
		if adjusted < -spf || adjusted > spf*2 {
			adjusted = spf
		}

		t = nt
	}
}

// SetLimit changes the rate of the FpsLimiter.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(InvalidRate, framesPerSecond)
	}
	lim.framesPerSecond.Store(int64(framesPerSecond))
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(framesPerSecond)))
	return nil
}

// Limit returns the current rate.
func (lim *FpsLimiter) Limit() int {
	return int(lim.framesPerSecond.Load())
}

// Wait blocks until the next frame is due. Returns false if the limiter has
// been stopped.
func (lim *FpsLimiter) Wait() bool {
	select {
	case <-lim.tick:
		return true
	case <-lim.done:
		return false
	}
}

// Stop the limiter. Any call to Wait() will return false. Stop must only be
// called once.
func (lim *FpsLimiter) Stop() {
	close(lim.stop)
	<-lim.done
}
