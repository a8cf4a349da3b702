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

// HoldDelay is the number of frames after entering hold mode before the held
// buttons start to repeat.
const HoldDelay = 7

// Context is the part of the menu currently being navigated. It changes which
// buttons can enter hold mode.
type Context int

// List of valid Context values.
const (
	ContextDefault Context = iota
	ContextSettings
)

func (c Context) String() string {
	switch c {
	case ContextDefault:
		return "default"
	case ContextSettings:
		return "settings"
	}
	return "unknown context"
}

// HoldState describes the hold mode of the Aggregator.
type HoldState struct {
	Active bool

	// the frame at which the held buttons begin to repeat. only meaningful
	// when Active is true
	Deadline uint64
}

// Sampler returns the logical buttons that are currently down.
type Sampler interface {
	Sample() Buttons
}

// Consumer receives the effective input once per frame.
type Consumer interface {
	Consume(frame uint64, input Buttons)
}

// ConsumerFunc allows a function to be used as a Consumer.
type ConsumerFunc func(frame uint64, input Buttons)

// Consume implements the Consumer interface.
func (f ConsumerFunc) Consume(frame uint64, input Buttons) {
	f(frame, input)
}

// Aggregator turns button samples into menu input. It is not safe for
// concurrent use and is intended to be driven from the frame loop.
type Aggregator struct {
	sampler Sampler
	context Context

	frame    uint64
	previous Buttons
	hold     HoldState
}

// NewAggregator is the preferred method of initialisation for the Aggregator
// type. The sampler is only required by Poll() and can be nil if only Step()
// is used.
func NewAggregator(sampler Sampler) *Aggregator {
	return &Aggregator{
		sampler: sampler,
	}
}

// Poll samples the buttons exactly once and steps the aggregator with the
// sample.
func (agg *Aggregator) Poll() Buttons {
	if agg.sampler == nil {
		return agg.Step(None)
	}
	return agg.Step(agg.sampler.Sample())
}

// Step advances the aggregator by one frame using the sample and returns the
// effective input for that frame.
func (agg *Aggregator) Step(sample Buttons) Buttons {
	agg.frame++

	sample &= AllButtons
	trigger := sample &^ agg.previous
	agg.previous = sample

	candidate := sample.Has(holdDirections)
	if agg.context != ContextSettings {
		candidate = candidate || sample.Has(holdShoulders)
	}

	if !candidate {
		agg.hold.Active = false
		return trigger
	}

	if !agg.hold.Active {
		agg.hold.Active = true
		agg.hold.Deadline = agg.frame + HoldDelay
	}

	if agg.frame >= agg.hold.Deadline {
		return sample
	}

	return trigger
}

// SetContext changes the menu context. It takes effect from the next frame.
func (agg *Aggregator) SetContext(context Context) {
	agg.context = context
}

// Context returns the current menu context.
func (agg *Aggregator) Context() Context {
	return agg.context
}

// Hold returns the current hold state.
func (agg *Aggregator) Hold() HoldState {
	return agg.hold
}

// Frame returns the number of the most recent frame. The first call to Step()
// or Poll() is frame one.
func (agg *Aggregator) Frame() uint64 {
	return agg.frame
}

// Reset forgets the previous sample and leaves hold mode. The frame counter
// and context are unchanged.
func (agg *Aggregator) Reset() {
	agg.previous = None
	agg.hold = HoldState{}
}
