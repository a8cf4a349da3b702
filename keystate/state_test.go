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

package keystate_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/padbridge/keystate"
	"github.com/jetsetilly/padbridge/test"
	"github.com/jetsetilly/padbridge/wire"
)

func TestState(t *testing.T) {
	st := keystate.NewState()

	// new state has nothing pressed
	test.ExpectEquality(t, len(st.Snapshot().Pressed()), 0)
	test.ExpectEquality(t, st.Snapshot().String(), "none")

	st.SetPressed('q', true)
	test.ExpectSuccess(t, st.IsPressed('q'))
	test.ExpectFailure(t, st.IsPressed('r'))

	// the full range of key codes is addressable
	st.SetPressed(255, true)
	test.ExpectSuccess(t, st.IsPressed(255))
	st.SetPressed(0, true)
	test.ExpectSuccess(t, st.IsPressed(0))
	st.SetPressed(0, false)
	st.SetPressed(255, false)

	test.ExpectEquality(t, st.Snapshot().String(), "q")

	// last write wins
	st.SetPressed('q', false)
	test.ExpectFailure(t, st.IsPressed('q'))
	st.SetPressed('q', true)
	st.SetPressed('q', true)
	test.ExpectSuccess(t, st.IsPressed('q'))
}

func TestApply(t *testing.T) {
	st := keystate.NewState()

	st.Apply([]wire.Delta{
		{Key: 'a', Pressed: true},
		{Key: 'b', Pressed: true},
		{Key: 'a', Pressed: false},
	})
	test.ExpectFailure(t, st.IsPressed('a'))
	test.ExpectSuccess(t, st.IsPressed('b'))

	// applying nothing changes nothing
	before := st.Snapshot()
	st.Apply(nil)
	test.ExpectEquality(t, st.Snapshot(), before)
}

func TestConcurrentAccess(t *testing.T) {
	st := keystate.NewState()

	var wg sync.WaitGroup

	// two writers with disjoint keys and one reader. run with the race
	// detector for this test to be meaningful
	for _, ks := range []wire.Keyset{wire.KeysetPort0, wire.KeysetPort1} {
		wg.Add(1)
		go func(ks wire.Keyset) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				for _, k := range ks {
					st.SetPressed(k, i%2 == 0)
				}
			}
			for _, k := range ks {
				st.SetPressed(k, true)
			}
		}(ks)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = st.IsPressed('q')
			_ = st.Snapshot()
		}
	}()

	wg.Wait()

	for _, k := range wire.KeysetPort0 {
		test.ExpectSuccess(t, st.IsPressed(k), k)
	}
	for _, k := range wire.KeysetPort1 {
		test.ExpectSuccess(t, st.IsPressed(k), k)
	}
	test.ExpectEquality(t, len(st.Snapshot().Pressed()), 2*wire.NumKeys)
}
