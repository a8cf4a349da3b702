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

package profile

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jetsetilly/padbridge/curated"
)

// sentinal error patterns.
const (
	WatchError = "profile: watch: %v"
)

// the delay between the last change to the file and the reload. editors
// often write a file in more than one step.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads a profile file when it changes.
type Watcher struct {
	path     string
	onChange func(*Profile)
	onError  func(error)

	fsWatcher *fsnotify.Watcher

	crit     sync.Mutex
	debounce *time.Timer

	// scheduled and running reloads. Close() waits for these to finish
	inflight sync.WaitGroup

	done chan bool
}

// NewWatcher is the preferred method of initialisation for the Watcher type.
// The onChange function is called with the new profile each time the file
// changes and the new profile is valid. The onError function is called if the
// changed file cannot be loaded. Both functions are called from a goroutine
// other than the one that called NewWatcher().
func NewWatcher(path string, onChange func(*Profile), onError func(error)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(WatchError, err)
	}

	// watching the directory rather than the file means that the watch
	// survives the file being replaced
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, curated.Errorf(WatchError, err)
	}

	w := &Watcher{
		path:      path,
		onChange:  onChange,
		onError:   onError,
		fsWatcher: fsWatcher,
		done:      make(chan bool),
	}

	go w.watchLoop()

	return w, nil
}

func (w *Watcher) watchLoop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			w.crit.Lock()
			if w.debounce != nil && w.debounce.Stop() {
				w.inflight.Done()
			}
			w.inflight.Add(1)
			w.debounce = time.AfterFunc(debounceDelay, w.reload)
			w.crit.Unlock()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(curated.Errorf(WatchError, err))
			}
		}
	}
}

func (w *Watcher) reload() {
	defer w.inflight.Done()

	prf, err := Load(w.path)
	if err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	if w.onChange != nil {
		w.onChange(prf)
	}
}

// Path returns the path of the file being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching the file. A reload that is waiting for the debounce
// delay is cancelled. A reload that has already begun is allowed to finish
// and Close() does not return until it has. The onChange and onError
// functions are never called after Close() returns.
func (w *Watcher) Close() error {
	err := w.fsWatcher.Close()
	<-w.done

	w.crit.Lock()
	if w.debounce != nil && w.debounce.Stop() {
		w.inflight.Done()
	}
	w.crit.Unlock()

	w.inflight.Wait()

	return err
}
