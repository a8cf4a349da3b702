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

package listener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/padbridge/curated"
	"github.com/jetsetilly/padbridge/keystate"
	"github.com/jetsetilly/padbridge/logger"
	"github.com/jetsetilly/padbridge/wire"
)

// sentinal error patterns.
const (
	BindFailure    = "listener: bind %s: %v"
	AlreadyRunning = "listener: %s already running"
)

// the receive buffer is larger than any valid datagram. datagrams longer than
// the buffer are truncated by the socket, which is harmless because bytes
// after the last key flag are ignored.
const bufferSize = 1024

// pause after a receive error before trying again.
const receiveErrorPause = 10 * time.Millisecond

// Config for a single Listener.
type Config struct {
	// Name is used in log entries. if empty the address is used
	Name string

	// Addr is the local address to bind to, in the form accepted by
	// net.ResolveUDPAddr. "" is the same as ":0"
	Addr string

	// the keyset used to decode datagrams arriving at this listener
	Keyset wire.Keyset
}

// DefaultConfigs are the two listeners used when no profile is specified.
func DefaultConfigs() []Config {
	return []Config{
		{Name: "port0", Addr: ":5000", Keyset: wire.KeysetPort0},
		{Name: "port1", Addr: ":5001", Keyset: wire.KeysetPort1},
	}
}

func (cfg Config) String() string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return cfg.Addr
}

// Stats are the datagram counters for a listener.
type Stats struct {
	// every datagram read from the socket
	Received uint64

	// datagrams that were decoded and applied to the shared state
	Applied uint64

	// datagrams that were too short or had the wrong marker
	Dropped uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("received %d, applied %d, dropped %d", s.Received, s.Applied, s.Dropped)
}

// Listener receives datagrams on a single UDP socket.
type Listener struct {
	cfg   Config
	state *keystate.State

	// permission for logging. usually logger.Allow
	perm logger.Permission

	// the critical section protects conn and done. Start() and Stop() can
	// be called from different goroutines
	crit sync.Mutex
	conn *net.UDPConn
	done chan bool

	running atomic.Bool

	received atomic.Uint64
	applied  atomic.Uint64
	dropped  atomic.Uint64
}

// NewListener is the preferred method of initialisation for the Listener
// type. The listener does not bind until Start() is called.
func NewListener(cfg Config, state *keystate.State, perm logger.Permission) *Listener {
	if perm == nil {
		perm = logger.Allow
	}
	return &Listener{
		cfg:   cfg,
		state: state,
		perm:  perm,
	}
}

// Start binds the socket and starts the receive goroutine. A bind failure is
// logged and returned as a BindFailure error.
func (l *Listener) Start() error {
	l.crit.Lock()
	defer l.crit.Unlock()

	if l.running.Load() {
		return curated.Errorf(AlreadyRunning, l.cfg)
	}

	lc := net.ListenConfig{Control: reuseAddr}
	pc, err := lc.ListenPacket(context.Background(), "udp", l.cfg.Addr)
	if err != nil {
		err = curated.Errorf(BindFailure, l.cfg.Addr, err)
		logger.Log(l.perm, "listener", err)
		return err
	}

	l.conn = pc.(*net.UDPConn)
	l.done = make(chan bool)
	l.running.Store(true)

	logger.Logf(l.perm, "listener", "%s: listening on %s [%s]", l.cfg, l.conn.LocalAddr(), l.cfg.Keyset)

	go l.receive(l.conn, l.done)

	return nil
}

// Stop closes the socket and waits for the receive goroutine to end. It is
// safe to call Stop() on a listener that is not running.
func (l *Listener) Stop() error {
	l.crit.Lock()
	defer l.crit.Unlock()

	if !l.running.CompareAndSwap(true, false) {
		return nil
	}

	err := l.conn.Close()
	<-l.done

	logger.Logf(l.perm, "listener", "%s: stopped (%s)", l.cfg, l.Stats())

	return err
}

// Running returns true if the listener has been started and not stopped.
func (l *Listener) Running() bool {
	return l.running.Load()
}

// Addr returns the bound address of the listener. Returns nil if the listener
// is not running.
func (l *Listener) Addr() net.Addr {
	l.crit.Lock()
	defer l.crit.Unlock()

	if !l.running.Load() {
		return nil
	}
	return l.conn.LocalAddr()
}

// Config returns the configuration used to create the listener.
func (l *Listener) Config() Config {
	return l.cfg
}

// Stats returns the current datagram counters. The counters are loaded
// individually so the sum of applied and dropped may briefly lag received.
func (l *Listener) Stats() Stats {
	return Stats{
		Received: l.received.Load(),
		Applied:  l.applied.Load(),
		Dropped:  l.dropped.Load(),
	}
}

func (l *Listener) receive(conn *net.UDPConn, done chan bool) {
	defer close(done)

	buf := make([]byte, bufferSize)

	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			logger.Logf(l.perm, "listener", "%s: %v", l.cfg, err)
			time.Sleep(receiveErrorPause)
			continue
		}

		l.received.Add(1)

		deltas := wire.Decode(buf[:n], l.cfg.Keyset)
		if deltas == nil {
			l.dropped.Add(1)
			continue
		}

		l.state.Apply(deltas)
		l.applied.Add(1)
	}
}
