package transport

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/static/config"
)

type Logger interface {
	Printf(format string, v ...any)
}

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

// TCP accepts connections one at a time. The callback runs in the accepting goroutine,
// so the next connection isn't accepted until the current one is fully served. Pending
// connections wait in the OS backlog.
type TCP struct {
	l      listener
	stop   *atomic.Bool
	logger Logger
	mu     sync.Mutex
	// current is the connection being served at the moment, if any.
	current net.Conn
}

func NewTCP(logger Logger) *TCP {
	return &TCP{
		stop:   new(atomic.Bool),
		logger: logger,
	}
}

func bindTCP(addr string) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

// Bind obtains the listening socket. Failures are returned as is and never retried.
func (t *TCP) Bind(addr string) (err error) {
	t.logger.Printf("attempting to launch server on %s", addr)

	l, err := bindTCP(addr)
	if err != nil {
		t.logger.Printf("unable to obtain %s: %s", addr, err)
		return fmt.Errorf("bind %s: %w", addr, err)
	}

	t.l = l
	t.logger.Printf("server has started by obtaining %s", l.Addr())

	return nil
}

// Addr returns the bound address. Must be called after a successful Bind.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen runs the accept loop until Stop is called or Accept fails permanently. Every
// accepted connection is passed to the callback and closed after it returns, if it
// wasn't yet. Temporary accept errors (e.g. running out of file descriptors) are logged
// and retried after a growing delay.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	var backoff time.Duration
	waiting := true

	for !t.stop.Load() {
		if waiting {
			t.logger.Printf("waiting for a connection")
			waiting = false
		}

		err := t.l.SetDeadline(time.Now().Add(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			if t.stop.Load() {
				return nil
			}

			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			switch {
			case errors.Is(err, os.ErrDeadlineExceeded):
				continue
			case t.stop.Load() && errors.Is(err, net.ErrClosed):
				return nil
			case isTemporary(err):
				backoff = nextBackoff(backoff)
				t.logger.Printf("accept: %s; retrying in %s", err, backoff)
				time.Sleep(backoff)
				continue
			}

			t.logger.Printf("accept: %s", err)
			return err
		}

		backoff = 0
		t.logger.Printf("registered a connection from %s", conn.RemoteAddr())
		t.serve(conn, cb)
		waiting = true
	}

	return nil
}

func (t *TCP) serve(conn net.Conn, cb func(conn net.Conn)) {
	t.mu.Lock()
	t.current = conn
	stopped := t.stop.Load()
	t.mu.Unlock()

	if stopped {
		interrupt(conn)
	}

	cb(conn)

	t.mu.Lock()
	t.current = nil
	t.mu.Unlock()

	_ = conn.Close()
}

// Stop makes the accept loop exit. It's noticed within the accept loop interrupt period.
// A connection being served at the moment gets its pending read interrupted, so a client
// that never sends anything can't hold the server up. The response is still written.
func (t *TCP) Stop() {
	t.stop.Store(true)

	t.mu.Lock()
	if t.current != nil {
		interrupt(t.current)
	}
	t.mu.Unlock()
}

func interrupt(conn net.Conn) {
	_ = conn.SetReadDeadline(time.Now())
}

const (
	minBackoff = 5 * time.Millisecond
	maxBackoff = time.Second
)

func nextBackoff(prev time.Duration) time.Duration {
	if prev == 0 {
		return minBackoff
	}

	return min(2*prev, maxBackoff)
}

func isTemporary(err error) bool {
	var temp interface{ Temporary() bool }
	if errors.As(err, &temp) && temp.Temporary() {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Close closes the listening socket.
func (t *TCP) Close() error {
	if t.l == nil {
		return nil
	}

	return t.l.Close()
}
