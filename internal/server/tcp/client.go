package tcp

import (
	"net"
	"time"
)

type Client interface {
	Read() ([]byte, error)
	Write([]byte) error
	Remote() net.Addr
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	timeout time.Duration
	closed  bool
}

// NewClient wraps the connection. Every Read is a single read into the buff, so nothing
// beyond len(buff) bytes is ever seen. Zero timeout means reads may block forever.
func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		conn:    conn,
		buff:    buff,
		timeout: timeout,
	}
}

func (c *client) Read() ([]byte, error) {
	if c.timeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			return nil, err
		}
	}

	n, err := c.conn.Read(c.buff)

	return c.buff[:n], err
}

func (c *client) Write(b []byte) error {
	_, err := c.conn.Write(b)

	return err
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the underlying connection. Subsequent calls are no-op.
func (c *client) Close() error {
	if c.closed {
		return nil
	}

	c.closed = true

	return c.conn.Close()
}
