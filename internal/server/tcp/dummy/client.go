package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/static/internal/server/tcp"
)

var _ tcp.Client = new(Client)

// Client returns its data on the first read and io.EOF afterwards. Everything written
// into it is collected.
type Client struct {
	data     []byte
	readErr  error
	writeErr error
	read     bool
	Written  []byte
	Reads    int
	Closed   int
}

func NewClient(data []byte) *Client {
	return &Client{data: data}
}

// WithReadError makes the first read return the error alongside the data.
func (c *Client) WithReadError(err error) *Client {
	c.readErr = err
	return c
}

// WithWriteError makes every write fail.
func (c *Client) WithWriteError(err error) *Client {
	c.writeErr = err
	return c
}

func (c *Client) Read() ([]byte, error) {
	c.Reads++

	if c.read {
		return nil, io.EOF
	}

	c.read = true

	return c.data, c.readErr
}

func (c *Client) Write(b []byte) error {
	if c.writeErr != nil {
		return c.writeErr
	}

	c.Written = append(c.Written, b...)

	return nil
}

func (*Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 40000}
}

func (c *Client) Close() error {
	c.Closed++
	return nil
}
