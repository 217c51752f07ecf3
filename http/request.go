package http

import (
	"net"

	"github.com/indigo-web/static/http/method"
)

// Request represents the only part of an HTTP request the server ever looks at: the
// request line. Everything after the target is ignored.
type Request struct {
	// Method is an enum representing the request method. Unknown if the first token isn't
	// a method name recognized verbatim.
	Method method.Method
	// RawMethod is the first token exactly as received.
	RawMethod string
	// Target is the second token exactly as received. Empty if the request line contained
	// no space at all.
	Target string
	// Tokens is the number of space-separated tokens the whole read data was split into.
	Tokens int
	// Remote holds the remote address.
	Remote net.Addr
}

// Malformed reports whether the request line carries no target.
func (r Request) Malformed() bool {
	return r.Tokens < 2
}
