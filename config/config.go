package config

import (
	"time"
)

type (
	NETWriteBufferSize struct {
		Default, Maximal int
	}

	NET struct {
		// ReadBufferSize is the size of the single read performed on every connection. Whatever
		// doesn't fit into it is never seen by the server, so the request line must fit.
		ReadBufferSize int
		// ReadTimeout limits how long the server waits for a client to send its request. As
		// connections are served one at a time, a client sending nothing stalls everyone else.
		// Zero disables the timeout.
		ReadTimeout time.Duration `test:"nullable"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration
		// WriteBufferSize holds the serialized response. It starts at Default and grows to fit
		// the whole response, but a buffer grown beyond Maximal is dropped once the response is
		// sent, so a single large file doesn't stay in memory forever.
		WriteBufferSize NETWriteBufferSize
	}

	Content struct {
		// Root is the directory prepended to every request target. The target is appended
		// as is, without any normalization.
		Root string
		// Index replaces the target when it's exactly "/".
		Index string
	}

	Response struct {
		// Server is the value of the Server header.
		Server string
		// DateLayout is the time layout used for the Date header. The date is rendered in
		// local time.
		DateLayout string
	}
)

// Config holds everything the server needs. It's never modified after the server is started.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET      NET
	Content  Content
	Response Response
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:            4 * 1024,
			AcceptLoopInterruptPeriod: 500 * time.Millisecond,
			WriteBufferSize: NETWriteBufferSize{
				Default: 4 * 1024,
				Maximal: 64 * 1024,
			},
		},
		Content: Content{
			Root:  "./Uploads",
			Index: "/index.html",
		},
		Response: Response{
			Server:     "CS422-Python-Server",
			DateLayout: "Mon, 02 Jan 2006 15:04:05",
		},
	}
}
