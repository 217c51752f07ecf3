package render

import (
	"time"

	"github.com/indigo-web/static/config"
	"github.com/indigo-web/static/http"
)

// Lines are terminated by a bare LF and the Connection value carries a trailing
// space. Both are kept as is, since existing clients depend on the exact bytes.
const (
	proto      = "HTTP/1.1 "
	eol        = "\n"
	dateKey    = "Date: "
	serverKey  = "Server: "
	connection = "Connection: close " + eol
)

// Renderer serializes responses. Every response carries exactly the same set of
// headers: Date, Server and Connection. The header block and the body are transmitted
// in a single write.
type Renderer struct {
	buff   []byte
	retain int
	server string
	layout string
	now    func() time.Time
}

// NewRenderer returns a new renderer. Buffers grown beyond retain bytes aren't kept
// between calls.
func NewRenderer(buff []byte, retain int, cfg config.Response, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}

	return &Renderer{
		buff:   buff[:0],
		retain: retain,
		server: cfg.Server,
		layout: cfg.DateLayout,
		now:    now,
	}
}

// Render serializes the response and returns it. The returned slice stays valid until
// the next call.
func (r *Renderer) Render(response *http.Response) []byte {
	buff := r.buff[:0]
	buff = append(buff, proto...)
	buff = append(buff, response.Status()...)
	buff = append(buff, eol...)
	buff = append(buff, dateKey...)
	buff = r.now().Local().AppendFormat(buff, r.layout)
	buff = append(buff, eol...)
	buff = append(buff, serverKey...)
	buff = append(buff, r.server...)
	buff = append(buff, eol...)
	buff = append(buff, connection...)
	buff = append(buff, eol...)
	buff = append(buff, response.Body...)
	if cap(buff) <= r.retain {
		r.buff = buff
	}

	return buff
}

type ResponseWriter func(b []byte) error

// Write renders the response and passes it to the writer.
func (r *Renderer) Write(response *http.Response, writer ResponseWriter) error {
	return writer(r.Render(response))
}
