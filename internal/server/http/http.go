package http

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/indigo-web/static/config"
	"github.com/indigo-web/static/http"
	"github.com/indigo-web/static/http/method"
	"github.com/indigo-web/static/http/status"
	"github.com/indigo-web/static/internal/accesslog"
	"github.com/indigo-web/static/internal/contentroot"
	"github.com/indigo-web/static/internal/parser/http1"
	"github.com/indigo-web/static/internal/render"
	"github.com/indigo-web/static/internal/server/tcp"
)

type Logger interface {
	Printf(format string, v ...any)
}

// Server handles connections one by one. Each connection gets exactly one response and
// is closed afterwards, whatever happens in between. The read and render buffers are
// reused across connections, so a Server must never serve two connections at once.
type Server struct {
	cfg      *config.Config
	root     contentroot.Root
	renderer *render.Renderer
	buff     []byte
	logger   Logger
}

// NewServer returns a new server. now is used for the Date header; nil means time.Now.
func NewServer(cfg *config.Config, logger Logger, now func() time.Time) *Server {
	return &Server{
		cfg:      cfg,
		root:     contentroot.New(cfg.Content),
		renderer: render.NewRenderer(
			make([]byte, 0, cfg.NET.WriteBufferSize.Default), cfg.NET.WriteBufferSize.Maximal,
			cfg.Response, now,
		),
		buff:     make([]byte, cfg.NET.ReadBufferSize),
		logger:   logger,
	}
}

// Serve is the callback for the acceptor.
func (s *Server) Serve(conn net.Conn) {
	s.Run(tcp.NewClient(conn, s.cfg.NET.ReadTimeout, s.buff))
}

// Run reads the request, responds and closes the client.
func (s *Server) Run(client tcp.Client) {
	defer func() {
		if err := client.Close(); err != nil {
			s.logger.Printf("closing connection: %s", err)
		}
	}()

	var request http.Request
	request.Remote = client.Remote()
	entry := accesslog.Entry{
		ID:     accesslog.NewID(),
		Remote: addrString(request.Remote),
	}

	// a single read. Request lines split among multiple segments are parsed from
	// whatever arrived first
	data, err := client.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		s.logger.Printf("[%s] reading request: %s", entry.ID, err)
	}

	http1.Parse(data, &request)
	response, path, cause := s.HandleRequest(&request)

	entry.Method = request.RawMethod
	entry.Target = request.Target
	entry.Path = path
	entry.Status = int(response.Code)
	entry.Size = len(response.Body)
	if cause != nil {
		entry.Error = cause.Error()
	}

	if err = s.renderer.Write(response, client.Write); err != nil {
		s.logger.Printf("[%s] writing response: %s", entry.ID, err)
		entry.Error = err.Error()
	}

	accesslog.Write(s.logger, entry)
}

// HandleRequest picks the response for the request. The returned path is the file the
// target was resolved to, empty if it wasn't resolved at all. The error is the reason
// of a non-200 response.
func (s *Server) HandleRequest(request *http.Request) (resp *http.Response, path string, err error) {
	switch {
	case request.Method != method.GET:
		s.logger.Printf("%q is not an accepted request method. GET is the only one accepted", request.RawMethod)
		return http.Error(status.ErrMethodNotAllowed), "", status.ErrMethodNotAllowed
	case request.Malformed():
		return http.Error(status.ErrNotFound), "", status.ErrNotFound
	}

	path, data, err := s.root.Read(request.Target)
	if err != nil {
		// the client is never told the actual reason
		return http.Error(status.ErrNotFound), path, err
	}

	return http.NewResponse().Bytes(data), path, nil
}

func addrString(addr net.Addr) string {
	if addr == nil {
		return ""
	}

	return addr.String()
}
