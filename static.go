package static

import (
	"log"
	"net"
	"strconv"
	"time"

	"github.com/indigo-web/static/config"
	"github.com/indigo-web/static/internal/server/http"
	"github.com/indigo-web/static/transport"
)

type Logger interface {
	Printf(format string, v ...any)
}

// App serves files from the content root over plain HTTP/1.1, one connection at a time.
// An App is meant to be served once.
type App struct {
	cfg       *config.Config
	logger    Logger
	clock     func() time.Time
	hooks     hooks
	transport *transport.TCP
}

// New returns a new App instance. nil config means config.Default().
func New(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	app := &App{
		cfg:    cfg,
		logger: log.Default(),
		clock:  time.Now,
	}
	app.transport = transport.NewTCP(app)

	return app
}

// Logger replaces the default logger (log.Default()).
func (a *App) Logger(logger Logger) *App {
	a.logger = logger
	return a
}

// Clock replaces the time source used for the Date header.
func (a *App) Clock(now func() time.Time) *App {
	a.clock = now
	return a
}

// NotifyOnStart calls the callback once the listening socket is obtained, right before
// the first connection is accepted.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback once the listening socket is closed.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve binds the port on all interfaces and serves connections until Stop is called
// or accepting fails. Failing to bind is returned immediately. Port 0 picks any free
// port, see Addr.
func (a *App) Serve(port uint16) error {
	if err := a.transport.Bind(":" + strconv.Itoa(int(port))); err != nil {
		return err
	}

	server := http.NewServer(a.cfg, a, a.clock)
	callIfNotNil(a.hooks.OnStart)
	err := a.transport.Listen(a.cfg.NET, server.Serve)

	a.Printf("attempting to shut down the socket")
	if cerr := a.transport.Close(); cerr != nil {
		a.Printf("could not close the socket: %s", cerr)
	}

	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop makes Serve return. The call isn't blocking: a connection being served at the moment
// is served till the end.
func (a *App) Stop() {
	a.transport.Stop()
}

// Addr returns the listening address. It's valid only after the start notification.
func (a *App) Addr() net.Addr {
	return a.transport.Addr()
}

// Printf makes the App usable as a logger for its own components, so replacing the logger
// after New still affects all of them.
func (a *App) Printf(format string, v ...any) {
	a.logger.Printf(format, v...)
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
