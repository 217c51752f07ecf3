package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"github.com/indigo-web/static"
	"github.com/indigo-web/static/config"
)

const (
	exitOK    = 0
	exitServe = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run serves until the context is done or an interrupt signal arrives.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	prefix := color.New(color.FgCyan).Sprint("static: ")
	logger := log.New(stderr, prefix, log.LstdFlags)
	fail := color.New(color.FgRed)

	port, err := parsePort(args)
	if err != nil {
		fmt.Fprintln(stderr, fail.Sprint(err))
		fmt.Fprintln(stderr, "usage: static <port>")
		return exitUsage
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := static.New(config.Default()).Logger(logger)
	go func() {
		<-ctx.Done()
		// restore the default behavior, so a second signal kills the process right away
		cancel()
		app.Stop()
	}()

	if err = app.Serve(port); err != nil {
		logger.Print(fail.Sprintf("error: %s", err))
		return exitServe
	}

	logger.Print("shutting down the server")

	return exitOK
}

func parsePort(args []string) (uint16, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one argument, got %d", len(args))
	}

	port, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil || port == 0 {
		return 0, fmt.Errorf("bad port: %q", args[0])
	}

	return uint16(port), nil
}
