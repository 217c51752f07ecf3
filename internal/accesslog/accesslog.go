// Package accesslog produces a single JSON line per served connection.
package accesslog

import (
	"github.com/dchest/uniuri"
	json "github.com/json-iterator/go"
)

const idLength = 8

type Logger interface {
	Printf(format string, v ...any)
}

type Entry struct {
	ID     string `json:"id"`
	Remote string `json:"remote"`
	Method string `json:"method"`
	Target string `json:"target"`
	Path   string `json:"path,omitempty"`
	Status int    `json:"status"`
	Size   int    `json:"size"`
	Error  string `json:"error,omitempty"`
}

// NewID returns a random identifier used to correlate log lines of a single connection.
func NewID() string {
	return uniuri.NewLen(idLength)
}

// Write encodes the entry and prints it. Encoding never fails for Entry, but if it
// somehow did, the error is printed instead.
func Write(logger Logger, entry Entry) {
	line, err := json.ConfigCompatibleWithStandardLibrary.Marshal(entry)
	if err != nil {
		logger.Printf("access log: %s", err)
		return
	}

	logger.Printf("%s", line)
}
