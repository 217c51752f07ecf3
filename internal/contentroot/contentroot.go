// Package contentroot maps request targets onto files.
//
// The target is appended to the root as is: neither ".." segments nor absolute
// components are handled in any special way, so a target like "/../secret" does
// escape the root. Keep the root on a dedicated directory tree with nothing worth
// hiding around it.
package contentroot

import (
	"os"

	"github.com/indigo-web/static/config"
)

type Root struct {
	dir, index string
}

func New(cfg config.Content) Root {
	return Root{
		dir:   cfg.Root,
		index: cfg.Index,
	}
}

// Resolve returns the filesystem path the target points to.
func (r Root) Resolve(target string) string {
	if target == "/" {
		target = r.index
	}

	return r.dir + target
}

// Read resolves the target and reads the whole file. Errors are returned exactly as
// the filesystem reported them.
func (r Root) Read(target string) (path string, data []byte, err error) {
	path = r.Resolve(target)
	data, err = os.ReadFile(path)

	return path, data, err
}
