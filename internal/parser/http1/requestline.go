package http1

import (
	"bytes"

	"github.com/indigo-web/static/http"
	"github.com/indigo-web/static/http/method"
	"github.com/indigo-web/utils/uf"
)

var sp = []byte{' '}

// Parse fills the request from the raw data read off the connection. The data is split
// on the space character as a whole, so the target runs up to the next space even if it
// crosses line boundaries, and the method must match verbatim. Header lines are never
// interpreted.
//
// Strings in the request reference the data, so it must not be overwritten as long as the
// request is in use.
func Parse(data []byte, request *http.Request) {
	request.Tokens = bytes.Count(data, sp) + 1

	methodValue, rest, found := bytes.Cut(data, sp)
	request.RawMethod = uf.B2S(methodValue)
	request.Method = method.Parse(request.RawMethod)
	request.Target = ""

	if !found {
		return
	}

	target, _, _ := bytes.Cut(rest, sp)
	request.Target = uf.B2S(target)
}
