package status

import "strconv"

type (
	Code   uint16
	Status string
)

// The only codes the server ever responds with.
const (
	OK               Code = 200 // RFC 9110, 15.3.1
	NotFound         Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed Code = 405 // RFC 9110, 15.5.6
)

// KnownCodes lists every code Text has a reason phrase for.
var KnownCodes = []Code{OK, NotFound, MethodNotAllowed}

// Text returns the reason phrase for the code. Note that 404 is reported as
// "File Not Found" rather than the registered "Not Found", as clients of this server
// used to match against it.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case NotFound:
		return "File Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	default:
		return "Unknown Status Code"
	}
}

// StringCode returns the decimal representation of the code.
func StringCode(code Code) string {
	return strconv.Itoa(int(code))
}

// Line returns the status as it goes into the status line, e.g. "404 File Not Found".
func Line(code Code) string {
	return StringCode(code) + " " + string(Text(code))
}
