package http

import (
	"errors"

	"github.com/indigo-web/static/http/status"
	"github.com/indigo-web/utils/uf"
)

// Response is built fresh for every connection and is never reused. Headers aren't
// stored here: every response carries exactly the same set, which is the renderer's
// business.
type Response struct {
	Code status.Code
	Body []byte
}

// NewResponse returns a new response with status code set to 200 OK and an empty body.
func NewResponse() *Response {
	return &Response{Code: status.OK}
}

// WithCode sets the response code.
func (r *Response) WithCode(code status.Code) *Response {
	r.Code = code
	return r
}

// Bytes sets the response body. The slice is not copied.
func (r *Response) Bytes(body []byte) *Response {
	r.Body = body
	return r
}

// String sets the response body without copying the string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Status returns the status as it goes into the status line.
func (r *Response) Status() string {
	return status.Line(r.Code)
}

// Error turns the error into a canned response. status.HTTPError carries its own code
// and page; anything else is reported as not found, as the server has no other way to
// tell the client that something went wrong.
func (r *Response) Error(err error) *Response {
	var httpErr status.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = status.ErrNotFound.(status.HTTPError)
	}

	return r.WithCode(httpErr.Code).String(httpErr.Page)
}

// Error is a shorthand for NewResponse().Error(err).
func Error(err error) *Response {
	return NewResponse().Error(err)
}
