package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/indigo-web/static/config"
	"github.com/indigo-web/static/http"
	"github.com/indigo-web/static/http/status"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2009, time.July, 27, 12, 28, 53, 0, time.Local)

const retain = 2048

func newRenderer() *Renderer {
	return NewRenderer(make([]byte, 0, 64), retain, config.Default().Response, func() time.Time {
		return fixedTime
	})
}

func TestRenderer(t *testing.T) {
	t.Run("200 OK", func(t *testing.T) {
		r := newRenderer()
		data := r.Render(http.NewResponse().String("<p>hi</p>"))
		want := "HTTP/1.1 200 OK\n" +
			"Date: Mon, 27 Jul 2009 12:28:53\n" +
			"Server: CS422-Python-Server\n" +
			"Connection: close \n" +
			"\n" +
			"<p>hi</p>"
		require.Equal(t, want, string(data))
	})

	t.Run("404", func(t *testing.T) {
		r := newRenderer()
		data := string(r.Render(http.Error(status.ErrNotFound)))
		require.True(t, strings.HasPrefix(data, "HTTP/1.1 404 File Not Found\n"))
		require.True(t, strings.HasSuffix(data, "\n\n<html><body><h5>Error 404: File Not Found</h5></body></html>"))
	})

	t.Run("405", func(t *testing.T) {
		r := newRenderer()
		data := string(r.Render(http.Error(status.ErrMethodNotAllowed)))
		require.True(t, strings.HasPrefix(data, "HTTP/1.1 405 Method Not Allowed\n"))
		require.True(t, strings.HasSuffix(data, "\n\n<html><body><h5>Error 405: Method Not Allowed</h5></body></html>"))
	})

	t.Run("single blank line and connection header", func(t *testing.T) {
		r := newRenderer()
		// the body itself contains a blank line, which must not be confused with the
		// one terminating the headers
		data := string(r.Render(http.NewResponse().String("a\n\nb")))
		headers, body, found := strings.Cut(data, "\n\n")
		require.True(t, found)
		require.Equal(t, "a\n\nb", body)
		require.Equal(t, 1, strings.Count(headers, "Connection: close"))
		require.Equal(t, 4, len(strings.Split(headers, "\n")))
	})

	t.Run("binary body", func(t *testing.T) {
		r := newRenderer()
		body := []byte{0, 1, 2, 0xff, '\n', '\n'}
		data := r.Render(http.NewResponse().Bytes(body))
		require.True(t, bytes.HasSuffix(data, body))
	})

	t.Run("buffer reuse", func(t *testing.T) {
		r := newRenderer()
		first := string(r.Render(http.NewResponse().String(strings.Repeat("a", 1024))))
		second := string(r.Render(http.NewResponse().String("b")))
		require.True(t, strings.HasSuffix(first, strings.Repeat("a", 1024)))
		require.True(t, strings.HasSuffix(second, "\n\nb"))
	})

	t.Run("large buffer is not retained", func(t *testing.T) {
		r := newRenderer()
		small := r.Render(http.NewResponse().String("a"))
		smallCap := cap(small)

		large := r.Render(http.NewResponse().String(strings.Repeat("b", 4*retain)))
		require.True(t, strings.HasSuffix(string(large), strings.Repeat("b", 4*retain)))
		require.LessOrEqual(t, cap(r.buff), retain)
		require.Equal(t, smallCap, cap(r.buff))

		data := string(r.Render(http.NewResponse().String("c")))
		require.True(t, strings.HasSuffix(data, "\n\nc"))
		require.LessOrEqual(t, cap(r.buff), retain)
	})

	t.Run("default clock", func(t *testing.T) {
		r := NewRenderer(nil, retain, config.Default().Response, nil)
		data := string(r.Render(http.NewResponse()))
		require.Contains(t, data, "Date: ")
	})
}

func TestWrite(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r := newRenderer()
		var written []byte
		err := r.Write(http.NewResponse().String("hi"), func(b []byte) error {
			written = append(written, b...)
			return nil
		})
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(string(written), "\n\nhi"))
	})

	t.Run("error", func(t *testing.T) {
		r := newRenderer()
		err := r.Write(http.NewResponse(), func([]byte) error {
			return errors.New("broken pipe")
		})
		require.EqualError(t, err, "broken pipe")
	})
}
