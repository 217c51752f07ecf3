package http

import (
	"errors"
	"os"
	"testing"

	"github.com/indigo-web/static/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		resp := NewResponse()
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "200 OK", resp.Status())
		require.Empty(t, resp.Body)
	})

	t.Run("bytes", func(t *testing.T) {
		resp := NewResponse().Bytes([]byte("<p>hi</p>"))
		require.Equal(t, "<p>hi</p>", string(resp.Body))
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp := Error(status.ErrMethodNotAllowed)
		require.Equal(t, status.MethodNotAllowed, resp.Code)
		require.Equal(t, "405 Method Not Allowed", resp.Status())
		require.Equal(t, "<html><body><h5>Error 405: Method Not Allowed</h5></body></html>", string(resp.Body))
	})

	t.Run("not found", func(t *testing.T) {
		resp := Error(status.ErrNotFound)
		require.Equal(t, status.NotFound, resp.Code)
		require.Equal(t, "404 File Not Found", resp.Status())
		require.Equal(t, "<html><body><h5>Error 404: File Not Found</h5></body></html>", string(resp.Body))
	})

	t.Run("arbitrary error", func(t *testing.T) {
		resp := Error(os.ErrPermission)
		require.Equal(t, status.NotFound, resp.Code)
		require.Equal(t, "<html><body><h5>Error 404: File Not Found</h5></body></html>", string(resp.Body))
	})

	t.Run("wrapped http error", func(t *testing.T) {
		err := errors.Join(errors.New("context"), status.ErrMethodNotAllowed)
		require.Equal(t, status.MethodNotAllowed, Error(err).Code)
	})
}

func TestRequest(t *testing.T) {
	require.True(t, Request{Tokens: 1}.Malformed())
	require.False(t, Request{Tokens: 2}.Malformed())
}
