package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListener_StartStop(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	l := NewListener("test", "127.0.0.1", 0, handler)

	ctx := context.Background()
	require.NoError(t, l.Start(ctx))
	assert.True(t, l.IsRunning())

	addr := l.BoundAddress()
	require.NotEmpty(t, addr)

	resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, l.Stop(stopCtx))
	assert.False(t, l.IsRunning())
}

func TestListener_StartTwice(t *testing.T) {
	t.Parallel()

	l := NewListener("test", "127.0.0.1", 0, http.NotFoundHandler())

	ctx := context.Background()
	require.NoError(t, l.Start(ctx))
	defer func() {
		stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = l.Stop(stopCtx)
	}()

	assert.Error(t, l.Start(ctx))
}

func TestListener_StopWhenNotRunning(t *testing.T) {
	t.Parallel()

	l := NewListener("test", "127.0.0.1", 0, http.NotFoundHandler())
	assert.NoError(t, l.Stop(context.Background()))
}

func TestListener_Address(t *testing.T) {
	t.Parallel()

	l := NewListener("test", "", 8080, http.NotFoundHandler())
	assert.Equal(t, "0.0.0.0:8080", l.Address())

	l = NewListener("test", "127.0.0.1", 9000, http.NotFoundHandler())
	assert.Equal(t, "127.0.0.1:9000", l.Address())
	assert.Equal(t, "test", l.Name())
}
