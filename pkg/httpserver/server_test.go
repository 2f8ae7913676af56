package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ifconfig/pkg/httpserver"
)

type peerKey struct{}

// start runs srv in the background and returns the bound address and a
// channel receiving Run's result.
func start(t *testing.T, srv *httpserver.Server, ctx context.Context, h http.Handler, started <-chan net.Addr) (string, <-chan error) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()

	select {
	case addr := <-started:
		return addr.String(), done
	case err := <-done:
		require.FailNow(t, "run returned early", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start")
	}
	return "", done
}

func startHook(ch chan<- net.Addr) httpserver.Option {
	return httpserver.WithStartHook(func(_ *slog.Logger, addr net.Addr) { ch <- addr })
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run did not finish")
	}
	return nil
}

func TestRunAndCancel(t *testing.T) {
	t.Parallel()
	started := make(chan net.Addr, 1)
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		startHook(started),
	)
	assert.Nil(t, srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addr, done := start(t, srv, ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}), started)
	assert.Equal(t, addr, srv.Addr().String())

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	require.NoError(t, waitDone(t, done))
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestConnContext(t *testing.T) {
	t.Parallel()
	started := make(chan net.Addr, 1)
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithConnContext(func(ctx context.Context, c net.Conn) context.Context {
			return context.WithValue(ctx, peerKey{}, c.RemoteAddr().String())
		}),
		startHook(started),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addr, done := start(t, srv, ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		peer, _ := r.Context().Value(peerKey{}).(string)
		_, _ = io.WriteString(w, peer)
	}), started)

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())

	host, _, err := net.SplitHostPort(string(body))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestStartError(t *testing.T) {
	t.Parallel()

	t.Run("invalid address", func(t *testing.T) {
		srv := httpserver.New(httpserver.WithAddr(":invalid"))
		err := srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})

	t.Run("address in use", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()))
		err = srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})
}

func TestManualShutdownAndHooks(t *testing.T) {
	t.Parallel()
	started := make(chan net.Addr, 1)
	var stopped atomic.Int32
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithStopHook(func(*slog.Logger) { stopped.Add(1) }),
		startHook(started),
	)
	_, done := start(t, srv, context.Background(), http.NewServeMux(), started)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, waitDone(t, done))
	assert.Equal(t, int32(1), stopped.Load())
}

func TestAlreadyRunning(t *testing.T) {
	t.Parallel()
	started := make(chan net.Addr, 1)
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		startHook(started),
	)
	ctx, cancel := context.WithCancel(context.Background())
	_, done := start(t, srv, ctx, http.NewServeMux(), started)

	err := srv.Run(context.Background(), http.NewServeMux())
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	started := make(chan net.Addr, 1)
	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:0", ShutdownTimeout: 50 * time.Millisecond}, startHook(started))

	ctx, cancel := context.WithCancel(context.Background())
	addr, done := start(t, srv, ctx, nil, started)

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func()
	}{
		{"addr", func() { httpserver.WithAddr("") }},
		{"read", func() { httpserver.WithReadTimeout(-time.Second) }},
		{"write", func() { httpserver.WithWriteTimeout(0) }},
		{"idle", func() { httpserver.WithIdleTimeout(-time.Second) }},
		{"shutdown", func() { httpserver.WithShutdownTimeout(0) }},
		{"conn context", func() { httpserver.WithConnContext(nil) }},
		{"start hook", func() { httpserver.WithStartHook(nil) }},
		{"stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
	assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		probes []httpserver.Probe
		status int
		body   string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{"ready", []httpserver.Probe{func(context.Context) error { return nil }}, http.StatusOK, "READY"},
		{
			"not ready",
			[]httpserver.Probe{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("geo database closed") },
			},
			http.StatusServiceUnavailable,
			"NOT_READY",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.probes...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/-/ready", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}
