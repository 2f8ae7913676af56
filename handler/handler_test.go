package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ifconfig/handler"
	"github.com/dmitrymomot/ifconfig/pkg/binder"
)

type echoRequest struct {
	Name string `query:"name"`
	Rank int    `query:"rank"`
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestWrap(t *testing.T) {
	t.Parallel()

	echo := func(ctx handler.Context, req echoRequest) handler.Response {
		return handler.Text(fmt.Sprintf("%s:%d", req.Name, req.Rank))
	}

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(echo, handler.WithBinders[handler.Context, echoRequest](binder.Query()))

		rec := serve(h, "/?name=ada&rank=1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ada:1", rec.Body.String())
		assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	})

	t.Run("binding error uses error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(echo,
			handler.WithBinders[handler.Context, echoRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, echoRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusBadRequest)
			}),
		)

		rec := serve(h, "/?rank=first")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.ErrorIs(t, got, binder.ErrFailedToParseQuery)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, echoRequest) handler.Response { return nil })

		rec := serve(h, "/")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", rec.Body.String())
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[handler.Context, echoRequest] {
			return func(next handler.HandlerFunc[handler.Context, echoRequest]) handler.HandlerFunc[handler.Context, echoRequest] {
				return func(ctx handler.Context, req echoRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(echo, handler.WithDecorators(mark("outer"), mark("inner")))

		serve(h, "/")
		assert.Equal(t, []string{"outer", "inner"}, order)
	})

	t.Run("context exposes request", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(ctx handler.Context, _ echoRequest) handler.Response {
			return handler.Text(ctx.Request().URL.Path)
		})
		assert.Equal(t, "/path", serve(h, "/path").Body.String())
	})
}

func TestResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		resp        handler.Response
		status      int
		contentType string
		body        string
	}{
		{"text", handler.Text("203.0.113.7\n"), http.StatusOK, "text/plain", "203.0.113.7\n"},
		{"empty", handler.Empty(), http.StatusOK, "text/html", ""},
		{"empty with status", handler.Empty(handler.WithStatus(http.StatusNoContent)), http.StatusNoContent, "text/html", ""},
		{"json", handler.JSON(map[string]int{"a": 1}), http.StatusOK, "application/json", "{\"a\":1}\n"},
		{"pretty json", handler.PrettyJSON(map[string]string{"a": "<b>"}), http.StatusOK, "application/json", "{\n  \"a\": \"<b>\"\n}"},
		{"content type override", handler.Text("x", handler.WithContentType("text/csv")), http.StatusOK, "text/csv", "x"},
		{
			"templ",
			handler.Templ(templ.Raw("<p>hi</p>"), handler.WithStatus(http.StatusNotFound)),
			http.StatusNotFound,
			"text/html",
			"<p>hi</p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			require.NoError(t, tt.resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, rec.Body.String())
			assert.Equal(t, fmt.Sprint(len(tt.body)), rec.Header().Get("Content-Length"))
		})
	}

	t.Run("extra header", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Text("x", handler.WithHeader("Cache-Control", "no-store")).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})
}

func TestRenderFailureWritesNothing(t *testing.T) {
	t.Parallel()
	boom := errors.New("template exploded")

	failing := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<html>partial")
		return boom
	})

	t.Run("templ", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		err := handler.Templ(failing).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, rec.Body.String())
		assert.False(t, rec.Flushed)
		assert.Empty(t, rec.Header().Get("Content-Type"))
	})

	t.Run("nil component", func(t *testing.T) {
		t.Parallel()
		err := handler.Templ(nil).Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, handler.ErrNilComponent)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		err := handler.PrettyJSON(make(chan int)).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, handler.ErrEncodeJSON)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("through error handler", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&logs, nil))

		h := handler.Wrap(
			func(handler.Context, echoRequest) handler.Response { return handler.Templ(failing) },
			handler.WithErrorHandler[handler.Context, echoRequest](handler.NewErrorHandler(log)),
		)
		rec := serve(h, "/")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		assert.Equal(t, "Internal Server Error", rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "exploded")
		assert.Contains(t, logs.String(), "template exploded")
		assert.Contains(t, logs.String(), `"level":"ERROR"`)
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		level  string
	}{
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "ERROR"},
		{"http error", handler.ErrNotFound, http.StatusNotFound, "WARN"},
		{"wrapped http error", fmt.Errorf("lookup: %w", handler.ErrBadRequest), http.StatusBadRequest, "WARN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var logs bytes.Buffer
			eh := handler.NewErrorHandler(slog.New(slog.NewJSONHandler(&logs, nil)))

			rec := httptest.NewRecorder()
			eh(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/x", nil)), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, http.StatusText(tt.status), rec.Body.String())
			assert.Contains(t, logs.String(), `"level":"`+tt.level+`"`)
			assert.Contains(t, logs.String(), `"path":"/x"`)
		})
	}
}

// brokenWriter accepts the status line and fails every body write.
type brokenWriter struct {
	header  http.Header
	headers int
}

func (w *brokenWriter) Header() http.Header       { return w.header }
func (w *brokenWriter) WriteHeader(int)           { w.headers++ }
func (w *brokenWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteFailureIsNotAnsweredTwice(t *testing.T) {
	t.Parallel()

	t.Run("default error handler", func(t *testing.T) {
		t.Parallel()
		w := &brokenWriter{header: http.Header{}}
		h := handler.Wrap(func(handler.Context, echoRequest) handler.Response { return handler.Text("hello") })
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, 1, w.headers)
		assert.Equal(t, "text/plain", w.header.Get("Content-Type"))
	})

	t.Run("logging error handler", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		w := &brokenWriter{header: http.Header{}}
		h := handler.Wrap(
			func(handler.Context, echoRequest) handler.Response { return handler.Text("hello") },
			handler.WithErrorHandler[handler.Context, echoRequest](handler.NewErrorHandler(slog.New(slog.NewJSONHandler(&logs, nil)))),
		)
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, 1, w.headers)
		assert.Contains(t, logs.String(), "response write failed")
		assert.Contains(t, logs.String(), "connection reset")
	})

	t.Run("render reports the write error", func(t *testing.T) {
		t.Parallel()
		w := &brokenWriter{header: http.Header{}}
		err := handler.Text("hello").Render(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, handler.ErrWriteResponse)
	})
}

func TestError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	rec := httptest.NewRecorder()
	err := handler.Error(boom).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, rec.Body.String())

	assert.ErrorIs(t, handler.Error(nil).Render(rec, nil), handler.ErrInternalServerError)

	h := handler.Wrap(func(handler.Context, echoRequest) handler.Response { return handler.Error(handler.ErrNotFound) })
	rec = serve(h, "/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", rec.Body.String())
}
