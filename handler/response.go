package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
)

// Content types written by the built-in responses.
const (
	ContentTypeText = "text/plain"
	ContentTypeHTML = "text/html"
	ContentTypeJSON = "application/json"
)

// Option adjusts a built-in response.
type Option func(*meta)

type meta struct {
	status      int
	contentType string
	header      http.Header
}

// WithStatus overrides the default 200 status.
func WithStatus(code int) Option {
	return func(m *meta) { m.status = code }
}

// WithContentType overrides the response content type.
func WithContentType(ct string) Option {
	return func(m *meta) { m.contentType = ct }
}

// WithHeader sets an extra response header.
func WithHeader(key, value string) Option {
	return func(m *meta) {
		if m.header == nil {
			m.header = http.Header{}
		}
		m.header.Set(key, value)
	}
}

func newMeta(contentType string, opts []Option) meta {
	m := meta{status: http.StatusOK, contentType: contentType}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// write emits a fully buffered body. Nothing reaches w before this point.
func (m meta) write(w http.ResponseWriter, body []byte) error {
	h := w.Header()
	for k, v := range m.header {
		h[k] = v
	}
	h.Set("Content-Type", m.contentType)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(m.status)
	if len(body) == 0 {
		return nil
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteResponse, err)
	}
	return nil
}

type bufferedResponse struct {
	meta
	render func(r *http.Request, buf *bytes.Buffer) error
}

func (b bufferedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if b.render != nil {
		if err := b.render(r, &buf); err != nil {
			return err
		}
	}
	return b.write(w, buf.Bytes())
}

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Error defers err to the ErrorHandler without writing anything.
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
