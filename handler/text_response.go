package handler

import (
	"bytes"
	"net/http"
)

// Text writes body as text/plain.
func Text(body string, opts ...Option) Response {
	return bufferedResponse{
		meta: newMeta(ContentTypeText, opts),
		render: func(_ *http.Request, buf *bytes.Buffer) error {
			buf.WriteString(body)
			return nil
		},
	}
}

// Empty writes headers only. The content type defaults to text/html and the
// status to 200.
//
//	return handler.Empty(handler.WithStatus(http.StatusNoContent))
func Empty(opts ...Option) Response {
	return bufferedResponse{meta: newMeta(ContentTypeHTML, opts)}
}
