package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
)

// Templ renders component as text/html. The component is rendered into a
// buffer first, so a failing component leaves the response untouched and the
// error reaches the ErrorHandler.
//
//	return handler.Templ(page, handler.WithStatus(http.StatusNotFound))
func Templ(component templ.Component, opts ...Option) Response {
	return bufferedResponse{
		meta: newMeta(ContentTypeHTML, opts),
		render: func(r *http.Request, buf *bytes.Buffer) error {
			if component == nil {
				return ErrNilComponent
			}
			return component.Render(r.Context(), buf)
		},
	}
}
