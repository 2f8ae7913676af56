package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// JSON writes v as compact application/json followed by a newline.
func JSON(v any, opts ...Option) Response {
	return jsonResponse(v, "", opts)
}

// PrettyJSON writes v as application/json indented with two spaces, without
// a trailing newline. HTML characters are not escaped.
func PrettyJSON(v any, opts ...Option) Response {
	return jsonResponse(v, "  ", opts)
}

func jsonResponse(v any, indent string, opts []Option) Response {
	return bufferedResponse{
		meta: newMeta(ContentTypeJSON, opts),
		render: func(_ *http.Request, buf *bytes.Buffer) error {
			enc := json.NewEncoder(buf)
			enc.SetEscapeHTML(false)
			if indent != "" {
				enc.SetIndent("", indent)
			}
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("%w: %w", ErrEncodeJSON, err)
			}
			if indent != "" {
				buf.Truncate(buf.Len() - 1)
			}
			return nil
		},
	}
}
