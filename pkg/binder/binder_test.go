package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ifconfig/pkg/binder"
)

func params(values map[string]string) func(*http.Request, string) string {
	return func(_ *http.Request, name string) string { return values[name] }
}

func TestQuery(t *testing.T) {
	type request struct {
		Format  string   `query:"format"`
		Pretty  bool     `query:"pretty"`
		Limit   *int     `query:"limit"`
		Fields  []string `query:"field"`
		Ignored string   `query:"-"`
		Name    string
	}

	t.Run("binds values", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?format=json&pretty=true&limit=5&field=a&field=b&ignored=x&name=n", nil)
		var req request
		require.NoError(t, binder.Query()(r, &req))

		assert.Equal(t, "json", req.Format)
		assert.True(t, req.Pretty)
		require.NotNil(t, req.Limit)
		assert.Equal(t, 5, *req.Limit)
		assert.Equal(t, []string{"a", "b"}, req.Fields)
		assert.Empty(t, req.Ignored)
		assert.Equal(t, "n", req.Name)
	})

	t.Run("missing values keep zero", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		var req request
		require.NoError(t, binder.Query()(r, &req))
		assert.Nil(t, req.Limit)
		assert.Empty(t, req.Format)
	})

	t.Run("present empty value sets pointer", func(t *testing.T) {
		type cmdRequest struct {
			Cmd *string `query:"cmd"`
		}
		var req cmdRequest
		require.NoError(t, binder.Query()(httptest.NewRequest(http.MethodGet, "/?cmd=", nil), &req))
		require.NotNil(t, req.Cmd)
		assert.Empty(t, *req.Cmd)

		req = cmdRequest{}
		require.NoError(t, binder.Query()(httptest.NewRequest(http.MethodGet, "/", nil), &req))
		assert.Nil(t, req.Cmd)
	})

	t.Run("invalid value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?limit=many", nil)
		var req request
		err := binder.Query()(r, &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})

	t.Run("invalid target", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		var req request
		assert.ErrorIs(t, binder.Query()(r, req), binder.ErrInvalidTarget)
		assert.ErrorIs(t, binder.Query()(r, (*request)(nil)), binder.ErrInvalidTarget)
		s := "str"
		assert.ErrorIs(t, binder.Query()(r, &s), binder.ErrFailedToParseQuery)
	})
}

func TestPath(t *testing.T) {
	type request struct {
		Param string `path:"param"`
		ID    uint64 `path:"id"`
	}

	t.Run("binds values", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/user-agent", nil)
		var req request
		require.NoError(t, binder.Path(params(map[string]string{"param": "user-agent", "id": "7"}))(r, &req))
		assert.Equal(t, "user-agent", req.Param)
		assert.Equal(t, uint64(7), req.ID)
	})

	t.Run("nil extractor leaves zero values", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		var req request
		require.NoError(t, binder.Path(nil)(r, &req))
		assert.Empty(t, req.Param)
	})

	t.Run("invalid value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		var req request
		err := binder.Path(params(map[string]string{"id": "-1"}))(r, &req)
		assert.ErrorIs(t, err, binder.ErrFailedToParsePath)
	})
}

func TestHeader(t *testing.T) {
	type request struct {
		UserAgent string   `header:"user-agent"`
		Accept    []string `header:"Accept"`
		DNT       *bool    `header:"DNT"`
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("User-Agent", "curl/8.4.0")
	r.Header.Add("Accept", "text/html")
	r.Header.Add("Accept", "*/*")
	r.Header.Set("Dnt", "1")

	var req request
	require.NoError(t, binder.Header()(r, &req))
	assert.Equal(t, "curl/8.4.0", req.UserAgent)
	assert.Equal(t, []string{"text/html", "*/*"}, req.Accept)
	require.NotNil(t, req.DNT)
	assert.True(t, *req.DNT)

	r.Header.Set("Dnt", "maybe")
	assert.ErrorIs(t, binder.Header()(r, &req), binder.ErrFailedToParseHeaders)
}
