package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Pages *int   `json:"pages"`
	}

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A","pages":3}`+"\n"))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "A", p.Name)
		require.NotNil(t, p.Pages)
		assert.Equal(t, 3, *p.Pages)
	})

	t.Run("absent field stays nil", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Nil(t, p.Pages)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		assert.ErrorIs(t, DecodeJSON(r, &p), ErrEmptyBody)
	})

	t.Run("trailing value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A"} {"name":"B"}`))
		var p payload
		assert.ErrorIs(t, DecodeJSON(r, &p), ErrTrailingValues)
	})

	t.Run("malformed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})
}
