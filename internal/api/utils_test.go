package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

func TestDecodeJSONBody(t *testing.T) {
	type payload struct {
		Destination string `json:"destination"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"destination":"Rome"}`},
		{name: "empty", body: ``, wantErr: "body must not be empty"},
		{name: "unknown field", body: `{"destination":"Rome","stars":5}`, wantErr: `body contains unknown key "stars"`},
		{name: "wrong type", body: `{"destination":7}`, wantErr: `incorrect JSON type for field "destination"`},
		{name: "trailing data", body: `{"destination":"Rome"}{}`, wantErr: "single JSON value"},
		{name: "truncated", body: `{"destination":`, wantErr: "badly-formed JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst payload
			err := DecodeJSONBody(w, req, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Rome", dst.Destination)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	ErrorResponse(w, req, http.StatusBadRequest, "Please enter a destination.")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp types.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Please enter a destination.", resp.Error)
}

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, "tester", r.Header.Get("User-Agent"))
			w.Write([]byte(`{"name":"Colosseum"}`))
		case "/broken":
			w.Write([]byte(`{"name":`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("down for maintenance"))
		}
	}))
	defer srv.Close()

	client := NewHTTPClient(2 * time.Second)
	ctx := context.Background()
	header := http.Header{"User-Agent": []string{"tester"}}

	t.Run("decodes body", func(t *testing.T) {
		var out struct{ Name string }
		require.NoError(t, GetJSON(ctx, client, srv.URL+"/ok", header, &out))
		assert.Equal(t, "Colosseum", out.Name)
	})

	t.Run("non-2xx becomes StatusError", func(t *testing.T) {
		var out struct{}
		err := GetJSON(ctx, client, srv.URL+"/down", nil, &out)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusServiceUnavailable, se.Status)
		assert.Equal(t, "down for maintenance", se.Body)
	})

	t.Run("malformed payload", func(t *testing.T) {
		var out struct{}
		err := GetJSON(ctx, client, srv.URL+"/broken", nil, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})
}
