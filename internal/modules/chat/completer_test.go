package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCompleterRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.NotEmpty(t, req.Messages)
		assert.Equal(t, "system", req.Messages[0].Role)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "In stock."}},
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPCompleter(srv.URL, "test-key", "test-model", 5*time.Second)
	got, err := c.Complete(context.Background(), "You are a bot.", []Message{
		{Role: RoleUser, Content: "Do you have kurtas?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "In stock.", got)
}

func TestHTTPCompleterProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer srv.Close()

	c := NewHTTPCompleter(srv.URL, "", "test-model", 5*time.Second)
	_, err := c.Complete(context.Background(), "", []Message{{Role: RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestHTTPCompleterDisabled(t *testing.T) {
	c := NewHTTPCompleter("", "", "", 0)
	_, err := c.Complete(context.Background(), "", nil)
	require.ErrorIs(t, err, ErrChatDisabled)
}
