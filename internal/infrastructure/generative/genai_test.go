package generative

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeGemini(t *testing.T, answer string, seen *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if seen != nil {
			_ = json.Unmarshal(body, seen)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": answer}},
					},
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCompleteJSON(t *testing.T) {
	var req map[string]any
	srv := fakeGemini(t, `{"name":"Maria"}`, &req)

	c, err := NewGenAIClient(context.Background(), "key", "", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	schema := map[string]any{"type": "object", "properties": map[string]any{"name": map[string]any{"type": "string"}}}
	out, err := c.CompleteJSON(context.Background(), "crie uma persona", schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Maria"}`, string(out))

	cfg, _ := req["generationConfig"].(map[string]any)
	require.NotNil(t, cfg)
	assert.Equal(t, "application/json", cfg["responseMimeType"])
}

func TestCompleteJSON_InvalidAnswer(t *testing.T) {
	srv := fakeGemini(t, "não é json", nil)

	c, err := NewGenAIClient(context.Background(), "key", "m", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = c.CompleteJSON(context.Background(), "x", nil)
	assert.Error(t, err)
}

func TestNewGenAIClient_RequiresKey(t *testing.T) {
	_, err := NewGenAIClient(context.Background(), "", "")
	assert.Error(t, err)
}
