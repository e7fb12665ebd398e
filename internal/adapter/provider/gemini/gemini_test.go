package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "AIzaSyTestKey000000000000000000000000"

func TestValidKey(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidKey(testKey))
	assert.False(t, ValidKey(""))
	assert.False(t, ValidKey("AIza"))
	assert.False(t, ValidKey("sk-abc"))
}

func TestNew_RejectsMalformedKey(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{APIKey: "not-a-key"})
	require.Error(t, err)
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Rewritten text."}]}}]}`))
	}))
	t.Cleanup(srv.Close)

	g, err := New(context.Background(), Config{APIKey: testKey, Model: "gemini-test", BaseURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "gemini-test", g.Model())

	text, err := g.Generate(context.Background(), "be formal", "fix this")
	require.NoError(t, err)
	assert.Equal(t, "Rewritten text.", text)
	assert.Contains(t, gotBody, "systemInstruction")
}

func TestGenerator_GenerateError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`))
	}))
	t.Cleanup(srv.Close)

	g, err := New(context.Background(), Config{APIKey: testKey, BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "", "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}
