package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingagents/internal/llm/prompts"
)

func TestTranslateGenerateContent(t *testing.T) {
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "g-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"## 结论\n"},{"text":"持有"}]}}]}`))
	}))
	defer srv.Close()

	temp := float32(0.2)
	tr, err := New(Config{BaseURL: srv.URL + "/v1/", APIKey: "g-key", Model: "gemini-2.0-flash", Temperature: &temp})
	require.NoError(t, err)

	out, err := tr.Translate(context.Background(), "## Conclusion\nHold")
	require.NoError(t, err)
	assert.Equal(t, "## 结论\n持有", out)

	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 2)
	assert.Equal(t, prompts.TranslationSystem, got.Contents[0].Parts[0].Text)
	assert.Equal(t, "## Conclusion\nHold", got.Contents[0].Parts[1].Text)
	require.NotNil(t, got.GenerationConfig)
	assert.InDelta(t, 0.2, *got.GenerationConfig.Temperature, 1e-6)
}

func TestTranslateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	tr, err := New(Config{BaseURL: srv.URL, APIKey: "bad", Model: "m"})
	require.NoError(t, err)
	_, err = tr.Translate(context.Background(), "x")
	assert.ErrorContains(t, err, "gemini http 400: API key not valid")
}

func TestTranslateNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	tr, err := New(Config{BaseURL: srv.URL, APIKey: "k", Model: "m"})
	require.NoError(t, err)
	_, err = tr.Translate(context.Background(), "x")
	assert.ErrorContains(t, err, "empty completion")
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(Config{BaseURL: "http://x", Model: "m"})
	assert.Error(t, err)
}
