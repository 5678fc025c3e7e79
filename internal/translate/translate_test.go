package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lingua/api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyMemory_Translate(t *testing.T) {
	var gotQuery, gotPair string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotPair = r.URL.Query().Get("langpair")
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":"bonjour le monde"},"responseStatus":200}`))
	}))
	defer srv.Close()

	out, err := NewMyMemory(srv.URL, time.Second).Translate(context.Background(), "hello world", "en", "fr")
	require.NoError(t, err)
	assert.Equal(t, "bonjour le monde", out)
	assert.Equal(t, "hello world", gotQuery)
	assert.Equal(t, "en|fr", gotPair)
}

func TestMyMemory_UnsupportedPair(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"status 403", `{"responseData":{"translatedText":"INVALID LANGUAGE PAIR"},"responseStatus":403}`},
		{"string status 403", `{"responseData":{"translatedText":"x"},"responseStatus":"403"}`},
		{"empty translation", `{"responseData":{"translatedText":""},"responseStatus":200}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewMyMemory(srv.URL, time.Second).Translate(context.Background(), "hi", "en", "xx")
			assert.ErrorIs(t, err, ErrUnsupportedPair)
		})
	}
}

func TestMyMemory_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewMyMemory(srv.URL, time.Second).Translate(context.Background(), "hi", "en", "fr")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedPair)
}

func ollamaServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "hello")
		_ = json.NewEncoder(w).Encode(generateResponse{Model: req.Model, Response: reply, Done: true})
	}))
}

func TestOllama_Translate(t *testing.T) {
	srv := ollamaServer(t, "Sure!\n```json\n{\"translatedText\": \"hola\"}\n```")
	defer srv.Close()

	out, err := NewOllama(srv.URL, "test-model", time.Second).Translate(context.Background(), "hello", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "hola", out)
}

func TestOllama_EmptyTranslation(t *testing.T) {
	srv := ollamaServer(t, `{"translatedText": ""}`)
	defer srv.Close()

	_, err := NewOllama(srv.URL, "test-model", time.Second).Translate(context.Background(), "hello", "en", "zz")
	assert.ErrorIs(t, err, ErrUnsupportedPair)
}

func TestExtractJSON(t *testing.T) {
	got, err := extractJSON(`noise {"a": {"b": 1}} trailing`)
	require.NoError(t, err)
	assert.Equal(t, `{"a": {"b": 1}}`, got)

	_, err = extractJSON("no json here")
	assert.Error(t, err)

	_, err = extractJSON("{not json}")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	tr, err := New(&config.ClientConfig{TranslateProvider: "mymemory"})
	require.NoError(t, err)
	assert.IsType(t, &MyMemory{}, tr)

	tr, err = New(&config.ClientConfig{TranslateProvider: "ollama"})
	require.NoError(t, err)
	assert.IsType(t, &Ollama{}, tr)

	_, err = New(&config.ClientConfig{TranslateProvider: "babelfish"})
	assert.Error(t, err)
}
