package encyclopedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTitle_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rest_v1/page/summary/Apple%20Pie", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content_urls":{"desktop":{"page":"https://en.wikipedia.org/wiki/Apple_pie"}}}`))
	}))
	defer server.Close()

	client := NewWikipedia(&Config{BaseURL: server.URL})

	out, err := client.LookupTitle(context.Background(), &LookupTitleInput{Title: "Apple Pie"})
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Apple_pie", out.URL)
}

func TestLookupTitle_FoundWithoutCanonicalURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewWikipedia(&Config{BaseURL: server.URL})

	out, err := client.LookupTitle(context.Background(), &LookupTitleInput{Title: "Apple Pie"})
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, server.URL+"/wiki/Apple%20Pie", out.URL)
}

func TestLookupTitle_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewWikipedia(&Config{BaseURL: server.URL})

	out, err := client.LookupTitle(context.Background(), &LookupTitleInput{Title: "Xqzv Wfjk"})
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Empty(t, out.URL)
}

func TestLookupTitle_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewWikipedia(&Config{BaseURL: server.URL})

	_, err := client.LookupTitle(context.Background(), &LookupTitleInput{Title: "Apple Pie"})
	assert.Error(t, err)
}

func TestLookupTitle_EmptyTitle(t *testing.T) {
	client := NewWikipedia(nil)

	_, err := client.LookupTitle(context.Background(), &LookupTitleInput{Title: "   "})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}
