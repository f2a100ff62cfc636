package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPIdentityProviderFetchesSessionData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/v1/env/oauth/session-data", r.URL.Path)
		assert.Equal(t, "provider-123", r.Header.Get("X-Session-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ext-1","email":" Student@Example.COM ","name":"Dana","picture":"https://cdn/p.png"}`))
	}))
	defer server.Close()

	provider := NewHTTPIdentityProvider(server.URL + "/auth/v1/env/oauth/")
	identity, err := provider.FetchSessionData(context.Background(), "provider-123")
	require.NoError(t, err)
	require.Equal(t, "student@example.com", identity.Email)
	require.Equal(t, "Dana", identity.Name)
	require.Equal(t, "https://cdn/p.png", identity.Picture)
}

func TestHTTPIdentityProviderRejectsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPIdentityProvider(server.URL).FetchSessionData(context.Background(), "expired")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestHTTPIdentityProviderRejectsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := NewHTTPIdentityProvider(server.URL).FetchSessionData(context.Background(), "s")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestHTTPIdentityProviderRequiresEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"No Mail"}`))
	}))
	defer server.Close()

	_, err := NewHTTPIdentityProvider(server.URL).FetchSessionData(context.Background(), "s")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestHTTPIdentityProviderWrapsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, err := NewHTTPIdentityProvider(baseURL).FetchSessionData(context.Background(), "s")
	require.ErrorIs(t, err, ErrUpstream)
}
