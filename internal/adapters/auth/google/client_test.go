package google

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

func newTokeninfoServer(t *testing.T, status int, payload map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") == "" {
			t.Errorf("missing id_token query param")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
}

func TestVerifyIDToken_OK(t *testing.T) {
	srv := newTokeninfoServer(t, http.StatusOK, map[string]string{
		"aud":     "my-client-id",
		"sub":     "google-sub-1",
		"email":   "rocco@example.com",
		"name":    "Rocco Owner",
		"picture": "https://example.com/p.jpg",
	})
	defer srv.Close()

	c := NewClientWithBaseURL(Config{ClientID: "my-client-id", Timeout: time.Second}, srv.URL)

	claims, err := c.VerifyIDToken(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", claims.UserID)
	assert.Equal(t, "rocco@example.com", claims.Email)
}

func TestVerifyIDToken_WrongAudience(t *testing.T) {
	srv := newTokeninfoServer(t, http.StatusOK, map[string]string{
		"aud": "somebody-elses-app",
		"sub": "google-sub-1",
	})
	defer srv.Close()

	c := NewClientWithBaseURL(Config{ClientID: "my-client-id"}, srv.URL)

	_, err := c.VerifyIDToken(context.Background(), "token-for-other-app")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyIDToken_UpstreamRejects(t *testing.T) {
	srv := newTokeninfoServer(t, http.StatusBadRequest, map[string]string{
		"error": "invalid_token",
	})
	defer srv.Close()

	c := NewClientWithBaseURL(Config{ClientID: "my-client-id"}, srv.URL)

	_, err := c.VerifyIDToken(context.Background(), "expired-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyIDToken_UpstreamDown(t *testing.T) {
	srv := newTokeninfoServer(t, http.StatusInternalServerError, map[string]string{})
	defer srv.Close()

	c := NewClientWithBaseURL(Config{ClientID: "my-client-id"}, srv.URL)

	_, err := c.VerifyIDToken(context.Background(), "any-token")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestVerifyIDToken_NotConfigured(t *testing.T) {
	c := NewClient(Config{})
	_, err := c.VerifyIDToken(context.Background(), "token")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
