package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barkly-backend/internal/ports/auth"
)

const testSecret = "una-clave-de-al-menos-32-bytes-para-tests"

func TestIssueVerify_RoundTrip(t *testing.T) {
	tokens := New(testSecret, time.Hour)

	in := auth.Claims{
		UserID:  "google-sub-123",
		Email:   "rocco@example.com",
		Name:    "Rocco Owner",
		Picture: "https://example.com/p.jpg",
	}

	raw, err := tokens.Issue(in)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	out, err := tokens.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	issuer := New(testSecret, time.Hour)
	verifier := New("otra-clave-distinta-de-al-menos-32-bytes", time.Hour)

	raw, err := issuer.Issue(auth.Claims{UserID: "u1"})
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsExpired(t *testing.T) {
	tokens := New(testSecret, time.Minute)

	issuedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issuedAt }

	raw, err := tokens.Issue(auth.Claims{UserID: "u1"})
	require.NoError(t, err)

	// dos minutos después ya venció
	tokens.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = tokens.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssue_RequiresUserID(t *testing.T) {
	tokens := New(testSecret, time.Hour)
	_, err := tokens.Issue(auth.Claims{})
	assert.Error(t, err)
}

func TestVerify_EmptyAndGarbage(t *testing.T) {
	tokens := New(testSecret, time.Hour)

	_, err := tokens.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Verify(context.Background(), "no.es.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
