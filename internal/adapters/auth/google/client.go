package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"barkly-backend/internal/platform/httpclient"
	"barkly-backend/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("google client not configured")
	ErrInvalidToken  = errors.New("google token invalid")
	ErrUpstream      = errors.New("google upstream error")
)

// tokeninfo valida un id_token firmado por Google y devuelve sus claims.
const tokeninfoURL = "https://oauth2.googleapis.com/tokeninfo"

type Config struct {
	// ClientID esperado en el claim aud. Tokens emitidos para otra app se rechazan.
	ClientID string

	Timeout time.Duration
}

type Client struct {
	clientID string
	http     *httpclient.Client
	baseURL  string
}

func NewClient(cfg Config) *Client {
	return &Client{
		clientID: strings.TrimSpace(cfg.ClientID),
		http:     httpclient.New(cfg.Timeout),
		baseURL:  tokeninfoURL,
	}
}

// NewClientWithBaseURL apunta a otro endpoint tokeninfo (tests).
func NewClientWithBaseURL(cfg Config, baseURL string) *Client {
	c := NewClient(cfg)
	if strings.TrimSpace(baseURL) != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.clientID != ""
}

// VerifyIDToken implementa auth.IdentityProvider contra el endpoint tokeninfo.
func (c *Client) VerifyIDToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	var out struct {
		Aud     string `json:"aud"`
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}

	reqURL := c.baseURL + "?id_token=" + url.QueryEscape(token)
	if err := c.http.DoJSON(ctx, http.MethodGet, reqURL, nil, nil, &out); err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			// tokeninfo responde 400 para tokens expirados o malformados.
			if httpErr.StatusCode == http.StatusBadRequest || httpErr.StatusCode == http.StatusUnauthorized {
				return auth.Claims{}, ErrInvalidToken
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if out.Aud != c.clientID {
		return auth.Claims{}, ErrInvalidToken
	}
	out.Sub = strings.TrimSpace(out.Sub)
	if out.Sub == "" {
		return auth.Claims{}, errors.New("tokeninfo response missing sub")
	}

	return auth.Claims{
		UserID:  out.Sub,
		Email:   strings.TrimSpace(out.Email),
		Name:    strings.TrimSpace(out.Name),
		Picture: strings.TrimSpace(out.Picture),
	}, nil
}
