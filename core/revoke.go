package core

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultRevokeURL = "https://oauth2.googleapis.com/revoke"

// RevokeClient invalidates access tokens at the identity provider.
type RevokeClient struct {
	revokeURL string
	http      *http.Client
}

func NewRevokeClient(opts ...func(*RevokeClient)) *RevokeClient {
	client := &RevokeClient{
		revokeURL: defaultRevokeURL,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// For testing
func WithRevokeURL(revokeURL string) func(*RevokeClient) {
	return func(c *RevokeClient) {
		c.revokeURL = revokeURL
	}
}

func WithRevokeHTTPClient(h *http.Client) func(*RevokeClient) {
	return func(c *RevokeClient) {
		c.http = h
	}
}

// Revoke posts token to the revocation endpoint. Any failure comes back as a
// *RevocationError.
func (c *RevokeClient) Revoke(ctx context.Context, token string) error {
	u, err := url.Parse(c.revokeURL)
	if err != nil {
		return &RevocationError{Err: fmt.Errorf("parse revoke url: %w", err)}
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return &RevocationError{Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return &RevocationError{Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RevocationError{StatusCode: resp.StatusCode}
	}
	return nil
}
