package core

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

// Authorizer acquires and revokes access tokens.
type Authorizer interface {
	Ready() bool
	RequestToken(ctx context.Context) (*oauth2.Token, error)
	RevokeToken(ctx context.Context, token string) error
}

// Session holds the access token of the signed-in user. The token lives in
// memory only and is gone when the process exits.
type Session struct {
	auth Authorizer

	mu    sync.Mutex
	token *oauth2.Token
}

func NewSession(auth Authorizer) *Session {
	return &Session{auth: auth}
}

// SignIn acquires a fresh token. Signing in again replaces the current token.
// On failure the session keeps whatever state it had.
func (s *Session) SignIn(ctx context.Context) error {
	if s.auth == nil || !s.auth.Ready() {
		return ErrAuthNotReady
	}
	token, err := s.auth.RequestToken(ctx)
	if err != nil {
		return err
	}
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("%w: no access token in response", ErrAuthDenied)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// SignOut drops the token and revokes it at the provider. The session is
// signed out even when revocation fails; the revocation error is returned
// for logging only.
func (s *Session) SignOut(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.token = nil
	s.mu.Unlock()

	if token == nil || s.auth == nil {
		return nil
	}
	return s.auth.RevokeToken(ctx, token.AccessToken)
}

func (s *Session) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != nil
}

// AccessToken returns the bearer token, or ErrSignedOut.
func (s *Session) AccessToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return "", ErrSignedOut
	}
	return s.token.AccessToken, nil
}
