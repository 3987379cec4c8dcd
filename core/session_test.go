package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeAuthorizer struct {
	notReady  bool
	tokens    []string
	err       error
	revokeErr error

	requests int
	revoked  []string
}

func (f *fakeAuthorizer) Ready() bool { return !f.notReady }

func (f *fakeAuthorizer) RequestToken(ctx context.Context) (*oauth2.Token, error) {
	f.requests++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.tokens) == 0 {
		return &oauth2.Token{}, nil
	}
	tok := f.tokens[0]
	f.tokens = f.tokens[1:]
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}

func (f *fakeAuthorizer) RevokeToken(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return f.revokeErr
}

func TestSession_SignInAndOut(t *testing.T) {
	auth := &fakeAuthorizer{tokens: []string{"tok-1"}}
	s := NewSession(auth)

	_, err := s.AccessToken()
	assert.ErrorIs(t, err, ErrSignedOut)

	require.NoError(t, s.SignIn(context.Background()))
	assert.True(t, s.SignedIn())
	tok, err := s.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	require.NoError(t, s.SignOut(context.Background()))
	assert.False(t, s.SignedIn())
	assert.Equal(t, []string{"tok-1"}, auth.revoked)
}

func TestSession_SignInAgainReplacesToken(t *testing.T) {
	s := NewSession(&fakeAuthorizer{tokens: []string{"tok-1", "tok-2"}})

	require.NoError(t, s.SignIn(context.Background()))
	require.NoError(t, s.SignIn(context.Background()))

	tok, err := s.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
}

func TestSession_SignInFailures(t *testing.T) {
	s := NewSession(&fakeAuthorizer{err: fmt.Errorf("%w: popup closed", ErrAuthDenied)})
	assert.ErrorIs(t, s.SignIn(context.Background()), ErrAuthDenied)
	assert.False(t, s.SignedIn())

	s = NewSession(&fakeAuthorizer{})
	assert.ErrorIs(t, s.SignIn(context.Background()), ErrAuthDenied, "empty token")
	assert.False(t, s.SignedIn())

	notReady := &fakeAuthorizer{notReady: true}
	s = NewSession(notReady)
	assert.ErrorIs(t, s.SignIn(context.Background()), ErrAuthNotReady)
	assert.Zero(t, notReady.requests)

	assert.ErrorIs(t, NewSession(nil).SignIn(context.Background()), ErrAuthNotReady)
}

func TestSession_SignOutSurvivesRevocationFailure(t *testing.T) {
	auth := &fakeAuthorizer{tokens: []string{"tok-1"}, revokeErr: &RevocationError{StatusCode: 503}}
	s := NewSession(auth)
	require.NoError(t, s.SignIn(context.Background()))

	err := s.SignOut(context.Background())

	var rerr *RevocationError
	assert.True(t, errors.As(err, &rerr))
	assert.False(t, s.SignedIn())
}

func TestSession_SignOutWhenSignedOut(t *testing.T) {
	auth := &fakeAuthorizer{}
	s := NewSession(auth)

	assert.NoError(t, s.SignOut(context.Background()))
	assert.Empty(t, auth.revoked)
}
