package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

const (
	callbackPath      = "/oauth/callback"
	defaultListenAddr = "127.0.0.1:8085"
)

// NewOAuthConfig creates an OAuth2 config with full calendar read/write scope.
// The redirect URL is filled in per sign-in from the loopback listener.
func NewOAuthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}
}

// Authenticator runs the browser consent flow and revokes tokens.
type Authenticator struct {
	config     *oauth2.Config
	listenAddr string
	openURL    func(string) error
	revoker    *RevokeClient
}

func NewAuthenticator(config *oauth2.Config, opts ...func(*Authenticator)) *Authenticator {
	a := &Authenticator{
		config:     config,
		listenAddr: defaultListenAddr,
		openURL:    browser.OpenURL,
		revoker:    NewRevokeClient(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithListenAddr sets the loopback address the consent redirect lands on.
func WithListenAddr(addr string) func(*Authenticator) {
	return func(a *Authenticator) {
		a.listenAddr = addr
	}
}

// WithBrowserOpener replaces the system browser launcher.
func WithBrowserOpener(open func(string) error) func(*Authenticator) {
	return func(a *Authenticator) {
		a.openURL = open
	}
}

func WithRevoker(r *RevokeClient) func(*Authenticator) {
	return func(a *Authenticator) {
		a.revoker = r
	}
}

// Ready reports whether an OAuth client is configured.
func (a *Authenticator) Ready() bool {
	return a != nil && a.config != nil && a.config.ClientID != ""
}

// RequestToken opens the consent page in the browser and blocks until the
// provider redirects back, the user denies access, or ctx is done.
func (a *Authenticator) RequestToken(ctx context.Context) (*oauth2.Token, error) {
	if !a.Ready() {
		return nil, ErrAuthNotReady
	}

	ln, err := net.Listen("tcp", a.listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen for oauth callback: %w", err)
	}

	cfg := *a.config
	cfg.RedirectURL = "http://" + ln.Addr().String() + callbackPath
	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	type result struct {
		token *oauth2.Token
		err   error
	}
	done := make(chan result, 1)
	var once sync.Once
	finish := func(r result) {
		once.Do(func() { done <- r })
	}

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		// A callback from another flow is rejected; this flow keeps waiting.
		if q.Get("state") != state {
			log.Printf("ignore oauth callback with unexpected state from %s", r.RemoteAddr)
			http.Error(w, "unexpected state", http.StatusBadRequest)
			return
		}
		if reason := q.Get("error"); reason != "" {
			_, _ = fmt.Fprintf(w, "Authorization failed (%s). You can close this window.", reason)
			finish(result{err: fmt.Errorf("%w: %s", ErrAuthDenied, reason)})
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "no authorization code received", http.StatusBadRequest)
			finish(result{err: fmt.Errorf("%w: no authorization code received", ErrAuthDenied)})
			return
		}

		token, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
		if err != nil {
			http.Error(w, "token exchange failed", http.StatusBadGateway)
			finish(result{err: fmt.Errorf("%w: exchange code: %v", ErrAuthDenied, err)})
			return
		}
		_, _ = fmt.Fprint(w, "Authorization successful! You can close this window.")
		finish(result{token: token})
	})

	server := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			finish(result{err: fmt.Errorf("oauth callback server: %w", err)})
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	authURL := cfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	log.Printf("waiting for consent callback on %s", cfg.RedirectURL)
	if err := a.openURL(authURL); err != nil {
		log.Printf("open browser failed, visit manually: %s (%v)", authURL, err)
	}

	select {
	case r := <-done:
		return r.token, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrAuthDenied, ctx.Err())
	}
}

// RevokeToken invalidates token at the provider.
func (a *Authenticator) RevokeToken(ctx context.Context, token string) error {
	return a.revoker.Revoke(ctx, token)
}
