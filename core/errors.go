package core

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrAuthNotReady means no OAuth client is configured to request tokens with.
	ErrAuthNotReady = errors.New("authentication not ready")
	// ErrAuthDenied means the consent flow failed or the user dismissed it.
	ErrAuthDenied = errors.New("authorization denied")
	// ErrUnauthorized means the provider rejected the bearer token.
	ErrUnauthorized = errors.New("access token rejected")
	// ErrSignedOut means an action needing a token ran without one.
	ErrSignedOut = errors.New("no access token available")
	// ErrSaveInProgress rejects a second create while one is pending.
	ErrSaveInProgress = errors.New("an event is already being saved")
)

// ValidationError is a client-side rejection of form input. No request is
// made when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ProviderError is a non-success response from the calendar API.
type ProviderError struct {
	Message    string
	StatusCode int
}

func (e *ProviderError) Error() string { return e.Message }

// NetworkError is a transport failure: the request never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// RevocationError reports a failed token revocation. It never blocks sign-out.
type RevocationError struct {
	StatusCode int
	Err        error
}

func (e *RevocationError) Error() string {
	if e.Err != nil {
		return "revoke token: " + e.Err.Error()
	}
	return fmt.Sprintf("revoke token: status %d", e.StatusCode)
}

func (e *RevocationError) Unwrap() error { return e.Err }

// classifyAPIError maps an error returned by a calendar API call onto the
// error taxonomy above.
func classifyAPIError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return &NetworkError{Err: err}
	}
	msg := apiErr.Message
	if msg == "" {
		msg = fmt.Sprintf("API Error: %d %s", apiErr.Code, http.StatusText(apiErr.Code))
	}
	if apiErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	}
	return &ProviderError{Message: msg, StatusCode: apiErr.Code}
}
