// Package session is the transport collaborator: it executes HTTP calls
// against URLs built by the request processor and hands back raw response
// text. The processor never performs I/O itself, and this package never
// interprets response bodies.
//
// Requests are signed with OAuth 1.0a, which is what the v1.1 account
// endpoints require. There is no retry or rate-limit handling here - errors
// surface to the caller unchanged.
package session

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

// Credentials holds the four OAuth 1.0a secrets for a signed session.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// Executor performs signed HTTP calls. It implements account.Transport.
//
// The zero timeout and clock/nonce sources are set by New; tests override
// nowFn and nonceFn for deterministic signatures.
type Executor struct {
	creds      Credentials
	httpClient *http.Client

	nowFn   func() time.Time
	nonceFn func() string
}

// New creates an Executor with the given credentials and a 15-second
// request timeout.
func New(creds Credentials) *Executor {
	return &Executor{
		creds:      creds,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		nowFn:      time.Now,
		nonceFn:    func() string { return strconv.FormatInt(rand.Int63(), 36) },
	}
}

// Get executes a signed GET and returns the response body text.
func (e *Executor) Get(ctx context.Context, url string) (string, error) {
	return e.do(ctx, http.MethodGet, url)
}

// Post executes a signed POST and returns the response body text.
func (e *Executor) Post(ctx context.Context, url string) (string, error) {
	return e.do(ctx, http.MethodPost, url)
}

func (e *Executor) do(ctx context.Context, method, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return "", fmt.Errorf("build %s request: %w", method, err)
	}
	e.sign(req)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("twitter api status %d", resp.StatusCode)
	}

	return string(body), nil
}
