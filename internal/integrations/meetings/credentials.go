package meetings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// CredentialProvider supplies a currently-valid provider access token.
type CredentialProvider interface {
	GetValidToken(ctx context.Context) (string, error)
}

// expirySlack refetches tokens slightly before they expire so an in-flight
// request never carries a token that dies mid-call.
const expirySlack = 30 * time.Second

// ConnectorCredentials fetches short-lived calendar tokens from the
// connector service and caches them until close to expiry. The cache is
// owned by this struct and guarded by a mutex; nothing is process-global.
type ConnectorCredentials struct {
	connectorURL  string
	identityToken string
	httpClient    *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewConnectorCredentials(connectorURL, identityToken string, timeout time.Duration) *ConnectorCredentials {
	return &ConnectorCredentials{
		connectorURL:  connectorURL,
		identityToken: identityToken,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// GetValidToken returns the cached token, fetching a fresh one when absent
// or expired.
func (c *ConnectorCredentials) GetValidToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Add(expirySlack).Before(c.expiresAt) {
		return c.token, nil
	}

	token, expiresAt, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = expiresAt
	return token, nil
}

type connectorResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (c *ConnectorCredentials) fetch(ctx context.Context) (string, time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.connectorURL+"/api/v2/connection?connector=google-calendar", nil)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Identity-Token", c.identityToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("%w: connector status %d", ErrNoCredentials, resp.StatusCode)
	}

	var payload connectorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", time.Time{}, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if payload.AccessToken == "" {
		return "", time.Time{}, ErrNoCredentials
	}

	return payload.AccessToken, payload.ExpiresAt, nil
}
