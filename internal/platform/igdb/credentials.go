package igdb

import (
	"context"
	"sync"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"gamelib/internal/metrics"
)

// expiryMargin is subtracted from the server TTL so a token is refreshed
// before it actually expires on the upstream side.
const expiryMargin = 60 * time.Second

// Credential is an opaque bearer token with its absolute expiry.
type Credential struct {
	Token  string
	Expiry time.Time
}

// TokenProvider performs one client-credentials exchange per call.
type TokenProvider interface {
	Exchange(ctx context.Context) (Credential, error)
}

// TwitchTokenProvider exchanges client credentials with the Twitch token
// endpoint, which fronts the IGDB API.
type TwitchTokenProvider struct {
	conf *clientcredentials.Config
}

func NewTwitchTokenProvider(clientID, clientSecret, tokenURL string) *TwitchTokenProvider {
	return &TwitchTokenProvider{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		},
	}
}

func (p *TwitchTokenProvider) Exchange(ctx context.Context) (Credential, error) {
	tok, err := p.conf.Token(ctx)
	if err != nil {
		return Credential{}, &CredentialError{Cause: err}
	}
	return Credential{Token: tok.AccessToken, Expiry: tok.Expiry}, nil
}

// CredentialCache holds the single bearer token shared by all in-flight
// catalog requests. Readers take the (token, expiry) pair under one lock so
// a token is never paired with an expiry from a different refresh. Callers
// racing on an expired token may each perform a refresh; the last writer
// wins, which is harmless since every exchanged token is valid.
type CredentialCache struct {
	provider TokenProvider
	metrics  metrics.Recorder

	mu     sync.RWMutex
	token  string
	expiry time.Time

	now func() time.Time
}

func NewCredentialCache(provider TokenProvider, rec metrics.Recorder) *CredentialCache {
	return &CredentialCache{provider: provider, metrics: rec, now: time.Now}
}

// Token returns the cached credential, refreshing it through the provider
// when expired. Refresh failures surface as *CredentialError.
func (c *CredentialCache) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	token, expiry := c.token, c.expiry
	c.mu.RUnlock()

	if token != "" && c.now().Before(expiry) {
		return token, nil
	}

	cred, err := c.provider.Exchange(ctx)
	if err != nil {
		c.metrics.RecordTokenRefresh(false)
		return "", err
	}
	c.metrics.RecordTokenRefresh(true)

	c.mu.Lock()
	c.token = cred.Token
	c.expiry = cred.Expiry.Add(-expiryMargin)
	c.mu.Unlock()

	return cred.Token, nil
}

// Invalidate forces the next Token call to refresh. Called by the catalog
// client when the upstream reports an authorization failure.
func (c *CredentialCache) Invalidate() {
	c.mu.Lock()
	c.expiry = time.Unix(0, 0)
	c.mu.Unlock()
}
