// Package oauth defines the OAuth 2.0 authorization-code contract shared
// by the social login providers (GitHub, Google, AI Lab).
//
// Every provider implements the same four-step flow: build the
// authorization URL, exchange the code for an access token, fetch the raw
// profile, and normalize it into UserInfo. The raw fetch and the transform
// are internal steps of UserInfo; each provider decodes its own response
// shape into typed structs.
package oauth

import "context"

// UserInfo is the normalized profile every provider maps into.
// It is transient: the account provisioning flow consumes it, nothing
// here persists it.
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Provider is the per-provider OAuth 2.0 strategy.
type Provider interface {
	// Name returns the provider key used in routes and config ("github", ...).
	Name() string

	// AuthorizationURL builds the provider authorization endpoint URL.
	// inviteToken, when non-empty, is carried as the state parameter.
	AuthorizationURL(inviteToken string) (string, error)

	// ExchangeCode exchanges an authorization code for an access token.
	// Fails when the provider response carries no access token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// UserInfo fetches the profile with the access token and normalizes it.
	UserInfo(ctx context.Context, accessToken string) (*UserInfo, error)
}
