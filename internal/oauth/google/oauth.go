// Package google implements OAuth 2.0 authentication with Google.
// The profile comes from the OIDC userinfo endpoint; no ID-token
// verification happens here, the caller only needs sub and email.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dropDatabas3/workhub/internal/oauth"
)

const (
	authEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenEndpoint    = "https://oauth2.googleapis.com/token"
	userInfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"
)

// OAuth is the Google OAuth 2.0 client.
type OAuth struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	authURL     string
	tokenURL    string
	userInfoURL string

	http *http.Client
}

// New creates a new Google OAuth client.
func New(clientID, clientSecret, redirectURL string) *OAuth {
	return &OAuth{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		authURL:      authEndpoint,
		tokenURL:     tokenEndpoint,
		userInfoURL:  userInfoEndpoint,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// Name implements oauth.Provider.
func (g *OAuth) Name() string { return "google" }

// AuthorizationURL builds the authorization URL for Google OAuth.
func (g *OAuth) AuthorizationURL(inviteToken string) (string, error) {
	u, err := url.Parse(g.authURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("client_id", g.ClientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", g.RedirectURL)
	q.Set("scope", "openid email")
	if inviteToken != "" {
		q.Set("state", inviteToken)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// tokenResponse is the response from Google's token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Error       string `json:"error,omitempty"`
	ErrorDesc   string `json:"error_description,omitempty"`
}

// ExchangeCode exchanges an authorization code for an access token.
func (g *OAuth) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", g.ClientID)
	form.Set("client_secret", g.ClientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", g.RedirectURL)

	req, err := http.NewRequestWithContext(ctx, "POST", g.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("google oauth: decode token response: %w", err)
	}

	if tr.AccessToken == "" {
		if tr.Error != "" {
			return "", fmt.Errorf("google oauth: %s - %s", tr.Error, tr.ErrorDesc)
		}
		return "", fmt.Errorf("google oauth: no access_token in response")
	}

	return tr.AccessToken, nil
}

// userProfile is the OIDC userinfo response.
// This endpoint returns no display name when only openid+email were
// requested, so Name stays out of the normalization.
type userProfile struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
}

// rawUserInfo fetches the profile using the access token.
func (g *OAuth) rawUserInfo(ctx context.Context, accessToken string) (*userProfile, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", g.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api: userinfo status %d", resp.StatusCode)
	}

	var profile userProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("google api: decode userinfo: %w", err)
	}
	return &profile, nil
}

// UserInfo implements oauth.Provider.
func (g *OAuth) UserInfo(ctx context.Context, accessToken string) (*oauth.UserInfo, error) {
	profile, err := g.rawUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return &oauth.UserInfo{
		ID:    profile.Sub,
		Name:  "",
		Email: profile.Email,
	}, nil
}
