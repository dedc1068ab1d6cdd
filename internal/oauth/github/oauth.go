// Package github implements OAuth 2.0 authentication with GitHub.
// GitHub has no ID tokens, so the profile requires a separate API call;
// emails can be private, which forces a second call to /user/emails.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dropDatabas3/workhub/internal/oauth"
)

const (
	authEndpoint  = "https://github.com/login/oauth/authorize"
	tokenEndpoint = "https://github.com/login/oauth/access_token"
	userEndpoint  = "https://api.github.com/user"
	emailEndpoint = "https://api.github.com/user/emails"
)

// OAuth is the GitHub OAuth 2.0 client.
type OAuth struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	authURL  string
	tokenURL string
	userURL  string
	emailURL string

	http *http.Client
}

// New creates a new GitHub OAuth client.
func New(clientID, clientSecret, redirectURL string) *OAuth {
	return &OAuth{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		authURL:      authEndpoint,
		tokenURL:     tokenEndpoint,
		userURL:      userEndpoint,
		emailURL:     emailEndpoint,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// Name implements oauth.Provider.
func (g *OAuth) Name() string { return "github" }

// AuthorizationURL builds the authorization URL for GitHub OAuth.
// Only basic user information is requested (user:email scope).
func (g *OAuth) AuthorizationURL(inviteToken string) (string, error) {
	u, err := url.Parse(g.authURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("client_id", g.ClientID)
	q.Set("redirect_uri", g.RedirectURL)
	q.Set("scope", "user:email")
	if inviteToken != "" {
		q.Set("state", inviteToken)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// tokenResponse is the response from GitHub's token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	Error       string `json:"error,omitempty"`
	ErrorDesc   string `json:"error_description,omitempty"`
}

// ExchangeCode exchanges an authorization code for an access token.
func (g *OAuth) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", g.ClientID)
	form.Set("client_secret", g.ClientSecret)
	form.Set("code", code)
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
		return "", fmt.Errorf("github oauth: decode token response: %w", err)
	}

	if tr.AccessToken == "" {
		if tr.Error != "" {
			return "", fmt.Errorf("github oauth: %s - %s", tr.Error, tr.ErrorDesc)
		}
		return "", fmt.Errorf("github oauth: no access_token in response")
	}

	return tr.AccessToken, nil
}

// userProfile contains user information from the GitHub API.
type userProfile struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// emailEntry contains email information from the GitHub API.
type emailEntry struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// rawUserInfo fetches the profile plus the primary email.
// The email list call is best effort: a failure there leaves the email
// empty and the noreply fallback kicks in during the transform.
func (g *OAuth) rawUserInfo(ctx context.Context, accessToken string) (*userProfile, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", g.userURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "token "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api: user status %d", resp.StatusCode)
	}

	var profile userProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("github api: decode user: %w", err)
	}

	profile.Email = g.primaryEmail(ctx, accessToken)
	return &profile, nil
}

// primaryEmail returns the email flagged primary, or "" if none.
func (g *OAuth) primaryEmail(ctx context.Context, accessToken string) string {
	req, err := http.NewRequestWithContext(ctx, "GET", g.emailURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Authorization", "token "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var emails []emailEntry
	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return ""
	}
	for _, e := range emails {
		if e.Primary {
			return e.Email
		}
	}
	return ""
}

// UserInfo implements oauth.Provider.
// Accounts with fully private email get the synthetic noreply address
// GitHub itself uses: {id}+{login}@users.noreply.github.com.
func (g *OAuth) UserInfo(ctx context.Context, accessToken string) (*oauth.UserInfo, error) {
	profile, err := g.rawUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	email := profile.Email
	if email == "" {
		email = fmt.Sprintf("%d+%s@users.noreply.github.com", profile.ID, profile.Login)
	}

	return &oauth.UserInfo{
		ID:    strconv.FormatInt(profile.ID, 10),
		Name:  profile.Name,
		Email: email,
	}, nil
}
