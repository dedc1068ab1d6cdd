// Package ailab implements OAuth 2.0 authentication with the AI Lab
// identity provider.
//
// AI Lab is only loosely standard: the token endpoint takes a JSON body
// instead of a form, and every response comes in one of two shapes — a
// flat standard payload, or an envelope {code, msg, data: {...}} with the
// payload nested under data. The envelope is detected by a single
// presence check on the data field (see unwrap).
package ailab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dropDatabas3/workhub/internal/oauth"
)

// Derived endpoint paths under the provider base URL.
const (
	authPath     = "/oauth/authorize"
	tokenPath    = "/rest/token"
	userInfoPath = "/rest/userinfo"
)

// OAuth is the AI Lab OAuth 2.0 client.
type OAuth struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	authURL     string
	tokenURL    string
	userInfoURL string

	http *http.Client
}

// New creates a new AI Lab OAuth client for the given provider base URL.
func New(clientID, clientSecret, redirectURL, baseURL string) *OAuth {
	base := strings.TrimRight(baseURL, "/")
	return &OAuth{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		authURL:      base + authPath,
		tokenURL:     base + tokenPath,
		userInfoURL:  base + userInfoPath,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// Name implements oauth.Provider.
func (a *OAuth) Name() string { return "ailab" }

// AuthorizationURL builds the authorization URL for the AI Lab flow.
func (a *OAuth) AuthorizationURL(inviteToken string) (string, error) {
	u, err := url.Parse(a.authURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("response_type", "code")
	q.Set("redirect_uri", a.RedirectURL)
	q.Set("client_id", a.ClientID)
	if inviteToken != "" {
		q.Set("state", inviteToken)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// envelope is the wrapped response variant {code, msg, data: {...}}.
// A nil Data means the response was the flat variant.
type envelope struct {
	Code *int            `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// unwrap resolves the wrapped-vs-flat ambiguity: when the body carries a
// data object, the payload is inside it; otherwise the body itself is
// the payload.
func unwrap(body []byte) []byte {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return body
	}
	if len(env.Data) > 0 && bytes.HasPrefix(bytes.TrimSpace(env.Data), []byte("{")) {
		return env.Data
	}
	return body
}

// ExchangeCode exchanges an authorization code for an access token.
// Unlike GitHub/Google this endpoint takes a JSON body.
func (a *OAuth) ExchangeCode(ctx context.Context, code string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"grant_type":    "authorization_code",
		"client_id":     a.ClientID,
		"client_secret": a.ClientSecret,
		"code":          code,
		"redirect_uri":  a.RedirectURL,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.tokenURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var tr struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(unwrap(body), &tr); err != nil {
		return "", fmt.Errorf("ailab oauth: decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("ailab oauth: no access_token in response: %s", strings.TrimSpace(string(body)))
	}
	return tr.AccessToken, nil
}

// flexID tolerates the provider sending userId as number or string.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) >= 2 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	*f = flexID(string(b))
	return nil
}

// userProfile is the (unwrapped) userinfo payload.
type userProfile struct {
	UserID      flexID `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// rawUserInfo fetches the profile using the access token.
// A non-200 status is a hard failure.
func (a *OAuth) rawUserInfo(ctx context.Context, accessToken string) (*userProfile, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", a.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ailab api: userinfo status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var profile userProfile
	if err := json.Unmarshal(unwrap(body), &profile); err != nil {
		return nil, fmt.Errorf("ailab api: decode userinfo: %w", err)
	}
	return &profile, nil
}

// UserInfo implements oauth.Provider.
// Accounts without a registered email get a synthesized placeholder so
// downstream provisioning always sees a non-empty address.
func (a *OAuth) UserInfo(ctx context.Context, accessToken string) (*oauth.UserInfo, error) {
	profile, err := a.rawUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	name := profile.DisplayName
	if name == "" {
		name = profile.Username
	}
	email := profile.Email
	if email == "" {
		email = profile.Username + "@example.com"
	}

	return &oauth.UserInfo{
		ID:    string(profile.UserID),
		Name:  name,
		Email: email,
	}, nil
}
