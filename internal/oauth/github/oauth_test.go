package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newTestClient(tokenURL, userURL, emailURL string) *OAuth {
	g := New("client-id", "client-secret", "https://app.example.com/callback")
	if tokenURL != "" {
		g.tokenURL = tokenURL
	}
	if userURL != "" {
		g.userURL = userURL
	}
	if emailURL != "" {
		g.emailURL = emailURL
	}
	return g
}

func TestAuthorizationURL(t *testing.T) {
	g := New("client-id", "secret", "https://app.example.com/callback")

	raw, err := g.AuthorizationURL("invite-123")
	if err != nil {
		t.Fatalf("AuthorizationURL: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	if got := q.Get("client_id"); got != "client-id" {
		t.Fatalf("client_id = %q", got)
	}
	if got := q.Get("scope"); got != "user:email" {
		t.Fatalf("scope = %q", got)
	}
	if got := q.Get("state"); got != "invite-123" {
		t.Fatalf("state = %q", got)
	}
}

func TestAuthorizationURL_NoInviteToken(t *testing.T) {
	g := New("client-id", "secret", "https://app.example.com/callback")

	raw, err := g.AuthorizationURL("")
	if err != nil {
		t.Fatalf("AuthorizationURL: %v", err)
	}
	if strings.Contains(raw, "state=") {
		t.Fatalf("expected no state param, got %q", raw)
	}
}

func TestExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("code"); got != "the-code" {
			t.Fatalf("code = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Fatalf("accept = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-abc","token_type":"bearer","scope":"user:email"}`))
	}))
	defer srv.Close()

	g := newTestClient(srv.URL, "", "")
	tok, err := g.ExchangeCode(context.Background(), "the-code")
	if err != nil {
		t.Fatalf("ExchangeCode: %v", err)
	}
	if tok != "tok-abc" {
		t.Fatalf("token = %q", tok)
	}
}

func TestExchangeCode_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"bad_verification_code","error_description":"The code is incorrect"}`))
	}))
	defer srv.Close()

	g := newTestClient(srv.URL, "", "")
	if _, err := g.ExchangeCode(context.Background(), "bad"); err == nil {
		t.Fatal("expected error for missing access_token")
	}
}

func TestUserInfo_PrimaryEmail(t *testing.T) {
	userSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "token tok-abc" {
			t.Fatalf("authorization = %q", got)
		}
		_, _ = w.Write([]byte(`{"id":42,"login":"octo","name":"Octo Cat","email":null}`))
	}))
	defer userSrv.Close()

	emailSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"email":"secondary@example.com","primary":false,"verified":true},
			{"email":"primary@example.com","primary":true,"verified":true}
		]`))
	}))
	defer emailSrv.Close()

	g := newTestClient("", userSrv.URL, emailSrv.URL)
	info, err := g.UserInfo(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("UserInfo: %v", err)
	}
	if info.ID != "42" {
		t.Fatalf("id = %q", info.ID)
	}
	if info.Name != "Octo Cat" {
		t.Fatalf("name = %q", info.Name)
	}
	if info.Email != "primary@example.com" {
		t.Fatalf("email = %q", info.Email)
	}
}

func TestUserInfo_NoreplyFallback(t *testing.T) {
	userSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":42,"login":"octo","name":"Octo Cat"}`))
	}))
	defer userSrv.Close()

	// Emails privados: la lista viene vacía
	emailSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer emailSrv.Close()

	g := newTestClient("", userSrv.URL, emailSrv.URL)
	info, err := g.UserInfo(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("UserInfo: %v", err)
	}
	if info.Email != "42+octo@users.noreply.github.com" {
		t.Fatalf("email = %q", info.Email)
	}
}

func TestUserInfo_EmailCallFails(t *testing.T) {
	userSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"login":"ghost","name":""}`))
	}))
	defer userSrv.Close()

	emailSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer emailSrv.Close()

	g := newTestClient("", userSrv.URL, emailSrv.URL)
	info, err := g.UserInfo(context.Background(), "tok")
	if err != nil {
		t.Fatalf("UserInfo: %v", err)
	}
	if info.Email != "7+ghost@users.noreply.github.com" {
		t.Fatalf("email = %q", info.Email)
	}
}

func TestUserInfo_UserCallFails(t *testing.T) {
	userSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer userSrv.Close()

	g := newTestClient("", userSrv.URL, userSrv.URL)
	if _, err := g.UserInfo(context.Background(), "bad-token"); err == nil {
		t.Fatal("expected error for non-200 user call")
	}
}
