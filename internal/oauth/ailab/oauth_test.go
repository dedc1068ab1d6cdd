package ailab

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newTestClient(baseURL string) *OAuth {
	return New("client-id", "secret", "https://app.example.com/callback", baseURL)
}

func TestAuthorizationURL_DerivedFromBase(t *testing.T) {
	a := newTestClient("https://ailab.example.com/")

	raw, err := a.AuthorizationURL("inv-9")
	if err != nil {
		t.Fatalf("AuthorizationURL: %v", err)
	}
	if !strings.HasPrefix(raw, "https://ailab.example.com/oauth/authorize?") {
		t.Fatalf("unexpected url: %q", raw)
	}
	u, _ := url.Parse(raw)
	if got := u.Query().Get("state"); got != "inv-9" {
		t.Fatalf("state = %q", got)
	}
}

func TestExchangeCode_FlatResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/token" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("content-type = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"grant_type":"authorization_code"`) {
			t.Fatalf("body = %s", body)
		}
		_, _ = w.Write([]byte(`{"access_token":"flat-token"}`))
	}))
	defer srv.Close()

	a := newTestClient(srv.URL)
	tok, err := a.ExchangeCode(context.Background(), "code-1")
	if err != nil {
		t.Fatalf("ExchangeCode: %v", err)
	}
	if tok != "flat-token" {
		t.Fatalf("token = %q", tok)
	}
}

func TestExchangeCode_WrappedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"msg":"ok","data":{"access_token":"wrapped-token"}}`))
	}))
	defer srv.Close()

	a := newTestClient(srv.URL)
	tok, err := a.ExchangeCode(context.Background(), "code-1")
	if err != nil {
		t.Fatalf("ExchangeCode: %v", err)
	}
	if tok != "wrapped-token" {
		t.Fatalf("token = %q", tok)
	}
}

func TestExchangeCode_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":400,"msg":"invalid code","data":{}}`))
	}))
	defer srv.Close()

	a := newTestClient(srv.URL)
	if _, err := a.ExchangeCode(context.Background(), "bad"); err == nil {
		t.Fatal("expected error for missing access_token")
	}
}

func TestUserInfo_WrappedWithFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/userinfo" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("authorization = %q", got)
		}
		// Sin displayName ni email: caen los fallbacks
		_, _ = w.Write([]byte(`{"code":200,"msg":"ok","data":{"userId":12345,"username":"jdoe"}}`))
	}))
	defer srv.Close()

	a := newTestClient(srv.URL)
	info, err := a.UserInfo(context.Background(), "tok")
	if err != nil {
		t.Fatalf("UserInfo: %v", err)
	}
	if info.ID != "12345" {
		t.Fatalf("id = %q", info.ID)
	}
	if info.Name != "jdoe" {
		t.Fatalf("name = %q", info.Name)
	}
	if info.Email != "jdoe@example.com" {
		t.Fatalf("email = %q", info.Email)
	}
}

func TestUserInfo_FlatWithAllFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"userId":"u-77","username":"jdoe","displayName":"John Doe","email":"john@corp.com"}`))
	}))
	defer srv.Close()

	a := newTestClient(srv.URL)
	info, err := a.UserInfo(context.Background(), "tok")
	if err != nil {
		t.Fatalf("UserInfo: %v", err)
	}
	if info.ID != "u-77" {
		t.Fatalf("id = %q", info.ID)
	}
	if info.Name != "John Doe" {
		t.Fatalf("name = %q", info.Name)
	}
	if info.Email != "john@corp.com" {
		t.Fatalf("email = %q", info.Email)
	}
}

func TestUserInfo_Non200IsHardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":500,"msg":"boom"}`))
	}))
	defer srv.Close()

	a := newTestClient(srv.URL)
	if _, err := a.UserInfo(context.Background(), "tok"); err == nil {
		t.Fatal("expected error for non-200 userinfo")
	}
}
