package social

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/workhub/internal/config"
	socialsvc "github.com/dropDatabas3/workhub/internal/http/services/social"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{}
	cfg.Providers.GitHub = config.ProviderConfig{
		Enabled:      true,
		ClientID:     "gh-id",
		ClientSecret: "gh-secret",
		RedirectURL:  "https://app.example.com/callback",
	}
	ctrl := NewController(socialsvc.NewRegistry(cfg))

	r := chi.NewRouter()
	r.Get("/oauth/providers", ctrl.Providers)
	r.Get("/oauth/login/{provider}", ctrl.Login)
	r.Get("/oauth/authorize/{provider}", ctrl.Authorize)
	return r
}

func TestLogin_RedirectsToProvider(t *testing.T) {
	h := newTestRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/oauth/login/github?invite_token=inv-1", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://github.com/login/oauth/authorize?") {
		t.Fatalf("location = %q", loc)
	}
	if !strings.Contains(loc, "state=inv-1") {
		t.Fatalf("location sin state: %q", loc)
	}
}

func TestLogin_UnknownProvider(t *testing.T) {
	h := newTestRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/oauth/login/facebook", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "PROVIDER_NOT_FOUND" {
		t.Fatalf("code = %q", body.Code)
	}
}

func TestAuthorize_MissingCode(t *testing.T) {
	h := newTestRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/oauth/authorize/github", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestProviders_ListsEnabled(t *testing.T) {
	h := newTestRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/oauth/providers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Providers []string `json:"providers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Providers) != 1 || body.Providers[0] != "github" {
		t.Fatalf("providers = %v", body.Providers)
	}
}
