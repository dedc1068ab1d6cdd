package helpers

import (
	"net/http/httptest"
	"testing"
)

func TestPagination_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/x", nil)
	page, limit := Pagination(r)
	if page != 1 || limit != 20 {
		t.Fatalf("page = %d limit = %d", page, limit)
	}
}

func TestPagination_Explicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?page=3&limit=50", nil)
	page, limit := Pagination(r)
	if page != 3 || limit != 50 {
		t.Fatalf("page = %d limit = %d", page, limit)
	}
}

func TestPagination_MalformedFallsToDefaults(t *testing.T) {
	cases := []string{
		"/x?page=abc&limit=xyz",
		"/x?page=0&limit=0",
		"/x?page=-2&limit=-5",
		"/x?page=1.5&limit=2.5",
	}
	for _, c := range cases {
		r := httptest.NewRequest("GET", c, nil)
		page, limit := Pagination(r)
		if page != 1 || limit != 20 {
			t.Fatalf("%s: page = %d limit = %d", c, page, limit)
		}
	}
}

func TestPagination_LimitClamped(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?limit=5000", nil)
	_, limit := Pagination(r)
	if limit != MaxLimit {
		t.Fatalf("limit = %d", limit)
	}
}
