package helpers

import (
	"net/http"
	"strconv"
	"strings"
)

// Defaults de paginación de los endpoints de lookup.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// QueryInt parsea un query param entero con fallback al default.
// Valores malformados o fuera de rango caen al default, nunca 400.
func QueryInt(r *http.Request, key string, def int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Pagination extrae page y limit con defaults y tope de limit.
func Pagination(r *http.Request) (page, limit int) {
	page = QueryInt(r, "page", DefaultPage)
	limit = QueryInt(r, "limit", DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
