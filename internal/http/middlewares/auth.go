package middlewares

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	httperrors "github.com/dropDatabas3/workhub/internal/http/errors"
)

// BearerAuth valida un bearer token HS256 contra el secret configurado.
// Con secret vacío el guard queda deshabilitado y deja pasar todo.
func BearerAuth(secret, issuer string) Middleware {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		key := []byte(secret)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				httperrors.WriteError(w, httperrors.ErrUnauthorized)
				return
			}

			opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
			if issuer != "" {
				opts = append(opts, jwt.WithIssuer(issuer))
			}
			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				return key, nil
			}, opts...)
			if err != nil || !token.Valid {
				httperrors.WriteError(w, httperrors.ErrTokenInvalid)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
