package middleware

import (
	"context"
	"net/http"
	"strings"

	"satta_backend/internal/model"
	"satta_backend/pkg/resp"
	"satta_backend/pkg/token"
)

type ctxKey int

const adminClaimsKey ctxKey = iota

// AdminOnly Пропускает только запросы с валидным admin-токеном в Authorization: Bearer
func AdminOnly(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), adminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext Клеймы, положенные AdminOnly
func AdminFromContext(ctx context.Context) (*model.AdminClaims, bool) {
	claims, ok := ctx.Value(adminClaimsKey).(*model.AdminClaims)
	return claims, ok
}
