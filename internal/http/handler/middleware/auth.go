package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

// AuthMiddleware guards the RPC surface with bearer tokens issued by the
// authenticate endpoint. When no secret is configured the guard is disabled
// and every request passes through.
type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
	enabled   bool
	skipPaths map[string]struct{}
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator, enabled bool, skipPaths ...string) *AuthMiddleware {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
		enabled:   enabled,
		skipPaths: skip,
	}
}

func (m *AuthMiddleware) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := m.skipPaths[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		if _, err := m.validator.Validate(token); err != nil {
			m.logs.Errorw("token validation failed", "error", err, "path", r.URL.Path)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
