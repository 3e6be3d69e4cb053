// aihub/middlewares/auth.go
package middlewares

import (
	"context"
	"net/http"
	"strings"

	"aihub/aihub/config"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const IdentityIDKey contextKey = "identity_id"

func AuthMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			identityID, err := ParseToken(parts[1], cfg.JWTSecret)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), IdentityIDKey, identityID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseToken validates a bearer token and returns the identity id claim.
// Shared with the websocket route, which carries the token in its first frame
// instead of a header.
func ParseToken(tokenStr, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return "", jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	identityID, ok := claims["identity_id"].(string)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	return identityID, nil
}
