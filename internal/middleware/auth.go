package middleware

import (
	"net/http"
	"os"
	"strings"

	"belanja-be/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

// The identity layer signs tokens with this key; we only verify.
var jwtKey = []byte(os.Getenv("SECRET_KEY"))

// AuthMiddleware extracts the verified user id and role from a bearer token
// and stores them in the request context. Requests without a valid token pass
// through anonymous; handlers decide what requires authentication.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		})

		if err != nil || !token.Valid {
			next.ServeHTTP(w, r)
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if uid, ok := claims["user_id"].(float64); ok {
				role, _ := claims["role"].(string)
				ctx := utils.SetUserContext(r.Context(), uint(uid), role)
				r = r.WithContext(ctx)
			}
		}

		next.ServeHTTP(w, r)
	})
}

// SetJWTKey overrides the verification key (tests).
func SetJWTKey(key []byte) {
	jwtKey = key
}
