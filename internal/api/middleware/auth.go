package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"

	"github.com/jinhanworks/board-notifier/internal/api/respond"
)

const userIDKey = "user_id"

// Claims carries the authenticated user id inside the JWT payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// Auth validates the bearer token and stores the acting user id in the
// request context. Everything below the handler receives the user id as
// an explicit argument; this is the only place that reads ambient auth
// state.
func Auth(secret string) func(c *ginext.Context) {
	return func(c *ginext.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if authHeader == "" || !found {
			respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("missing bearer token"))
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			respond.Fail(c.Writer, http.StatusUnauthorized, errors.New("invalid token"))
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id stored by Auth.
func UserID(c *ginext.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}

	id, ok := v.(int64)
	return id, ok
}
