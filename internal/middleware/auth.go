package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies the bearer token and stores the subject and role in the
// request context. Token issuance is external; only HS256 is accepted.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthorized.Error()})
			return
		}

		var cl claims
		parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid || cl.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthorized.Error()})
			return
		}

		c.Set(ContextUserID, cl.Subject)
		c.Set(ContextRole, cl.Role)

		c.Next()
	}
}

// RequireRole guards a route group; Auth must run first.
func RequireRole(role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString(ContextRole) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
			return
		}

		c.Next()
	}
}
