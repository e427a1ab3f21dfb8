package middleware

import (
	"net/http"
	"strings"

	"github.com/voyago/api/internal/entity"
	"github.com/voyago/api/pkg/auth"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identify extracts the caller identity from the Authorization header.
// A missing or invalid token leaves the request anonymous; denying is
// the job of RequireAuth / RequireAdmin on guarded routes.
func Identify(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set(identityKey, &entity.Identity{
			UserID: claims.UserID,
			Role:   entity.Role(claims.Role),
		})
		c.Next()
	}
}

// RequireAuth aborts anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "authentication required",
				"error":   entity.ErrUnauthorized.Error(),
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts requests without the admin role with 403 (401 when
// anonymous).
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "authentication required",
				"error":   entity.ErrUnauthorized.Error(),
			})
			return
		}
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  http.StatusForbidden,
				"message": "admin access required",
				"error":   entity.ErrForbidden.Error(),
			})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the caller identity attached by Identify, or nil
// for anonymous requests.
func IdentityFrom(c *gin.Context) *entity.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, ok := v.(*entity.Identity)
	if !ok {
		return nil
	}
	return identity
}
