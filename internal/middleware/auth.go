package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"advertisement-api/internal/domain"
	"advertisement-api/internal/service"
	"advertisement-api/pkg/response"
)

const claimsKey = "claims"

const bearerPrefix = "Bearer "

// RequireAuth validates the bearer token and stores the actor's claims
// in the request context. Missing, malformed, expired and tampered
// tokens all produce the same unauthorized response.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid bearer token is present
// and proceeds anonymously otherwise.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if ok {
			if claims, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// Actor returns the authenticated actor's claims, or nil when the
// request is anonymous.
func Actor(c *gin.Context) *domain.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*domain.Claims)
	return claims
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := header[len(bearerPrefix):]
	return token, token != ""
}
