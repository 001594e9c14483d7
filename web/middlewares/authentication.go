package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"securityscan.com/securityscan/security"
	"securityscan.com/securityscan/web/common"
)

const identityKey = "identity"

// Authentication checks for a valid Bearer token (header or session cookie)
// and puts the parsed identity into the request context.
func Authentication(base64Secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie("securityscan.AuthCookie")
			if err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = parts[1]
		}

		claims, err := security.ParseIdentityToken(tokenStr, base64Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set(identityKey, &claims.Identity)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated identity carries the
// given role. Must run after Authentication.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil || identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("insufficient permissions"))
			return
		}
		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) *security.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*security.Identity)
	return identity
}
