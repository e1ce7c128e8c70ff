package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/habitara-dev/habitara-api/internal/models"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
	"github.com/habitara-dev/habitara-api/pkg/response"
)

// RBAC enforces role-based access control for routes. The self-protection
// rules (an admin cannot demote or deactivate itself) are not handled here;
// they belong to the individual gateways where the target id is known.
func RBAC(allowed ...models.Role) gin.HandlerFunc {
	allowedRoles := make(map[models.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedRoles[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.JWTClaims)

		if _, ok := allowedRoles[claims.Role]; ok {
			c.Next()
			return
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}

// AdminOnly is shorthand for the most common gateway policy.
func AdminOnly() gin.HandlerFunc {
	return RBAC(models.RoleAdmin)
}
