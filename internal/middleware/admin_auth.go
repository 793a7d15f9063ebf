package middleware

import (
	"net/http"

	"hopa-consensus/internal/utils"
	"hopa-consensus/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthMiddleware lets through only bearer tokens signed with secret that
// carry the admin role. The token subject is stored under "subject".
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}

		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			utils.AbortWithError(c, http.StatusForbidden, "Invalid or expired token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != utils.RoleAdmin {
			logger.Log.Warn("unauthorized admin access attempt",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
			)
			utils.AbortWithError(c, http.StatusForbidden, "Forbidden: Admins only")
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set("subject", sub)
		}

		c.Next()
	}
}
