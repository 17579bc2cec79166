package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/limpacelular/limpa-celular/utils"
)

// RequireRole deve vir depois de RequireAuth na cadeia.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, utils.MsgNotAuthenticated)
			c.Abort()
			return
		}

		if claims.Role != role {
			utils.RespondError(c, http.StatusForbidden, utils.MsgNoPermission)
			c.Abort()
			return
		}

		c.Next()
	}
}
