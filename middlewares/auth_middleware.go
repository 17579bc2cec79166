package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/limpacelular/limpa-celular/utils"
)

// claimsContextKey guarda as claims decodificadas no contexto do request.
// Acesso sempre via ClaimsFrom, nunca por string solta nos handlers.
const claimsContextKey = "limpacelular/authClaims"

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, utils.MsgNotAuthenticated)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, utils.MsgInvalidToken)
			c.Abort()
			return
		}

		c.Set(claimsContextKey, *claims)
		c.Next()
	}
}

// ClaimsFrom devolve as claims tipadas anexadas pelo RequireAuth.
func ClaimsFrom(c *gin.Context) (utils.Claims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return utils.Claims{}, false
	}
	claims, ok := v.(utils.Claims)
	return claims, ok
}
