package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/limpacelular/limpa-celular/utils"
)

// Recovery converte qualquer panic em 500 genérico; a causa real fica só no
// log de erro.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				utils.ErrorLogger.Printf("panic em %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				if !c.Writer.Written() {
					utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
