package utils

import "github.com/gin-gonic/gin"

// Mensagens expostas ao cliente. O detalhe real do erro fica só no log.
const (
	MsgInvalidData        = "Dados inválidos"
	MsgNotAuthenticated   = "Não autenticado"
	MsgInvalidToken       = "Token inválido"
	MsgNoPermission       = "Sem permissão"
	MsgInvalidCredentials = "Credenciais inválidas"
	MsgEmailTaken         = "E-mail já cadastrado"
	MsgRequestNotFound    = "Solicitação não encontrada"
	MsgUserNotFound       = "Usuário não encontrado"
	MsgInternalError      = "Erro interno"
)

func RespondJSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
