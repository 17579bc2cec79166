package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL acompanha o prazo dos clientes: 7 dias.
const tokenTTL = 7 * 24 * time.Hour

var jwtSecret []byte

// InitJWT define o segredo simétrico usado para assinar e validar tokens.
// Deve ser chamado uma vez na subida do processo, após o config validar o
// tamanho mínimo do segredo.
func InitJWT(secret string) {
	jwtSecret = []byte(secret)
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(userID, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			Issuer:    "limpa-celular-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token inválido ou expirado")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims do token inválidas")
	}

	return claims, nil
}
