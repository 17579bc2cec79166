package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limpacelular/limpa-celular/models"
	"github.com/limpacelular/limpa-celular/utils"
)

func TestRegisterCreatesUserWithUserRole(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "a@x.com",
		"password": "password1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, models.RoleUser, user["role"])

	// Claims do token devem bater com o usuário persistido.
	claims, err := utils.ParseToken(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, user["id"], claims.Subject)
	assert.Equal(t, models.RoleUser, claims.Role)

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "a@x.com").Error)
	assert.NotEqual(t, "password1", stored.PasswordHash)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	registerUser(t, r, "dup@x.com", "password1")

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "dup@x.com",
		"password": "outrasenha1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "E-mail já cadastrado", decodeBody(t, w)["message"])

	var count int64
	db.Model(&models.User{}).Where("email = ?", "dup@x.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	cases := []map[string]string{
		{"email": "not-an-email", "password": "password1"},
		{"email": "a@x.com", "password": "curta"}, // < 8 chars
		{"email": "a@x.com"},
	}
	for _, body := range cases {
		w := doJSON(t, r, http.MethodPost, "/auth/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Dados inválidos", decodeBody(t, w)["message"])
	}
}

func TestLoginSuccessAndFailure(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	_, userID := registerUser(t, r, "login@x.com", "password1")

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "login@x.com",
		"password": "password1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	claims, err := utils.ParseToken(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "login@x.com",
		"password": "senha-errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Credenciais inválidas", decodeBody(t, w)["message"])

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "inexistente@x.com",
		"password": "password1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	w := doJSON(t, r, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Não autenticado", decodeBody(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/me", "token-qualquer", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token inválido", decodeBody(t, w)["message"])
}

func TestMeReturnsProfile(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	token, userID := registerUser(t, r, "me@x.com", "password1")

	w := doJSON(t, r, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, userID, user["id"])
	assert.Equal(t, "me@x.com", user["email"])
	assert.Equal(t, models.RoleUser, user["role"])
	assert.NotEmpty(t, user["createdAt"])
}
