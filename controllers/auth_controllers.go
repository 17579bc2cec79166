package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/limpacelular/limpa-celular/api"
	"github.com/limpacelular/limpa-celular/middlewares"
	"github.com/limpacelular/limpa-celular/models"
	"github.com/limpacelular/limpa-celular/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Register cria o usuário com papel USER. Papel ADMIN nunca é atribuído por
// endpoint; a promoção acontece direto no banco.
func (ac *AuthController) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.MsgInvalidData)
		return
	}

	var existing models.User
	err := ac.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		utils.RespondError(c, http.StatusConflict, utils.MsgEmailTaken)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ErrorLogger.Printf("register: consulta de e-mail falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("register: bcrypt falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         models.RoleUser,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		utils.ErrorLogger.Printf("register: insert falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.ErrorLogger.Printf("register: geração de token falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	utils.InfoLogger.Printf("Novo usuário registrado: %s", user.Email)
	utils.RespondJSON(c, http.StatusCreated, api.AuthResponse{Token: token, User: user.ToAPI()})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.MsgInvalidData)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, utils.MsgInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, utils.MsgInvalidCredentials)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.ErrorLogger.Printf("login: geração de token falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	utils.RespondJSON(c, http.StatusOK, api.AuthResponse{Token: token, User: user.ToAPI()})
}

// Me devolve o perfil do usuário autenticado, incluindo createdAt.
func (ac *AuthController) Me(c *gin.Context) {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.MsgNotAuthenticated)
		return
	}

	var user models.User
	if err := ac.DB.First(&user, "id = ?", claims.Subject).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.MsgUserNotFound)
		return
	}

	payload := user.ToAPI()
	payload.CreatedAt = &user.CreatedAt
	utils.RespondJSON(c, http.StatusOK, gin.H{"user": payload})
}
