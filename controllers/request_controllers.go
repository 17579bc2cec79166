package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/limpacelular/limpa-celular/api"
	"github.com/limpacelular/limpa-celular/middlewares"
	"github.com/limpacelular/limpa-celular/models"
	"github.com/limpacelular/limpa-celular/services"
	"github.com/limpacelular/limpa-celular/utils"
)

type RequestController struct {
	DB *gorm.DB
}

func NewRequestController(db *gorm.DB) *RequestController {
	return &RequestController{DB: db}
}

func (rc *RequestController) Create(c *gin.Context) {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.MsgNotAuthenticated)
		return
	}

	// Corpo vazio é válido: deviceInfo é opcional.
	var body api.CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, utils.MsgInvalidData)
		return
	}

	request := models.CleaningRequest{
		UserID:     claims.Subject,
		DeviceInfo: body.DeviceInfo,
		Status:     models.StatusPending,
	}
	if err := rc.DB.Create(&request).Error; err != nil {
		utils.ErrorLogger.Printf("create request: insert falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, gin.H{"request": request.ToAPI()})
}

// List devolve todas as solicitações (com e-mail do dono) para admin e apenas
// as próprias para usuário comum, sempre da mais recente para a mais antiga.
func (rc *RequestController) List(c *gin.Context) {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.MsgNotAuthenticated)
		return
	}

	var requests []models.CleaningRequest
	query := rc.DB.Order("created_at DESC")
	if claims.Role == models.RoleAdmin {
		query = query.Preload("User")
	} else {
		query = query.Where("user_id = ?", claims.Subject)
	}
	if err := query.Find(&requests).Error; err != nil {
		utils.ErrorLogger.Printf("list requests: consulta falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	payload := make([]api.Request, 0, len(requests))
	for i := range requests {
		payload = append(payload, requests[i].ToAPI())
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"requests": payload})
}

// UpdateStatus aceita qualquer valor do enum, inclusive COMPLETED; é o único
// caminho para esse estado.
func (rc *RequestController) UpdateStatus(c *gin.Context) {
	var body api.UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.MsgInvalidData)
		return
	}

	var request models.CleaningRequest
	if err := rc.DB.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.MsgRequestNotFound)
		return
	}

	request.Status = body.Status
	if err := rc.DB.Save(&request).Error; err != nil {
		utils.ErrorLogger.Printf("update status: save falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"request": request.ToAPI()})
}

// MockScan gera o payload simulado, marca a solicitação como SCANNED e
// persiste o JSON serializado. Não há guarda contra re-scan: qualquer estado
// atual é sobrescrito.
func (rc *RequestController) MockScan(c *gin.Context) {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.MsgNotAuthenticated)
		return
	}

	var request models.CleaningRequest
	if err := rc.DB.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.MsgRequestNotFound)
		return
	}

	if claims.Role != models.RoleAdmin && request.UserID != claims.Subject {
		utils.RespondError(c, http.StatusForbidden, utils.MsgNoPermission)
		return
	}

	scan := services.MockScan()
	raw, err := json.Marshal(scan)
	if err != nil {
		utils.ErrorLogger.Printf("mock scan: marshal falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	serialized := string(raw)
	request.Status = models.StatusScanned
	request.ScanResultJSON = &serialized
	if err := rc.DB.Save(&request).Error; err != nil {
		utils.ErrorLogger.Printf("mock scan: save falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"request": request.ToAPI(), "scan": scan})
}
