package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/limpacelular/limpa-celular/api"
	"github.com/limpacelular/limpa-celular/models"
	"github.com/limpacelular/limpa-celular/utils"
)

type CloudConfigController struct {
	DB *gorm.DB
}

func NewCloudConfigController(db *gorm.DB) *CloudConfigController {
	return &CloudConfigController{DB: db}
}

func (ccc *CloudConfigController) Get(c *gin.Context) {
	var cfg models.CloudConfig
	err := ccc.DB.First(&cfg, models.CloudConfigSingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondJSON(c, http.StatusOK, gin.H{"config": nil})
		return
	}
	if err != nil {
		utils.ErrorLogger.Printf("cloud config: consulta falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"config": cfg.ToAPI()})
}

// Put grava a configuração na chave fixa com upsert atômico: dois PUTs
// concorrentes nunca criam duas linhas.
func (ccc *CloudConfigController) Put(c *gin.Context) {
	var body api.CloudConfigBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.MsgInvalidData)
		return
	}

	cfg := models.CloudConfig{
		ID:                models.CloudConfigSingletonID,
		Provider:          body.Provider,
		Enabled:           *body.Enabled,
		BucketOrContainer: body.BucketOrContainer,
		Region:            body.Region,
	}

	err := ccc.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"provider", "enabled", "bucket_or_container", "region", "updated_at",
		}),
	}).Create(&cfg).Error
	if err != nil {
		utils.ErrorLogger.Printf("cloud config: upsert falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	// Recarrega para devolver os timestamps reais após o upsert.
	if err := ccc.DB.First(&cfg, models.CloudConfigSingletonID).Error; err != nil {
		utils.ErrorLogger.Printf("cloud config: reload falhou: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"config": cfg.ToAPI()})
}
