package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/limpacelular/limpa-celular/models"
	"github.com/limpacelular/limpa-celular/utils"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

func (hc *HealthController) ping() error {
	sqlDB, err := hc.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (hc *HealthController) Health(c *gin.Context) {
	if err := hc.ping(); err != nil {
		utils.ErrorLogger.Printf("health: banco inacessível: %v", err)
		utils.RespondJSON(c, http.StatusServiceUnavailable, gin.H{"ok": false})
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"ok": true})
}

// DatabaseHealth é a variante estendida: além do ping, reporta a existência
// das tabelas esperadas no schema.
func (hc *HealthController) DatabaseHealth(c *gin.Context) {
	if err := hc.ping(); err != nil {
		utils.ErrorLogger.Printf("health/db: banco inacessível: %v", err)
		utils.RespondJSON(c, http.StatusServiceUnavailable, gin.H{"ok": false})
		return
	}

	migrator := hc.DB.Migrator()
	tables := gin.H{
		"users":             migrator.HasTable(&models.User{}),
		"cleaning_requests": migrator.HasTable(&models.CleaningRequest{}),
		"cloud_configs":     migrator.HasTable(&models.CloudConfig{}),
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"ok":      true,
		"dialect": hc.DB.Name(),
		"tables":  tables,
	})
}
