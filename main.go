package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/limpacelular/limpa-celular/config"
	"github.com/limpacelular/limpa-celular/models"
	"github.com/limpacelular/limpa-celular/router"
	"github.com/limpacelular/limpa-celular/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	utils.InitLogger(cfg.LogLevel)
	utils.InitJWT(cfg.JWTSecret)

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Falha ao conectar no banco: %v", err)
	}

	autoMigrate(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db, cfg.CORSOrigins)

	utils.InfoLogger.Printf("API rodando em http://localhost:%d", cfg.Port)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.CleaningRequest{},
		&models.CloudConfig{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Falha no AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate concluído.")
}
