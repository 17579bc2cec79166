package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        int
	CORSOrigins []string
	LogLevel    string
}

// Load lê e valida as variáveis de ambiente. Intencionalmente direto: falha
// cedo se faltar env.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        4000,
		LogLevel:    "info",
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config inválida: DATABASE_URL é obrigatória")
	}
	if len(cfg.JWTSecret) < 16 {
		return nil, fmt.Errorf("config inválida: JWT_SECRET deve ter ao menos 16 caracteres")
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 {
			return nil, fmt.Errorf("config inválida: PORT deve ser um inteiro positivo, recebido %q", v)
		}
		cfg.Port = p
	}

	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = v
		default:
			return nil, fmt.Errorf("config inválida: LOG_LEVEL deve ser debug|info|warn|error, recebido %q", v)
		}
	}

	return cfg, nil
}

// InitDB abre a conexão escolhendo o driver pela DATABASE_URL: caminhos
// "file:" ou ".db" usam SQLite (dev/testes), qualquer outra coisa é tratada
// como DSN MySQL.
func InitDB(cfg *Config) (*gorm.DB, error) {
	gormLogger := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	var dialector gorm.Dialector
	if isSQLiteURL(cfg.DatabaseURL) {
		dialector = sqlite.Open(sqlitePath(cfg.DatabaseURL))
	} else {
		dialector = mysql.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func isSQLiteURL(url string) bool {
	return strings.HasPrefix(url, "file:") ||
		strings.HasSuffix(url, ".db") ||
		strings.Contains(url, ":memory:")
}

// sqlitePath aceita "file:./dev.db" (formato herdado) e converte para o
// caminho entendido pelo driver.
func sqlitePath(url string) string {
	return strings.TrimPrefix(url, "file:")
}
