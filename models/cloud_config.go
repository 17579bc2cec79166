package models

import (
	"time"

	"github.com/limpacelular/limpa-celular/api"
)

const (
	ProviderNone        = "NONE"
	ProviderAzureBlob   = "AZURE_BLOB"
	ProviderAWSS3       = "AWS_S3"
	ProviderGoogleDrive = "GOOGLE_DRIVE"
	ProviderOther       = "OTHER"
)

// CloudConfigSingletonID fixa a linha única de configuração. O upsert sempre
// escreve nessa chave, então escritas concorrentes convergem para um registro.
const CloudConfigSingletonID uint = 1

type CloudConfig struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Provider          string    `gorm:"type:varchar(32);not null;default:'NONE'" json:"provider"`
	Enabled           bool      `gorm:"not null;default:false" json:"enabled"`
	BucketOrContainer *string   `gorm:"type:varchar(200)" json:"bucketOrContainer"`
	Region            *string   `gorm:"type:varchar(100)" json:"region"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (cc *CloudConfig) ToAPI() api.CloudConfig {
	return api.CloudConfig{
		ID:                cc.ID,
		Provider:          cc.Provider,
		Enabled:           cc.Enabled,
		BucketOrContainer: cc.BucketOrContainer,
		Region:            cc.Region,
		CreatedAt:         cc.CreatedAt,
		UpdatedAt:         cc.UpdatedAt,
	}
}
