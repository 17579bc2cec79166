package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/limpacelular/limpa-celular/api"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusScanned   = "SCANNED"
	StatusCompleted = "COMPLETED"
)

type CleaningRequest struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID         string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	User           *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Status         string    `gorm:"type:varchar(16);not null;default:'PENDING';index" json:"status"`
	DeviceInfo     *string   `gorm:"type:varchar(500)" json:"deviceInfo"`
	ScanResultJSON *string   `gorm:"type:text;column:scan_result_json" json:"scanResultJson"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (r *CleaningRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ToAPI inclui o dono apenas quando a associação foi carregada (listagem do
// admin faz Preload; a do usuário comum não).
func (r *CleaningRequest) ToAPI() api.Request {
	out := api.Request{
		ID:             r.ID,
		UserID:         r.UserID,
		Status:         r.Status,
		DeviceInfo:     r.DeviceInfo,
		ScanResultJSON: r.ScanResultJSON,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.User != nil {
		out.User = &api.UserRef{ID: r.User.ID, Email: r.User.Email}
	}
	return out
}
