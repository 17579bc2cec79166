package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/limpacelular/limpa-celular/api"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(16);not null;default:'USER'" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// ToAPI devolve a projeção pública do usuário (sem hash de senha e sem
// createdAt; o /me preenche createdAt por cima).
func (u *User) ToAPI() api.User {
	return api.User{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}
