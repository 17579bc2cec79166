// Package api define os tipos de requisição/resposta compartilhados entre os
// controllers HTTP e o client tipado, evitando a duplicação de shapes que
// existia entre os clientes web e mobile.
package api

import "time"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateRequestBody struct {
	DeviceInfo *string `json:"deviceInfo" binding:"omitempty,max=500"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED SCANNED COMPLETED"`
}

type CloudConfigBody struct {
	Provider          string  `json:"provider" binding:"required,oneof=NONE AZURE_BLOB AWS_S3 GOOGLE_DRIVE OTHER"`
	Enabled           *bool   `json:"enabled" binding:"required"`
	BucketOrContainer *string `json:"bucketOrContainer" binding:"omitempty,max=200"`
	Region            *string `json:"region" binding:"omitempty,max=100"`
}

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// UserRef identifica o dono de uma solicitação na listagem do admin.
type UserRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Request struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Status         string    `json:"status"`
	DeviceInfo     *string   `json:"deviceInfo"`
	ScanResultJSON *string   `json:"scanResultJson"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	User           *UserRef  `json:"user,omitempty"`
}

type CloudConfig struct {
	ID                uint      `json:"id"`
	Provider          string    `json:"provider"`
	Enabled           bool      `json:"enabled"`
	BucketOrContainer *string   `json:"bucketOrContainer"`
	Region            *string   `json:"region"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ScanItem struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	SizeBytes int64  `json:"sizeBytes"`
	Path      string `json:"path"`
}

type ScanGroup struct {
	Theme string     `json:"theme"`
	Items []ScanItem `json:"items"`
}

type ScanResult struct {
	GeneratedAt time.Time   `json:"generatedAt"`
	Groups      []ScanGroup `json:"groups"`
}

// TotalSizeBytes soma o tamanho de todos os itens do scan.
func (s ScanResult) TotalSizeBytes() int64 {
	var total int64
	for _, g := range s.Groups {
		for _, it := range g.Items {
			total += it.SizeBytes
		}
	}
	return total
}
