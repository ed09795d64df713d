package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 学習者 (テナント) の基本情報
type Tenant struct {
	TenantID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"tenant_id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

type ContextKey string

const (
	TenantIDKey ContextKey = "tenantID"
)

// CreateTenantRequest はテナント作成APIのリクエストボディ
type CreateTenantRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// TenantResponse はクライアントに返すテナント情報
type TenantResponse struct {
	TenantID  uuid.UUID `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTenantResponse(t *Tenant) *TenantResponse {
	return &TenantResponse{
		TenantID:  t.TenantID,
		Name:      t.Name,
		Email:     t.Email,
		CreatedAt: t.CreatedAt,
	}
}
