//go:generate mockery --name TenantRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantRepository interface {
	Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Tenant, error)
	Exists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (bool, error)
}

// normalizeEmail はメールアドレスを保存・検索用の形 (前後空白なし、小文字) にします。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type gormTenantRepository struct{}

func NewGormTenantRepository() TenantRepository {
	return &gormTenantRepository{}
}

func (r *gormTenantRepository) Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error {
	logger := middleware.GetLogger(ctx)

	tenant.Email = normalizeEmail(tenant.Email)
	result := db.WithContext(ctx).Create(tenant)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on create tenant",
				"error", result.Error,
				"email", tenant.Email,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating tenant in DB",
			"error", result.Error,
			"tenant_name", tenant.Name,
		)
		return fmt.Errorf("gormTenantRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTenantRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var tenant model.Tenant

	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding tenant by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormTenantRepository.FindByID: %w", result.Error)
	}
	return &tenant, nil
}

func (r *gormTenantRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var tenant model.Tenant

	email = normalizeEmail(email)
	result := db.WithContext(ctx).Where("email = ?", email).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Tenant not found by email", "email", email)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding tenant by email in DB",
			"error", result.Error,
			"email", email,
		)
		return nil, fmt.Errorf("gormTenantRepository.FindByEmail: %w", result.Error)
	}
	return &tenant, nil
}

// Exists は論理削除されていないテナントが存在するかを返します。認証のたびに呼ばれるので件数だけを数えます。
func (r *gormTenantRepository) Exists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (bool, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Tenant{}).Where("tenant_id = ?", tenantID).Limit(1).Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error checking tenant existence in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return false, fmt.Errorf("gormTenantRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}
