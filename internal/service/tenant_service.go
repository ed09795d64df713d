//go:generate mockery --name TenantService --output ./mocks --outpkg mocks --case=underscore
// internal/service/tenant_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantService interface {
	CreateTenant(ctx context.Context, req *model.CreateTenantRequest) (*model.Tenant, error)
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error)
	// Authenticate は middleware.TenantAuthenticator を満たします。
	Authenticate(ctx context.Context, tenantID uuid.UUID) error
}

type tenantService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
}

func NewTenantService(db *gorm.DB, repo repository.TenantRepository) TenantService {
	return &tenantService{db: db, tenantRepo: repo}
}

func (s *tenantService) CreateTenant(ctx context.Context, req *model.CreateTenantRequest) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "名前とメールアドレスは必須です。", "", model.ErrInvalidInput)
	}

	tenant := &model.Tenant{
		TenantID: uuid.New(),
		Name:     name,
		Email:    email,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.tenantRepo.FindByEmail(ctx, tx, email)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "テナントの確認中にエラーが発生しました。", "", err)
		}
		if existing != nil {
			return model.NewAppError("EMAIL_ALREADY_EXISTS", "このメールアドレスは既に登録されています。", "email", model.ErrConflict)
		}

		if err := s.tenantRepo.Create(ctx, tx, tenant); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("EMAIL_ALREADY_EXISTS", "このメールアドレスは既に登録されています。", "email", err)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "テナントの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Tenant created", "tenant_id", tenant.TenantID)
	return tenant, nil
}

// GetTenant は指定されたIDのテナントを取得します (認証用などに利用)
func (s *tenantService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, s.db, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TENANT_NOT_FOUND", "テナントが見つかりません。", "", model.ErrTenantNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テナントの取得に失敗しました。", "", err)
	}
	return tenant, nil
}

// Authenticate はトークンの subject が有効なテナントかを確認します。
func (s *tenantService) Authenticate(ctx context.Context, tenantID uuid.UUID) error {
	ok, err := s.tenantRepo.Exists(ctx, s.db, tenantID)
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "テナントの確認中にエラーが発生しました。", "", err)
	}
	if !ok {
		return model.NewAppError("TENANT_NOT_FOUND", "テナントが見つかりません。", "", model.ErrTenantNotFound)
	}
	return nil
}
