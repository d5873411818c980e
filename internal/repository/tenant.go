package repository

import (
	"context"
	"time"

	"postl-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles tenant persistence directly against the backend database
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// GetAll retrieves all tenants ordered by creation time, newest first
func (r *TenantRepository) GetAll(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Create creates a new tenant
func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

// Update updates a tenant using a map of updates
func (r *TenantRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Tenant{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a tenant
func (r *TenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Tenant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate clears active for a tenant that is still flagged active and has expired
func (r *TenantRepository) Deactivate(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Tenant{}).
		Where("id = ? AND active AND expired_at < ?", id, now).
		Update("active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Ping checks the database connection
func (r *TenantRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
