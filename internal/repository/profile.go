package repository

import (
	"context"

	"postl-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles profile writes directly against the backend database
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// LinkTenant points the account's profile at tenantID
func (r *ProfileRepository) LinkTenant(ctx context.Context, accountID, tenantID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", accountID).
		Update("tenant_id", tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
