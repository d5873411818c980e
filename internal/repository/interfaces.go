package repository

import (
	"context"
	"time"

	"postl-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface is the narrow tenant store used by the service layer
type TenantRepositoryInterface interface {
	// GetAll returns every tenant, newest first
	GetAll(ctx context.Context) ([]models.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	// Create inserts tenant and refreshes it with the stored row
	Create(ctx context.Context, tenant *models.Tenant) error
	// Update applies a partial update; fields absent from updates are left untouched
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Deactivate clears active only while the row is still active and expired
	// before now. It reports whether a row changed; no match is not an error.
	Deactivate(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	Ping(ctx context.Context) error
}

// ProfileRepositoryInterface writes the identity profile's back-link to a tenant
type ProfileRepositoryInterface interface {
	LinkTenant(ctx context.Context, accountID, tenantID uuid.UUID) error
}
