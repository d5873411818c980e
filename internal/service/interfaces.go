package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	List(ctx context.Context, view, query string) (*TenantListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*TenantFormResponse, error)
	Defaults() *TenantFormResponse
	Create(ctx context.Context, req *CreateTenantRequest) (*TenantResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTenantRequest) (*TenantUpdateResponse, error)
	ToggleStatus(ctx context.Context, id uuid.UUID, confirmed bool) (*ToggleStatusResponse, error)
	Delete(ctx context.Context, id uuid.UUID, confirmed bool) error
	Stats(ctx context.Context) (*DashboardResponse, error)
}

// IdentityServiceInterface defines the interface for the identity admin service
type IdentityServiceInterface interface {
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error)
	UpdatePassword(ctx context.Context, accountID uuid.UUID, password string) error
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
}
