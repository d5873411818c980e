package testutils

import (
	"time"

	"postl-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct {
	now time.Time
}

// NewTenantFactory creates a new TenantFactory anchored at now
func NewTenantFactory(now time.Time) *TenantFactory {
	return &TenantFactory{now: now}
}

// Create creates an active test Tenant whose contract runs for another year
func (f *TenantFactory) Create() *models.Tenant {
	ownerID := uuid.New()
	return &models.Tenant{
		ID:        uuid.New(),
		Name:      "Test Shop",
		OwnerName: "Test Owner",
		Email:     "owner@test-shop.com",
		StartDate: f.now.AddDate(0, -1, 0),
		ExpiredAt: f.now.AddDate(1, 0, 0),
		Active:    true,
		OwnerID:   &ownerID,
		CreatedAt: f.now.AddDate(0, -1, 0),
	}
}

// WithName sets a custom name and email for the tenant
func (f *TenantFactory) WithName(name string) *models.Tenant {
	t := f.Create()
	t.Name = name
	t.Email = "owner@" + name + ".com"
	return t
}

// Expired creates a tenant whose contract ended yesterday but is still flagged active
func (f *TenantFactory) Expired() *models.Tenant {
	t := f.Create()
	t.ExpiredAt = f.now.AddDate(0, 0, -1)
	return t
}

// Inactive creates a manually locked tenant with a live contract
func (f *TenantFactory) Inactive() *models.Tenant {
	t := f.Create()
	t.Active = false
	return t
}

// WithoutOwner creates a tenant with no owner account reference
func (f *TenantFactory) WithoutOwner() *models.Tenant {
	t := f.Create()
	t.OwnerID = nil
	return t
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with no tenant link
func (f *ProfileFactory) Create() *models.Profile {
	return &models.Profile{
		ID:       uuid.New(),
		FullName: "Test Owner",
		Role:     "tenant_admin",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant  *TenantFactory
	Profile *ProfileFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:  NewTenantFactory(time.Now().UTC()),
		Profile: NewProfileFactory(),
	}
}
