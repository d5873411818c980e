package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant is a shop managed from the admin panel.
// Active is cached state; ExpiredAt is authoritative for liveness.
type Tenant struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string     `json:"name" gorm:"not null"`
	OwnerName string     `json:"owner_name"`
	Email     string     `json:"email"`
	LogoURL   string     `json:"logo_url"`
	StartDate time.Time  `json:"start_date"`
	ExpiredAt time.Time  `json:"expired_at" gorm:"index"`
	Active    bool       `json:"active" gorm:"not null"`
	OwnerID   *uuid.UUID `json:"owner_id" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// BeforeCreate sets the UUID if not already set
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
