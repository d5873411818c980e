package models

import (
	"github.com/google/uuid"
)

// Profile mirrors the identity system's per-account profile row.
// The admin panel only ever writes TenantID.
type Profile struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FullName string     `json:"full_name"`
	Role     string     `json:"role"`
	TenantID *uuid.UUID `json:"tenant_id" gorm:"type:uuid;index"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
