package service

import (
	"strings"
	"time"

	"postl-admin-backend/internal/database/models"
	apperrors "postl-admin-backend/internal/errors"

	"github.com/google/uuid"
)

// View selects which tenants the list shows
type View string

const (
	ViewAll    View = "all"
	ViewLocked View = "locked"
)

// Tenant statuses shown next to each row
const (
	StatusActive  = "active"
	StatusExpired = "expired"
	StatusLocked  = "locked"
)

// DateLayout is the form date format
const DateLayout = "2006-01-02"

// ParseView maps a query value to a View; empty means all
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ViewAll):
		return ViewAll, nil
	case string(ViewLocked):
		return ViewLocked, nil
	}
	return "", apperrors.ErrInvalidView
}

// IsExpired reports whether the contract ended before now
func IsExpired(t models.Tenant, now time.Time) bool {
	return t.ExpiredAt.Before(now)
}

// IsLocked re-derives expiry instead of trusting the stored flag, so a tenant
// whose correction write has not landed yet still counts as locked.
func IsLocked(t models.Tenant, now time.Time) bool {
	return !t.Active || IsExpired(t, now)
}

// StatusOf returns the row status; expiry wins over the stored flag
func StatusOf(t models.Tenant, now time.Time) string {
	switch {
	case IsExpired(t, now):
		return StatusExpired
	case t.Active:
		return StatusActive
	default:
		return StatusLocked
	}
}

// ParseFormDate parses a YYYY-MM-DD form value as midnight in loc
func ParseFormDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return d, nil
}

// StorageTimestamp returns the stored form of a chosen date: UTC midnight
func StorageTimestamp(s string) (time.Time, error) {
	return ParseFormDate(s, time.UTC)
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DeriveActive reports whether a contract ending on endDate is still live today.
// A contract ending today is live.
func DeriveActive(endDate string, now time.Time, loc *time.Location) (bool, error) {
	end, err := ParseFormDate(endDate, loc)
	if err != nil {
		return false, err
	}
	return !end.Before(midnight(now, loc)), nil
}

// Reconcile returns the tenants as they should be presented, with every
// active-but-expired tenant flipped inactive, plus the ids needing a write.
// The input slice is not modified.
func Reconcile(tenants []models.Tenant, now time.Time) ([]models.Tenant, []uuid.UUID) {
	out := make([]models.Tenant, len(tenants))
	var corrections []uuid.UUID
	for i, t := range tenants {
		if t.Active && IsExpired(t, now) {
			t.Active = false
			corrections = append(corrections, t.ID)
		}
		out[i] = t
	}
	return out, corrections
}

// FilterTenants returns the tenants visible for view and query, keeping the
// storage order. The query only applies when it is non-blank.
func FilterTenants(tenants []models.Tenant, view View, query string, now time.Time) []models.Tenant {
	var term string
	if strings.TrimSpace(query) != "" {
		term = strings.ToLower(query)
	}

	out := make([]models.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if view == ViewLocked && !IsLocked(t, now) {
			continue
		}
		if term != "" && !matchesTerm(t, term) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesTerm(t models.Tenant, term string) bool {
	if strings.Contains(strings.ToLower(t.Name), term) {
		return true
	}
	if t.OwnerName != "" && strings.Contains(strings.ToLower(t.OwnerName), term) {
		return true
	}
	return t.Email != "" && strings.Contains(strings.ToLower(t.Email), term)
}

// DashboardStats summarises the tenant list
type DashboardStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Locked   int `json:"locked"`
}

// ComputeStats counts tenants. Active follows the stored flag while Locked uses
// the broader view definition, matching the locked tab.
func ComputeStats(tenants []models.Tenant, now time.Time) DashboardStats {
	stats := DashboardStats{Total: len(tenants)}
	for _, t := range tenants {
		if t.Active {
			stats.Active++
		}
		if IsLocked(t, now) {
			stats.Locked++
		}
	}
	stats.Inactive = stats.Total - stats.Active
	return stats
}
