package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"postl-admin-backend/internal/database/models"
	apperrors "postl-admin-backend/internal/errors"
	"postl-admin-backend/internal/supabase"

	"github.com/google/uuid"
)

const restPrefix = "/rest/v1/"

var returnRepresentation = map[string]string{"Prefer": "return=representation"}

// TenantRESTRepository handles tenant persistence through the backend's table API.
// It is bound to the public key so row-level security applies.
type TenantRESTRepository struct {
	client *supabase.Client
	table  string
}

// NewTenantRESTRepository creates a tenant repository over the table API
func NewTenantRESTRepository(client *supabase.Client, table string) *TenantRESTRepository {
	if table == "" {
		table = models.Tenant{}.TableName()
	}
	return &TenantRESTRepository{client: client, table: table}
}

func idFilter(id uuid.UUID) url.Values {
	q := url.Values{}
	q.Set("id", "eq."+id.String())
	return q
}

// GetAll retrieves all tenants ordered by creation time, newest first
func (r *TenantRESTRepository) GetAll(ctx context.Context) ([]models.Tenant, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")

	var tenants []models.Tenant
	err := r.client.Do(ctx, supabase.Request{
		Operation: "list tenants",
		Method:    http.MethodGet,
		Path:      restPrefix + r.table,
		Query:     q,
	}, &tenants)
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

// GetByID retrieves a tenant by ID
func (r *TenantRESTRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	q := idFilter(id)
	q.Set("select", "*")

	var tenants []models.Tenant
	err := r.client.Do(ctx, supabase.Request{
		Operation: "get tenant",
		Method:    http.MethodGet,
		Path:      restPrefix + r.table,
		Query:     q,
	}, &tenants)
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, apperrors.ErrTenantNotFound
	}
	return &tenants[0], nil
}

// Create inserts tenant and copies the stored row (id, created_at) back into it
func (r *TenantRESTRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	payload := map[string]interface{}{
		"name":       tenant.Name,
		"owner_name": tenant.OwnerName,
		"email":      tenant.Email,
		"start_date": tenant.StartDate,
		"expired_at": tenant.ExpiredAt,
		"active":     tenant.Active,
	}
	if tenant.LogoURL != "" {
		payload["logo_url"] = tenant.LogoURL
	}
	if tenant.OwnerID != nil {
		payload["owner_id"] = tenant.OwnerID
	}

	var stored []models.Tenant
	err := r.client.Do(ctx, supabase.Request{
		Operation: "insert tenant",
		Method:    http.MethodPost,
		Path:      restPrefix + r.table,
		Body:      []map[string]interface{}{payload},
		Headers:   returnRepresentation,
	}, &stored)
	if err != nil {
		return err
	}
	if len(stored) != 1 {
		return fmt.Errorf("insert tenant: expected 1 stored row, got %d", len(stored))
	}
	*tenant = stored[0]
	return nil
}

// Update applies a partial update to the tenant
func (r *TenantRESTRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	var stored []models.Tenant
	err := r.client.Do(ctx, supabase.Request{
		Operation: "update tenant",
		Method:    http.MethodPatch,
		Path:      restPrefix + r.table,
		Query:     idFilter(id),
		Body:      updates,
		Headers:   returnRepresentation,
	}, &stored)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		return apperrors.ErrTenantNotFound
	}
	return nil
}

// Deactivate clears active for a tenant that is still flagged active and has expired.
// The filter is evaluated by the backend, so a row edited since the fetch is left alone.
func (r *TenantRESTRepository) Deactivate(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	q := idFilter(id)
	q.Set("active", "is.true")
	q.Set("expired_at", "lt."+now.UTC().Format(time.RFC3339Nano))

	var stored []models.Tenant
	err := r.client.Do(ctx, supabase.Request{
		Operation: "deactivate tenant",
		Method:    http.MethodPatch,
		Path:      restPrefix + r.table,
		Query:     q,
		Body:      map[string]interface{}{"active": false},
		Headers:   returnRepresentation,
	}, &stored)
	if err != nil {
		return false, err
	}
	return len(stored) > 0, nil
}

// Delete removes the tenant
func (r *TenantRESTRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var removed []models.Tenant
	err := r.client.Do(ctx, supabase.Request{
		Operation: "delete tenant",
		Method:    http.MethodDelete,
		Path:      restPrefix + r.table,
		Query:     idFilter(id),
		Headers:   returnRepresentation,
	}, &removed)
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return apperrors.ErrTenantNotFound
	}
	return nil
}

// Ping issues the cheapest possible read against the tenant table
func (r *TenantRESTRepository) Ping(ctx context.Context) error {
	q := url.Values{}
	q.Set("select", "id")
	q.Set("limit", "1")
	return r.client.Do(ctx, supabase.Request{
		Operation: "ping",
		Method:    http.MethodGet,
		Path:      restPrefix + r.table,
		Query:     q,
	}, nil)
}
