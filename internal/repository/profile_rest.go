package repository

import (
	"context"
	"net/http"

	"postl-admin-backend/internal/database/models"
	apperrors "postl-admin-backend/internal/errors"
	"postl-admin-backend/internal/supabase"

	"github.com/google/uuid"
)

// ProfileRESTRepository writes profiles through the table API with the service key
type ProfileRESTRepository struct {
	client *supabase.Client
	table  string
}

// NewProfileRESTRepository creates a profile repository over the table API
func NewProfileRESTRepository(client *supabase.Client, table string) *ProfileRESTRepository {
	if table == "" {
		table = models.Profile{}.TableName()
	}
	return &ProfileRESTRepository{client: client, table: table}
}

// LinkTenant points the account's profile at tenantID
func (r *ProfileRESTRepository) LinkTenant(ctx context.Context, accountID, tenantID uuid.UUID) error {
	var stored []models.Profile
	err := r.client.Do(ctx, supabase.Request{
		Operation: "link profile",
		Method:    http.MethodPatch,
		Path:      restPrefix + r.table,
		Query:     idFilter(accountID),
		Body:      map[string]interface{}{"tenant_id": tenantID},
		Headers:   returnRepresentation,
	}, &stored)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}
