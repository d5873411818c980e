package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	apperrors "postl-admin-backend/internal/errors"
	"postl-admin-backend/internal/logger"
	"postl-admin-backend/internal/supabase"

	"github.com/google/uuid"
)

const adminUsersPath = "/auth/v1/admin/users"

// RoleTenantAdmin is the account role recorded for shop owners
const RoleTenantAdmin = "tenant_admin"

// IdentityService manages owner accounts through the identity admin API.
// The client must carry a privileged key; with a public key every call is
// rejected by the backend and the rejection is surfaced unchanged.
type IdentityService struct {
	client *supabase.Client
}

// NewIdentityService creates a new identity service
func NewIdentityService(client *supabase.Client) *IdentityService {
	return &IdentityService{client: client}
}

// CreateAccountRequest describes a new owner account
type CreateAccountRequest struct {
	Email    string
	Password string
	FullName string
	Role     string
}

// Account is the subset of an identity record the admin panel needs
type Account struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type createAccountPayload struct {
	Email        string            `json:"email"`
	Password     string            `json:"password"`
	EmailConfirm bool              `json:"email_confirm"`
	UserMetadata map[string]string `json:"user_metadata"`
}

// CreateAccount registers a pre-confirmed account
func (s *IdentityService) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	role := req.Role
	if role == "" {
		role = RoleTenantAdmin
	}

	payload := createAccountPayload{
		Email:        req.Email,
		Password:     req.Password,
		EmailConfirm: true,
		UserMetadata: map[string]string{
			"full_name": req.FullName,
			"role":      role,
		},
	}

	var account Account
	err := s.client.Do(ctx, supabase.Request{
		Operation: "create account",
		Method:    http.MethodPost,
		Path:      adminUsersPath,
		Body:      payload,
	}, &account)
	if err != nil {
		return nil, err
	}
	if account.ID == uuid.Nil {
		return nil, &apperrors.BackendError{Operation: "create account", Message: "response did not include an account id"}
	}

	logger.WithContext(ctx).WithField("account_id", account.ID.String()).Info("Owner account created")
	return &account, nil
}

// UpdatePassword replaces the password of an existing account
func (s *IdentityService) UpdatePassword(ctx context.Context, accountID uuid.UUID, password string) error {
	return s.client.Do(ctx, supabase.Request{
		Operation: "update password",
		Method:    http.MethodPut,
		Path:      accountPath(accountID),
		Body:      map[string]string{"password": password},
	}, nil)
}

// DeleteAccount removes an account
func (s *IdentityService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	err := s.client.Do(ctx, supabase.Request{
		Operation: "delete account",
		Method:    http.MethodDelete,
		Path:      accountPath(accountID),
	}, nil)
	if err != nil {
		var backendErr *apperrors.BackendError
		if errors.As(err, &backendErr) && backendErr.Status == http.StatusNotFound {
			return apperrors.ErrAccountNotFound
		}
		return err
	}
	return nil
}

func accountPath(id uuid.UUID) string {
	return fmt.Sprintf("%s/%s", adminUsersPath, id.String())
}
