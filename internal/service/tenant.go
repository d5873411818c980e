package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"postl-admin-backend/internal/database/models"
	apperrors "postl-admin-backend/internal/errors"
	"postl-admin-backend/internal/logger"
	"postl-admin-backend/internal/metrics"
	"postl-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Password reset outcomes reported by Update
const (
	PasswordResetSkipped = "skipped"
	PasswordResetUpdated = "updated"
	PasswordResetFailed  = "failed"
)

// TenantServiceConfig carries the tenant form defaults and side-effect policy
type TenantServiceConfig struct {
	DefaultPassword            string
	ContractYears              int
	Location                   *time.Location
	CompensateOrphanedAccounts bool
	ReconcileTimeout           time.Duration
}

// TenantService handles business logic for tenants
type TenantService struct {
	repo       repository.TenantRepositoryInterface
	profiles   repository.ProfileRepositoryInterface
	identity   IdentityServiceInterface
	validator  *validator.Validate
	board      *Board
	reconciler *Reconciler
	creates    singleflight.Group
	cfg        TenantServiceConfig
	now        func() time.Time
}

// NewTenantService creates a new tenant service
func NewTenantService(
	repo repository.TenantRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	identity IdentityServiceInterface,
	validator *validator.Validate,
	cfg TenantServiceConfig,
) *TenantService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.ContractYears < 1 {
		cfg.ContractYears = 1
	}
	return &TenantService{
		repo:       repo,
		profiles:   profiles,
		identity:   identity,
		validator:  validator,
		board:      NewBoard(),
		reconciler: NewReconciler(repo, cfg.ReconcileTimeout),
		cfg:        cfg,
		now:        time.Now,
	}
}

// WithClock replaces the time source
func (s *TenantService) WithClock(now func() time.Time) *TenantService {
	s.now = now
	return s
}

// Board exposes the tenant board
func (s *TenantService) Board() *Board {
	return s.board
}

// Wait blocks until pending expiry corrections have been written
func (s *TenantService) Wait() {
	s.reconciler.Wait()
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	Name      string `json:"name" validate:"required"`
	OwnerName string `json:"owner_name"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password,omitempty"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// UpdateTenantRequest represents the request to edit a tenant.
// A blank password leaves the owner's password unchanged.
type UpdateTenantRequest struct {
	Name      string `json:"name" validate:"required"`
	OwnerName string `json:"owner_name"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password,omitempty"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// TenantResponse represents a tenant row
type TenantResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	OwnerName string     `json:"owner_name"`
	Email     string     `json:"email"`
	LogoURL   string     `json:"logo_url,omitempty"`
	StartDate string     `json:"start_date"`
	ExpiredAt string     `json:"expired_at"`
	Active    bool       `json:"active"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"`
	Status    string     `json:"status"`
	Expired   bool       `json:"expired"`
	CreatedAt string     `json:"created_at"`
}

// TenantListResponse represents the filtered tenant list
type TenantListResponse struct {
	Tenants     []TenantResponse `json:"tenants"`
	Total       int              `json:"total"`
	View        View             `json:"view"`
	Query       string           `json:"query,omitempty"`
	LockedCount int              `json:"locked_count"`
	Stale       bool             `json:"stale"`
	FetchedAt   string           `json:"fetched_at,omitempty"`
}

// TenantFormResponse carries prefilled form values
type TenantFormResponse struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	Name      string     `json:"name"`
	OwnerName string     `json:"owner_name"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
}

// PasswordResetResult reports the password step of an edit
type PasswordResetResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// TenantUpdateResponse represents the result of an edit
type TenantUpdateResponse struct {
	ID            uuid.UUID           `json:"id"`
	Message       string              `json:"message"`
	PasswordReset PasswordResetResult `json:"password_reset"`
}

// ToggleStatusResponse represents the result of a lock or unlock
type ToggleStatusResponse struct {
	ID      uuid.UUID `json:"id"`
	Active  bool      `json:"active"`
	Message string    `json:"message"`
}

// DashboardResponse represents the dashboard counters
type DashboardResponse struct {
	DashboardStats
	Stale     bool   `json:"stale"`
	FetchedAt string `json:"fetched_at,omitempty"`
}

// Refresh fetches every tenant, applies expiry reconciliation and publishes the
// result. A failed fetch is logged and leaves the previous list in place.
func (s *TenantService) Refresh(ctx context.Context) *Snapshot {
	now := s.now()

	tenants, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("Failed to fetch tenants")
		return s.board.Apply(Transition{Event: EventFetchFailed, At: now, Err: err})
	}

	view, corrections := Reconcile(tenants, now)
	s.reconciler.Persist(ctx, corrections, now)

	return s.board.Apply(Transition{Event: EventFetchCompleted, Tenants: view, At: now})
}

// List refreshes the board and returns the tenants visible for view and query
func (s *TenantService) List(ctx context.Context, view, query string) (*TenantListResponse, error) {
	v, err := ParseView(view)
	if err != nil {
		return nil, err
	}

	snap := s.Refresh(ctx)
	now := s.now()
	all := snap.Tenants()
	visible := FilterTenants(all, v, query, now)

	resp := &TenantListResponse{
		Tenants:     make([]TenantResponse, 0, len(visible)),
		Total:       len(visible),
		View:        v,
		Query:       query,
		LockedCount: len(FilterTenants(all, ViewLocked, "", now)),
		Stale:       snap.Stale,
		FetchedAt:   formatTimestamp(snap.FetchedAt),
	}
	for _, t := range visible {
		resp.Tenants = append(resp.Tenants, *s.toResponse(t, now))
	}
	return resp, nil
}

// Get returns the edit form prefilled from a tenant
func (s *TenantService) Get(ctx context.Context, id uuid.UUID) (*TenantFormResponse, error) {
	tenant, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	start := formatDate(tenant.StartDate)
	if start == "" {
		start = midnight(s.now(), s.cfg.Location).Format(DateLayout)
	}

	tenantID := tenant.ID
	return &TenantFormResponse{
		ID:        &tenantID,
		Name:      tenant.Name,
		OwnerName: tenant.OwnerName,
		Email:     tenant.Email,
		StartDate: start,
		EndDate:   formatDate(tenant.ExpiredAt),
	}, nil
}

// Defaults returns the prefilled create form
func (s *TenantService) Defaults() *TenantFormResponse {
	today := midnight(s.now(), s.cfg.Location)
	return &TenantFormResponse{
		Password:  s.cfg.DefaultPassword,
		StartDate: today.Format(DateLayout),
		EndDate:   today.AddDate(s.cfg.ContractYears, 0, 0).Format(DateLayout),
	}
}

// Create provisions the owner account, inserts the tenant and links the owner's
// profile. Concurrent submissions for the same email share one provisioning run,
// which keeps going if the caller that started it goes away.
func (s *TenantService) Create(ctx context.Context, req *CreateTenantRequest) (*TenantResponse, error) {
	if req == nil {
		return nil, apperrors.ErrMissingTenantFields
	}
	if err := s.validateForm(req); err != nil {
		return nil, err
	}

	// The shared run must not die with whichever caller started it; each caller
	// still stops waiting when its own request ends.
	key := strings.ToLower(strings.TrimSpace(req.Email))
	results := s.creates.DoChan(key, func() (interface{}, error) {
		return s.create(context.WithoutCancel(ctx), req)
	})

	select {
	case <-ctx.Done():
		logger.WithContext(ctx).WithField("email", key).Warn("Caller left before tenant creation finished")
		return nil, ctx.Err()
	case res := <-results:
		if res.Shared {
			logger.WithContext(ctx).WithField("email", key).Info("Joined in-flight tenant creation")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*TenantResponse), nil
	}
}

func (s *TenantService) create(ctx context.Context, req *CreateTenantRequest) (*TenantResponse, error) {
	log := logger.WithContext(ctx).WithField("email", req.Email)
	now := s.now()

	start, err := StorageTimestamp(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := StorageTimestamp(req.EndDate)
	if err != nil {
		return nil, err
	}
	derived, err := DeriveActive(req.EndDate, now, s.cfg.Location)
	if err != nil {
		return nil, err
	}

	password := req.Password
	if strings.TrimSpace(password) == "" {
		password = s.cfg.DefaultPassword
	}

	account, err := s.identity.CreateAccount(ctx, CreateAccountRequest{
		Email:    req.Email,
		Password: password,
		FullName: req.OwnerName,
		Role:     RoleTenantAdmin,
	})
	if err != nil {
		metrics.TenantCreations.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.WithError(err).Error("Failed to create owner account")
		return nil, fmt.Errorf("failed to create owner account: %w", err)
	}

	ownerID := account.ID
	// New tenants always start active; expiry is corrected on the next fetch.
	tenant := &models.Tenant{
		Name:      req.Name,
		OwnerName: req.OwnerName,
		Email:     req.Email,
		StartDate: start,
		ExpiredAt: end,
		Active:    true,
		OwnerID:   &ownerID,
	}
	if !derived {
		log.Warn("Creating tenant whose contract has already ended")
	}

	if err := s.repo.Create(ctx, tenant); err != nil {
		log.WithError(err).Error("Failed to insert tenant")
		s.compensate(ctx, account.ID)
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := s.profiles.LinkTenant(ctx, account.ID, tenant.ID); err != nil {
		if !isNotFound(err) {
			metrics.TenantCreations.WithLabelValues(metrics.OutcomeFailed).Inc()
			log.WithError(err).Error("Failed to link owner profile")
			return nil, fmt.Errorf("failed to link owner profile: %w", err)
		}
		log.WithField("account_id", account.ID.String()).Warn("Owner profile not found; tenant left unlinked")
	}

	metrics.TenantCreations.WithLabelValues(metrics.OutcomeCreated).Inc()
	log.WithField("tenant_id", tenant.ID.String()).Info("Tenant created")

	s.board.Apply(Transition{Event: EventCreateSubmitted, TenantID: tenant.ID, At: now})
	s.Refresh(ctx)

	return s.toResponse(*tenant, now), nil
}

// compensate removes an owner account whose tenant insert failed
func (s *TenantService) compensate(ctx context.Context, accountID uuid.UUID) {
	log := logger.WithContext(ctx).WithField("account_id", accountID.String())

	if !s.cfg.CompensateOrphanedAccounts {
		metrics.TenantCreations.WithLabelValues(metrics.OutcomeOrphanedOwner).Inc()
		log.Warn("Owner account left without a tenant")
		return
	}

	if err := s.identity.DeleteAccount(context.WithoutCancel(ctx), accountID); err != nil {
		metrics.TenantCreations.WithLabelValues(metrics.OutcomeOrphanedOwner).Inc()
		log.WithError(err).Error("Failed to remove orphaned owner account")
		return
	}

	metrics.TenantCreations.WithLabelValues(metrics.OutcomeCompensated).Inc()
	log.Info("Removed orphaned owner account")
}

// Update saves the edit form. The active flag is only ever raised here: an end
// date in the past leaves it untouched for reconciliation to handle.
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, req *UpdateTenantRequest) (*TenantUpdateResponse, error) {
	if req == nil {
		return nil, apperrors.ErrMissingTenantFields
	}
	if err := s.validateForm(req); err != nil {
		return nil, err
	}

	now := s.now()
	start, err := StorageTimestamp(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := StorageTimestamp(req.EndDate)
	if err != nil {
		return nil, err
	}
	active, err := DeriveActive(req.EndDate, now, s.cfg.Location)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":       req.Name,
		"owner_name": req.OwnerName,
		"email":      req.Email,
		"start_date": start,
		"expired_at": end,
	}
	if active {
		updates["active"] = true
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	resp := &TenantUpdateResponse{
		ID:            id,
		Message:       "Tenant updated",
		PasswordReset: PasswordResetResult{Status: PasswordResetSkipped},
	}
	if strings.TrimSpace(req.Password) != "" {
		resp.PasswordReset = s.resetPassword(ctx, id, req.Password)
		if resp.PasswordReset.Status == PasswordResetUpdated {
			resp.Message = "Tenant updated and password changed"
		}
	}

	s.board.Apply(Transition{Event: EventUpdateSubmitted, TenantID: id, At: now})
	s.Refresh(ctx)

	return resp, nil
}

func (s *TenantService) resetPassword(ctx context.Context, id uuid.UUID, password string) PasswordResetResult {
	log := logger.WithContext(ctx).WithField("tenant_id", id.String())

	tenant, err := s.lookup(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to resolve tenant owner")
		return PasswordResetResult{Status: PasswordResetFailed, Error: err.Error()}
	}
	if tenant.OwnerID == nil || *tenant.OwnerID == uuid.Nil {
		log.Warn("Password not changed: tenant has no owner account")
		return PasswordResetResult{Status: PasswordResetSkipped, Error: apperrors.ErrOwnerAccountMissing.Error()}
	}

	if err := s.identity.UpdatePassword(ctx, *tenant.OwnerID, password); err != nil {
		log.WithError(err).Error("Failed to update owner password")
		return PasswordResetResult{Status: PasswordResetFailed, Error: err.Error()}
	}
	return PasswordResetResult{Status: PasswordResetUpdated}
}

// ToggleStatus flips the tenant's active flag as currently displayed
func (s *TenantService) ToggleStatus(ctx context.Context, id uuid.UUID, confirmed bool) (*ToggleStatusResponse, error) {
	if !confirmed {
		return nil, apperrors.NewConfirmationRequiredError("changing tenant status")
	}

	tenant, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	next := !tenant.Active
	if err := s.repo.Update(ctx, id, map[string]interface{}{"active": next}); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to change tenant status: %w", err)
	}

	s.board.Apply(Transition{Event: EventToggleRequested, TenantID: id, At: s.now()})
	s.Refresh(ctx)

	message := "Tenant locked"
	if next {
		message = "Tenant unlocked"
	}
	return &ToggleStatusResponse{ID: id, Active: next, Message: message}, nil
}

// Delete removes a tenant. The owner account is kept.
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return apperrors.NewConfirmationRequiredError("deleting a tenant")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrTenantNotFound
		}
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	s.board.Apply(Transition{Event: EventDeleteRequested, TenantID: id, At: s.now()})
	s.Refresh(ctx)
	return nil
}

// Stats refreshes the board and counts tenants
func (s *TenantService) Stats(ctx context.Context) (*DashboardResponse, error) {
	snap := s.Refresh(ctx)
	return &DashboardResponse{
		DashboardStats: ComputeStats(snap.Tenants(), s.now()),
		Stale:          snap.Stale,
		FetchedAt:      formatTimestamp(snap.FetchedAt),
	}, nil
}

// lookup prefers the tenant as currently displayed and falls back to the store
func (s *TenantService) lookup(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	if t, ok := s.board.Current().Find(id); ok {
		return &t, nil
	}

	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}

func (s *TenantService) validateForm(req interface{}) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apperrors.ErrMissingTenantFields
		}
	}
	return apperrors.ErrInvalidDate
}

func (s *TenantService) toResponse(t models.Tenant, now time.Time) *TenantResponse {
	return &TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		OwnerName: t.OwnerName,
		Email:     t.Email,
		LogoURL:   t.LogoURL,
		StartDate: formatTimestamp(t.StartDate),
		ExpiredAt: formatTimestamp(t.ExpiredAt),
		Active:    t.Active,
		OwnerID:   t.OwnerID,
		Status:    StatusOf(t, now),
		Expired:   IsExpired(t, now),
		CreatedAt: formatTimestamp(t.CreatedAt),
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || apperrors.IsNotFound(err)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}
