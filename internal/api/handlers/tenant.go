package handlers

import (
	"net/http"
	"strconv"

	"postl-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles HTTP requests for tenants
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// ListTenants handles GET /api/v1/tenants
// @Summary List tenants
// @Description List tenants after reconciling expired contracts. A failed fetch returns the last known list with stale=true.
// @Tags tenants
// @Accept json
// @Produce json
// @Param view query string false "Which tenants to show" Enums(all, locked)
// @Param q query string false "Case-insensitive match on name, owner name or email"
// @Success 200 {object} service.TenantListResponse "Tenants"
// @Failure 400 {object} ErrorResponse "Invalid view"
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), c.Query("view"), c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to list tenants")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTenantDefaults handles GET /api/v1/tenants/defaults
// @Summary Create-form defaults
// @Description Prefilled values for a new tenant: default password, start today, end after the default contract length
// @Tags tenants
// @Produce json
// @Success 200 {object} service.TenantFormResponse "Form defaults"
// @Router /tenants/defaults [get]
func (h *TenantHandler) GetTenantDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Defaults())
}

// CreateTenant handles POST /api/v1/tenants
// @Summary Create a tenant
// @Description Create the owner account, the tenant record and link the owner's profile. New tenants always start active.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Tenant data"
// @Success 201 {object} service.TenantResponse "Successfully created tenant"
// @Failure 400 {object} ErrorResponse "Missing fields or invalid dates"
// @Failure 500 {object} ErrorResponse "Backend rejected a step"
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create tenant")
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /api/v1/tenants/:id
// @Summary Edit-form prefill
// @Description Get a tenant's editable fields with dates as YYYY-MM-DD and a blank password
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} service.TenantFormResponse "Tenant form"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	form, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get tenant")
		return
	}

	c.JSON(http.StatusOK, form)
}

// UpdateTenant handles PUT /api/v1/tenants/:id
// @Summary Edit a tenant
// @Description Save the edit form. A non-blank password also resets the owner's password; its outcome is reported separately.
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param tenant body service.UpdateTenantRequest true "Tenant data"
// @Success 200 {object} service.TenantUpdateResponse "Tenant updated"
// @Failure 400 {object} ErrorResponse "Missing fields or invalid dates"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse "Backend rejected the update"
// @Router /tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	var req service.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update tenant")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ToggleTenantStatus handles PATCH /api/v1/tenants/:id/status
// @Summary Lock or unlock a tenant
// @Description Flip the tenant's active flag. Requires confirm=true.
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param confirm query bool true "Operator confirmation"
// @Success 200 {object} service.ToggleStatusResponse "Status changed"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 428 {object} ErrorResponse "Confirmation required"
// @Failure 500 {object} ErrorResponse "Backend rejected the update"
// @Router /tenants/{id}/status [patch]
func (h *TenantHandler) ToggleTenantStatus(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.ToggleStatus(c.Request.Context(), id, confirmed(c))
	if err != nil {
		respondError(c, err, "Failed to change tenant status")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTenant handles DELETE /api/v1/tenants/:id
// @Summary Delete a tenant
// @Description Remove the tenant record. The owner account is kept. Requires confirm=true.
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param confirm query bool true "Operator confirmation"
// @Success 204 "Tenant deleted"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 428 {object} ErrorResponse "Confirmation required"
// @Failure 500 {object} ErrorResponse "Backend rejected the delete"
// @Router /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, ok := parseTenantID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, confirmed(c)); err != nil {
		respondError(c, err, "Failed to delete tenant")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDashboard handles GET /api/v1/dashboard
// @Summary Dashboard counters
// @Description Total, active, inactive and locked tenant counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardResponse "Counters"
// @Router /dashboard [get]
func (h *TenantHandler) GetDashboard(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func parseTenantID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

func confirmed(c *gin.Context) bool {
	ok, err := strconv.ParseBool(c.Query("confirm"))
	return err == nil && ok
}
