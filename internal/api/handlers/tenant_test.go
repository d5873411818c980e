package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"postl-admin-backend/internal/api/handlers"
	apperrors "postl-admin-backend/internal/errors"
	"postl-admin-backend/internal/mocks"
	"postl-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TenantHandlerTestSuite defines the test suite for TenantHandler
type TenantHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTenantSvc *mocks.MockTenantServiceInterface
	handler       *handlers.TenantHandler
	router        *gin.Engine
}

func (suite *TenantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenantSvc = mocks.NewMockTenantServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTenantHandler(suite.mockTenantSvc)

	suite.router = gin.New()
	suite.router.GET("/dashboard", suite.handler.GetDashboard)
	suite.router.GET("/tenants", suite.handler.ListTenants)
	suite.router.POST("/tenants", suite.handler.CreateTenant)
	suite.router.GET("/tenants/defaults", suite.handler.GetTenantDefaults)
	suite.router.GET("/tenants/:id", suite.handler.GetTenant)
	suite.router.PUT("/tenants/:id", suite.handler.UpdateTenant)
	suite.router.PATCH("/tenants/:id/status", suite.handler.ToggleTenantStatus)
	suite.router.DELETE("/tenants/:id", suite.handler.DeleteTenant)
}

func (suite *TenantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TenantHandlerTestSuite) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		raw, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TenantHandlerTestSuite) errorBody(w *httptest.ResponseRecorder) handlers.ErrorResponse {
	var got handlers.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func validCreateBody() map[string]string {
	return map[string]string{
		"name":       "Warung Kopi",
		"owner_name": "Rina",
		"email":      "rina@kopi.example",
		"start_date": "2024-01-01",
		"end_date":   "2025-01-01",
	}
}

func (suite *TenantHandlerTestSuite) TestListTenants_PassesViewAndQuery() {
	resp := &service.TenantListResponse{
		Tenants: []service.TenantResponse{{ID: uuid.New(), Name: "Warung Kopi", Status: service.StatusLocked}},
		Total:   1,
		View:    service.ViewLocked,
		Query:   "kopi",
	}
	suite.mockTenantSvc.EXPECT().List(gomock.Any(), "locked", "kopi").Return(resp, nil)

	w := suite.do(http.MethodGet, "/tenants?view=locked&q=kopi", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.TenantListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.Tenants, 1)
	assert.Equal(suite.T(), service.ViewLocked, got.View)
	assert.Equal(suite.T(), "locked", got.Tenants[0].Status)
}

func (suite *TenantHandlerTestSuite) TestListTenants_InvalidView() {
	suite.mockTenantSvc.EXPECT().List(gomock.Any(), "archived", "").Return(nil, apperrors.ErrInvalidView)

	w := suite.do(http.MethodGet, "/tenants?view=archived", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), suite.errorBody(w).Error, "view")
}

func (suite *TenantHandlerTestSuite) TestGetTenantDefaults() {
	suite.mockTenantSvc.EXPECT().Defaults().Return(&service.TenantFormResponse{
		Password:  "123456",
		StartDate: "2024-01-01",
		EndDate:   "2025-01-01",
	})

	w := suite.do(http.MethodGet, "/tenants/defaults", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.TenantFormResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Nil(suite.T(), got.ID)
	assert.Equal(suite.T(), "123456", got.Password)
	assert.Equal(suite.T(), "2025-01-01", got.EndDate)
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_Success() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *service.CreateTenantRequest) (*service.TenantResponse, error) {
			assert.Equal(suite.T(), "Warung Kopi", req.Name)
			assert.Equal(suite.T(), "rina@kopi.example", req.Email)
			assert.Empty(suite.T(), req.Password)
			return &service.TenantResponse{ID: id, Name: req.Name, Active: true, Status: service.StatusActive}, nil
		})

	w := suite.do(http.MethodPost, "/tenants", validCreateBody())

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var got service.TenantResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), id, got.ID)
	assert.True(suite.T(), got.Active)
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Invalid request body", suite.errorBody(w).Error)
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_MissingFields() {
	body := validCreateBody()
	delete(body, "email")
	suite.mockTenantSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrMissingTenantFields)

	w := suite.do(http.MethodPost, "/tenants", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), suite.errorBody(w).Error, "required")
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_BackendFailureKeepsMessage() {
	backendErr := &apperrors.BackendError{Operation: "create account", Status: 422, Message: "A user with this email address has already been registered"}
	suite.mockTenantSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, backendErr)

	w := suite.do(http.MethodPost, "/tenants", validCreateBody())

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	got := suite.errorBody(w)
	assert.Equal(suite.T(), "Failed to create tenant", got.Error)
	assert.Contains(suite.T(), got.Details, "already been registered")
}

func (suite *TenantHandlerTestSuite) TestGetTenant_Success() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Get(gomock.Any(), id).Return(&service.TenantFormResponse{
		ID:        &id,
		Name:      "Warung Kopi",
		StartDate: "2023-03-15",
		EndDate:   "2024-12-31",
	}, nil)

	w := suite.do(http.MethodGet, "/tenants/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.TenantFormResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "2024-12-31", got.EndDate)
	assert.Empty(suite.T(), got.Password)
}

func (suite *TenantHandlerTestSuite) TestGetTenant_InvalidID() {
	w := suite.do(http.MethodGet, "/tenants/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), suite.errorBody(w).Error, "Invalid tenant ID")
}

func (suite *TenantHandlerTestSuite) TestGetTenant_NotFound() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Get(gomock.Any(), id).Return(nil, apperrors.ErrTenantNotFound)

	w := suite.do(http.MethodGet, "/tenants/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "tenant not found", suite.errorBody(w).Error)
}

func (suite *TenantHandlerTestSuite) TestUpdateTenant_ReportsPasswordResetSeparately() {
	id := uuid.New()
	body := validCreateBody()
	body["password"] = "new-secret"
	suite.mockTenantSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, req *service.UpdateTenantRequest) (*service.TenantUpdateResponse, error) {
			assert.Equal(suite.T(), "new-secret", req.Password)
			return &service.TenantUpdateResponse{
				ID:            id,
				Message:       "Tenant updated",
				PasswordReset: service.PasswordResetResult{Status: service.PasswordResetFailed, Error: "update password: User not allowed"},
			}, nil
		})

	w := suite.do(http.MethodPut, "/tenants/"+id.String(), body)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.TenantUpdateResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), service.PasswordResetFailed, got.PasswordReset.Status)
	assert.Contains(suite.T(), got.PasswordReset.Error, "User not allowed")
}

func (suite *TenantHandlerTestSuite) TestUpdateTenant_InvalidDate() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrInvalidDate)

	w := suite.do(http.MethodPut, "/tenants/"+id.String(), validCreateBody())

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TenantHandlerTestSuite) TestToggleTenantStatus_WithoutConfirm() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().ToggleStatus(gomock.Any(), id, false).
		Return(nil, apperrors.NewConfirmationRequiredError("changing tenant status"))

	w := suite.do(http.MethodPatch, "/tenants/"+id.String()+"/status", nil)

	assert.Equal(suite.T(), http.StatusPreconditionRequired, w.Code)
	assert.Contains(suite.T(), suite.errorBody(w).Details, "confirm=true")
}

func (suite *TenantHandlerTestSuite) TestToggleTenantStatus_Confirmed() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().ToggleStatus(gomock.Any(), id, true).
		Return(&service.ToggleStatusResponse{ID: id, Active: false, Message: "Tenant locked"}, nil)

	w := suite.do(http.MethodPatch, "/tenants/"+id.String()+"/status?confirm=true", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.ToggleStatusResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.Active)
	assert.Equal(suite.T(), "Tenant locked", got.Message)
}

func (suite *TenantHandlerTestSuite) TestToggleTenantStatus_UnparseableConfirmIsFalse() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().ToggleStatus(gomock.Any(), id, false).
		Return(nil, apperrors.NewConfirmationRequiredError("changing tenant status"))

	w := suite.do(http.MethodPatch, "/tenants/"+id.String()+"/status?confirm=maybe", nil)

	assert.Equal(suite.T(), http.StatusPreconditionRequired, w.Code)
}

func (suite *TenantHandlerTestSuite) TestDeleteTenant_Confirmed() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Delete(gomock.Any(), id, true).Return(nil)

	w := suite.do(http.MethodDelete, "/tenants/"+id.String()+"?confirm=1", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Empty(suite.T(), w.Body.Bytes())
}

func (suite *TenantHandlerTestSuite) TestDeleteTenant_NotFound() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Delete(gomock.Any(), id, true).Return(apperrors.ErrTenantNotFound)

	w := suite.do(http.MethodDelete, "/tenants/"+id.String()+"?confirm=true", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TenantHandlerTestSuite) TestDeleteTenant_BackendFailure() {
	id := uuid.New()
	suite.mockTenantSvc.EXPECT().Delete(gomock.Any(), id, true).Return(errors.New("permission denied for table tenants"))

	w := suite.do(http.MethodDelete, "/tenants/"+id.String()+"?confirm=true", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	got := suite.errorBody(w)
	assert.Equal(suite.T(), "Failed to delete tenant", got.Error)
	assert.Equal(suite.T(), "permission denied for table tenants", got.Details)
}

func (suite *TenantHandlerTestSuite) TestGetDashboard() {
	suite.mockTenantSvc.EXPECT().Stats(gomock.Any()).Return(&service.DashboardResponse{
		DashboardStats: service.DashboardStats{Total: 3, Active: 1, Inactive: 2, Locked: 2},
	}, nil)

	w := suite.do(http.MethodGet, "/dashboard", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), float64(3), got["total"])
	assert.Equal(suite.T(), float64(2), got["locked"])
}

func TestTenantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}
