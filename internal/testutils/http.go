package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite wraps a bare gin engine for handler tests
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body as JSON (when non-nil) with optional headers
func (suite *HTTPTestSuite) MakeRequest(method, target string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse asserts the status and content type, then decodes into target
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse asserts an {"error", "details"} body. Empty expectations are not checked.
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedError, expectedDetails string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	if expectedError != "" {
		assert.Contains(t, body.Error, expectedError)
	}
	if expectedDetails != "" {
		assert.Contains(t, body.Details, expectedDetails)
	}
}
