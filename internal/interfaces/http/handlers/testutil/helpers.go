// Package testutil builds gin contexts and decodes envelopes in handler
// tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and optional body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// TestSession is the caller used by handler tests.
func TestSession() *authorization.Session {
	org := "org-1"
	return &authorization.Session{
		SessionID:      "test-session-id",
		UserID:         3,
		AuthUserID:     "auth-3",
		Email:          "john@example.com",
		Name:           "John Doe",
		Role:           authorization.RoleAdmin,
		AccountType:    "personal",
		OrganisationID: &org,
		TenantID:       &org,
	}
}

// SetSession stores s the way the auth middleware does.
func SetSession(c *gin.Context, s *authorization.Session) {
	c.Set(authorization.ContextKeySession, s)
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// DecodeData unmarshals the envelope's data field into target.
func DecodeData(w *httptest.ResponseRecorder, target interface{}) (*APIResponse, error) {
	var resp APIResponse
	if err := ParseResponse(w, &resp); err != nil {
		return nil, err
	}
	if target != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, target); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
