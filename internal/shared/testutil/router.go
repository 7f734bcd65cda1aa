package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/smghasemi/membersync/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// SetupTestRouter creates a bare gin engine in test mode with the custom
// validators registered. Tests wire only the routes they exercise.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	_ = validator.RegisterAll()

	return gin.New()
}

// TestRequest describes one HTTP request to replay against a test router.
type TestRequest struct {
	Method string
	URL    string
	Body   interface{}
}

// ExecuteRequest runs the request through the router and returns the
// recorded response.
func ExecuteRequest(t *testing.T, router *gin.Engine, req TestRequest) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.URL, bodyReader)
	httpReq.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	return recorder
}

// ParseResponse decodes the recorded JSON body into v.
func ParseResponse(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to parse response body: %v", err)
	}
}
