package importer_test

import (
	"net/http"
	"testing"

	"github.com/smghasemi/membersync/internal/importer"
	sharedContext "github.com/smghasemi/membersync/internal/shared/context"
	sharedError "github.com/smghasemi/membersync/internal/shared/error"
	"github.com/smghasemi/membersync/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupImportRouter wires the trigger route behind a stand-in for the JWT
// middleware that stamps the principal onto the context.
func setupImportRouter(t *testing.T, src importer.Source) *gin.Engine {
	t.Helper()

	service, _, _ := setupImportService(t, src, nil)
	handler := importer.NewImportHandler(service)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/import",
		func(c *gin.Context) { c.Set(sharedContext.UserIDKey, "1") },
		handler.Run,
	)
	return router
}

func TestImport_Success(t *testing.T) {
	router := setupImportRouter(t, fullSource())

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/import",
		Body:   importer.ImportRequest{Server: "legacy-host", Database: "AccessControl"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response importer.ImportResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "Data imported successfully.", response.Message)
	assert.Len(t, response.Tables, 6)
}

func TestImport_MissingBodyFields(t *testing.T) {
	router := setupImportRouter(t, fullSource())

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/import",
		Body:   map[string]string{"server": "legacy-host"},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

// The failure response names the table and row the run stopped at, not just
// the failure class.
func TestImport_ReferenceFailureNamesRow(t *testing.T) {
	src := fullSource()
	src.members[0].RoleID = i64p(999)
	router := setupImportRouter(t, src)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/import",
		Body:   importer.ImportRequest{Server: "legacy-host", Database: "AccessControl"},
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "IMPORT-003", errorResponse.Code)
	assert.Contains(t, errorResponse.Message, "member 60")
	assert.Contains(t, errorResponse.Message, "role 999")
}

func TestImport_Unauthenticated(t *testing.T) {
	service, _, _ := setupImportService(t, fullSource(), nil)
	handler := importer.NewImportHandler(service)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/import", handler.Run)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/import",
		Body:   importer.ImportRequest{Server: "legacy-host", Database: "AccessControl"},
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
