package meta_test

import (
	"net/http"
	"testing"

	"github.com/smghasemi/membersync/internal/meta"
	"github.com/smghasemi/membersync/internal/shared/database"
	"github.com/smghasemi/membersync/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	cfg := testutil.NewTestConfig()
	handler := meta.NewHandler(cfg, &database.DB{DB: db})

	router := testutil.SetupTestRouter()
	router.GET("/health", handler.Health)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/health",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]any
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "healthy", response["status"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.NewTestConfig()
	handler := meta.NewHandler(cfg, &database.DB{DB: db})

	router := testutil.SetupTestRouter()
	router.GET("/health", handler.Health)

	// Closing the underlying connection makes the ping fail.
	testutil.CleanupTestDB(t, db)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/health",
	})

	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var response map[string]any
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "unhealthy", response["status"])
}
