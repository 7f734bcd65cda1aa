package locker_test

import (
	"net/http"
	"testing"

	"github.com/smghasemi/membersync/internal/locker"
	"github.com/smghasemi/membersync/internal/model"
	sharedError "github.com/smghasemi/membersync/internal/shared/error"
	"github.com/smghasemi/membersync/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	lockerRepo := locker.NewLockerRepository()
	lockerService := locker.NewLockerService(db, lockerRepo)
	lockerHandler := locker.NewLockerHandler(lockerService)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/lockers", lockerHandler.List)
	router.POST("/api/v1/lockers", lockerHandler.Create)
	router.PATCH("/api/v1/lockers", lockerHandler.Patch)
	router.DELETE("/api/v1/lockers", lockerHandler.Delete)

	return router, db
}

func i64p(v int64) *int64 {
	return &v
}

func strp(s string) *string {
	return &s
}

func TestCreateLocker(t *testing.T) {
	router, db := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/lockers",
		Body: locker.CreateLockerRequest{
			IsVIP:    true,
			IsOpen:   false,
			UserID:   i64p(40),
			FullName: strp("Sara Ahmadi"),
		},
	})

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response locker.LockerResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.NotZero(t, response.ID)
	assert.True(t, response.IsVIP)
	require.NotNil(t, response.FullName)
	assert.Equal(t, "Sara Ahmadi", *response.FullName)

	var count int64
	require.NoError(t, db.Model(&model.Locker{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetLocker(t *testing.T) {
	router, db := setupTestEnvironment(t)

	seeded := &model.Locker{IsVIP: true, FullName: strp("Sara Ahmadi")}
	require.NoError(t, db.Create(seeded).Error)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/lockers?id=1",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response locker.LockerResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, seeded.ID, response.ID)
	assert.True(t, response.IsVIP)
}

func TestGetLocker_NotFound(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/lockers?id=42",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "LOCKER-001", errorResponse.Code)
}

func TestListLockers_Filtered(t *testing.T) {
	router, db := setupTestEnvironment(t)

	require.NoError(t, db.Create(&model.Locker{IsVIP: true, IsOpen: true}).Error)
	require.NoError(t, db.Create(&model.Locker{IsVIP: false, IsOpen: true}).Error)
	require.NoError(t, db.Create(&model.Locker{IsVIP: true, IsOpen: false}).Error)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/lockers?is_vip=true&is_open=true",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var responses []locker.LockerResponse
	testutil.ParseResponse(t, recorder, &responses)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].IsVIP)
	assert.True(t, responses[0].IsOpen)
}

func TestListLockers_InvalidFilter(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/lockers?is_vip=maybe",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

// Patch only touches the fields present in the request.
func TestPatchLocker_Partial(t *testing.T) {
	router, db := setupTestEnvironment(t)

	require.NoError(t, db.Create(&model.Locker{IsOpen: false, FullName: strp("Sara Ahmadi")}).Error)

	open := true
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/v1/lockers?id=1",
		Body:   locker.UpdateLockerRequest{IsOpen: &open},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response locker.LockerResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.True(t, response.IsOpen)
	require.NotNil(t, response.FullName)
	assert.Equal(t, "Sara Ahmadi", *response.FullName)
}

func TestPatchLocker_MissingID(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	open := true
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/v1/lockers",
		Body:   locker.UpdateLockerRequest{IsOpen: &open},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteLocker(t *testing.T) {
	router, db := setupTestEnvironment(t)

	require.NoError(t, db.Create(&model.Locker{}).Error)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/lockers?id=1",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	require.NoError(t, db.Model(&model.Locker{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	repeat := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/lockers?id=1",
	})
	assert.Equal(t, http.StatusNotFound, repeat.Code)
}
