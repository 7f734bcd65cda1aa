package auth_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/smghasemi/membersync/internal/auth"
	"github.com/smghasemi/membersync/internal/model"
	sharedError "github.com/smghasemi/membersync/internal/shared/error"
	"github.com/smghasemi/membersync/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*auth.AuthHandler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	userRepo := auth.NewUserRepository()
	mockTokenManager := testutil.NewMockTokenManager()
	authService := auth.NewAuthService(db, userRepo, mockTokenManager)
	authHandler := auth.NewAuthHandler(authService)

	return authHandler, db
}

func createTestUser(t *testing.T, db *gorm.DB, user *model.User) {
	t.Helper()
	require.NoError(t, db.Create(user).Error)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestLogin_Success(t *testing.T) {
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)

	createTestUser(t, db, &model.User{
		UserID:   1,
		Username: "reception",
		Password: hashPassword(t, "password123"),
		IsActive: true,
	})

	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "reception",
			Password: "password123",
		},
	}

	recorder := testutil.ExecuteRequest(t, router, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "mock-access-token", response.AccessToken)
	assert.Equal(t, "mock-refresh-token", response.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)

	createTestUser(t, db, &model.User{
		UserID:   1,
		Username: "reception",
		Password: hashPassword(t, "password123"),
		IsActive: true,
	})

	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "reception",
			Password: "wrong-password",
		},
	}

	recorder := testutil.ExecuteRequest(t, router, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)

	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "nobody",
			Password: "password123",
		},
	}

	recorder := testutil.ExecuteRequest(t, router, request)

	// Same response as a wrong password; the two cases are not distinguishable.
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
}

func TestLogin_InactiveUser(t *testing.T) {
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)

	createTestUser(t, db, &model.User{
		UserID:   1,
		Username: "reception",
		Password: hashPassword(t, "password123"),
		IsActive: false,
	})

	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "reception",
			Password: "password123",
		},
	}

	recorder := testutil.ExecuteRequest(t, router, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-004", errorResponse.Code)
}

// Accounts imported from the legacy system carry their password verbatim,
// possibly plaintext. The first successful login must upgrade it to bcrypt.
func TestLogin_LegacyPlaintextPasswordUpgraded(t *testing.T) {
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)

	createTestUser(t, db, &model.User{
		UserID:   1,
		Username: "legacy",
		Password: "plain-secret",
		IsActive: true,
	})

	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "legacy",
			Password: "plain-secret",
		},
	}

	recorder := testutil.ExecuteRequest(t, router, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var stored model.User
	require.NoError(t, db.Where("user_id = ?", 1).First(&stored).Error)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plain-secret")))

	// The upgraded hash still authenticates.
	secondRecorder := testutil.ExecuteRequest(t, router, request)
	assert.Equal(t, http.StatusOK, secondRecorder.Code)
}

func TestLogin_ValidationError_MissingFields(t *testing.T) {
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/login", authHandler.Login)

	testCases := []struct {
		name        string
		requestBody map[string]string
	}{
		{
			name:        "Missing username",
			requestBody: map[string]string{"password": "password123"},
		},
		{
			name:        "Missing password",
			requestBody: map[string]string{"username": "reception"},
		},
		{
			name:        "Empty body",
			requestBody: map[string]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/login",
				Body:   tc.requestBody,
			}

			recorder := testutil.ExecuteRequest(t, router, request)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
