package context

import (
	"net/http"
	"strconv"

	sharedError "github.com/smghasemi/membersync/internal/shared/error"
	"github.com/smghasemi/membersync/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Context keys for storing user authentication information
const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
)

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}

	idStr, ok := userID.(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

// RequireUserID retrieves the authenticated user's id from the Gin context.
// If it is missing, an authentication error response is sent and false is
// returned so the handler can bail out immediately.
func RequireUserID(c *gin.Context) (int64, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "Authentication required.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] no user id in request context")
		return 0, false
	}
	return userID, true
}
