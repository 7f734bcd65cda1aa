package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/smghasemi/membersync/internal/config"
	sharedContext "github.com/smghasemi/membersync/internal/shared/context"
	sharedError "github.com/smghasemi/membersync/internal/shared/error"
	"github.com/smghasemi/membersync/internal/shared/logger"
	"github.com/smghasemi/membersync/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

const (
	missingToken  = "MISSING_TOKEN"  // errInfo
	invalidToken  = "INVALID_TOKEN"  // errInfo
	expiredToken  = "EXPIRED_TOKEN"  // errInfo
	invalidClaims = "INVALID_CLAIMS" // errInfo
)

var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

// Every token failure maps to the same 401; the distinction only matters in
// the logs.
func init() {
	unauthorized := sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-000",
		Message: "Authentication required.",
	}

	for _, errInfo := range []string{missingToken, invalidToken, expiredToken, invalidClaims} {
		sharedError.RegisterDomainErrorResponse(errInfo, unauthorized)
	}
}

// JWT guards a route group with bearer-token authentication. On success the
// principal's id and username are placed on the gin context.
func JWT(cfg *config.Config) gin.HandlerFunc {
	tokenManager := token.NewJWTManager(cfg)

	return func(c *gin.Context) {
		tok, err := extractToken(c)
		if err != nil {
			rejectToken(c, "extract_token", err)
			return
		}

		claims, err := tokenManager.ValidateToken(tok)
		if err != nil {
			rejectToken(c, "validate_token", mapTokenError(err))
			return
		}

		c.Set(sharedContext.UserIDKey, claims.UserID)
		c.Set(sharedContext.UsernameKey, claims.Username)
		c.Next()
	}
}

func rejectToken(c *gin.Context, step string, err error) {
	logger.FromContext(c.Request.Context()).Warn("authentication rejected",
		"step", step,
		"error", err.Error(),
		"client_ip", c.ClientIP(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.JSON(resp.Status, resp)
	} else {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-999",
			Message: "Authentication failed.",
		})
	}
	c.Abort()
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
