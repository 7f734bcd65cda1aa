package auth

import (
	"net/http"

	sharedError "github.com/smghasemi/membersync/internal/shared/error"
)

const (
	incorrectCredentials = "INCORRECT_USERNAME_PASSWORD" // errInfo
	userInactive         = "USER_INACTIVE"               // errInfo
)

var (
	ErrIncorrectCredentials = sharedError.NewDomainError(incorrectCredentials)
	ErrUserInactive         = sharedError.NewDomainError(userInactive)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectCredentials, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "Username or password is incorrect.",
	})

	sharedError.RegisterDomainErrorResponse(userInactive, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "AUTH-004",
		Message: "This account is deactivated.",
	})
}
