package locker

import (
	"net/http"

	sharedError "github.com/smghasemi/membersync/internal/shared/error"
)

const (
	lockerNotFound = "LOCKER_NOT_FOUND" // errInfo
)

var (
	ErrLockerNotFound = sharedError.NewDomainError(lockerNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(lockerNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LOCKER-001",
		Message: "Locker not found.",
	})
}
