package registry

import (
	"net/http"

	sharedError "github.com/smghasemi/membersync/internal/shared/error"
)

const (
	invalidAction     = "REGISTRY_INVALID_ACTION"     // errInfo
	invalidPagination = "REGISTRY_INVALID_PAGINATION" // errInfo
	missingID         = "REGISTRY_MISSING_ID"         // errInfo
	entryNotFound     = "REGISTRY_ENTRY_NOT_FOUND"    // errInfo
)

var (
	ErrInvalidAction     = sharedError.NewDomainError(invalidAction)
	ErrInvalidPagination = sharedError.NewDomainError(invalidPagination)
	ErrMissingID         = sharedError.NewDomainError(missingID)
	ErrEntryNotFound     = sharedError.NewDomainError(entryNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidAction, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "REGISTRY-001",
		Message: "Invalid action.",
	})

	sharedError.RegisterDomainErrorResponse(invalidPagination, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "REGISTRY-002",
		Message: "Invalid pagination values.",
	})

	sharedError.RegisterDomainErrorResponse(missingID, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "REGISTRY-003",
		Message: "ID parameter is required.",
	})

	sharedError.RegisterDomainErrorResponse(entryNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "REGISTRY-004",
		Message: "Object not found.",
	})
}
