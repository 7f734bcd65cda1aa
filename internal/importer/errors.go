package importer

import (
	"net/http"

	sharedError "github.com/smghasemi/membersync/internal/shared/error"
)

const (
	missingInput        = "IMPORT_MISSING_INPUT"        // errInfo
	sourceConnection    = "IMPORT_SOURCE_CONNECTION"    // errInfo
	referenceResolution = "IMPORT_REFERENCE_RESOLUTION" // errInfo
	persistence         = "IMPORT_PERSISTENCE"          // errInfo
)

var (
	// ErrMissingInput: server or database identifier absent. Reported before
	// any connection attempt.
	ErrMissingInput = sharedError.NewDomainError(missingInput)

	// ErrSourceConnection: the legacy SQL Server could not be reached or
	// refused the connection. Nothing has been written.
	ErrSourceConnection = sharedError.NewDomainError(sourceConnection)

	// ErrReferenceResolution: a member row references a role, user, or shift
	// that does not exist in the destination. Fatal for the run.
	ErrReferenceResolution = sharedError.NewDomainError(referenceResolution)

	// ErrPersistence: a destination write failed. Fatal for the run.
	ErrPersistence = sharedError.NewDomainError(persistence)
)

func init() {
	sharedError.RegisterDomainErrorResponse(missingInput, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "IMPORT-001",
		Message: "SERVER and DATABASE must be provided.",
	})

	sharedError.RegisterDomainErrorResponse(sourceConnection, sharedError.ErrorResponse{
		Status:  http.StatusBadGateway,
		Code:    "IMPORT-002",
		Message: "Could not connect to the source database.",
	})

	sharedError.RegisterDomainErrorResponse(referenceResolution, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "IMPORT-003",
		Message: "Import failed: a member row references a missing role, user, or shift.",
	})

	sharedError.RegisterDomainErrorResponse(persistence, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "IMPORT-004",
		Message: "Import failed: could not write to the destination store.",
	})
}
