package error

import (
	"errors"
	"net/http"
)

// DomainError is a sentinel a domain package declares once and wraps into
// its error chains. The errInfo string keys the registered HTTP response.
type DomainError interface {
	error
	Info() string
}

type sentinel struct {
	errInfo string
}

func (e *sentinel) Error() string { return e.errInfo }
func (e *sentinel) Info() string  { return e.errInfo }

// ErrorResponse is the JSON error envelope every handler writes.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"` // client-facing message
}

var (
	domainErrorResponses = map[string]ErrorResponse{}

	// ValidationFailed: the request payload failed field validation.
	ValidationFailed = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-001", // METHOD_ARGUMENT_NOT_VALID
		Message: "Invalid request.",
	}

	// InvalidRequest: the request could not be parsed at all.
	InvalidRequest = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-002", // INVALID_REQUEST
		Message: "Invalid request format.",
	}

	// InternalServerError: anything unexpected.
	InternalServerError = ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "ERROR-003", // INTERNAL_SERVER_ERROR
		Message: "An internal server error occurred.",
	}
)

// NewDomainError creates a sentinel that participates in errors.Is/As chains.
func NewDomainError(errInfo string) DomainError {
	return &sentinel{errInfo: errInfo}
}

// RegisterDomainErrorResponse binds an errInfo to the response handlers
// write for it. Domain packages call this from init.
func RegisterDomainErrorResponse(errInfo string, resp ErrorResponse) {
	domainErrorResponses[errInfo] = resp
}

// ResolveDomainError walks err's chain for a registered domain sentinel and
// returns its response.
func ResolveDomainError(err error) (ErrorResponse, bool) {
	if err == nil {
		return ErrorResponse{}, false
	}

	var domainErr DomainError
	if errors.As(err, &domainErr) {
		if resp, ok := domainErrorResponses[domainErr.Info()]; ok {
			return resp, true
		}
	}
	return ErrorResponse{}, false
}
