package importer

import (
	"errors"
	"strings"

	sharedContext "github.com/smghasemi/membersync/internal/shared/context"
	sharedError "github.com/smghasemi/membersync/internal/shared/error"
	"github.com/smghasemi/membersync/internal/shared/handler"
	"github.com/smghasemi/membersync/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	importService *ImportService
}

func NewImportHandler(importService *ImportService) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// Run triggers one synchronous import. The response is held open until the
// run completes or aborts.
func (h *ImportHandler) Run(c *gin.Context) {
	userID, ok := sharedContext.RequireUserID(c)
	if !ok {
		return
	}

	var request ImportRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	logger.FromContext(c.Request.Context()).Info("import requested",
		"user_id", userID,
		"server", request.Server,
		"database", request.Database,
	)

	report, err := h.importService.Run(c.Request.Context(), request.Server, request.Database)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			// Name the table and row the run stopped at, not just the class
			// of failure.
			if detail := failureDetail(err); detail != "" {
				resp.Message = resp.Message + " (" + detail + ")"
			}
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, ImportResponse{
		Message: "Data imported successfully.",
		Tables:  report.Tables,
	})
}

// failureDetail strips the trailing sentinel token from the error chain,
// leaving the human-readable failure point ("import table member: member 60:
// role 999 not found").
func failureDetail(err error) string {
	var domainErr sharedError.DomainError
	if !errors.As(err, &domainErr) {
		return err.Error()
	}
	return strings.TrimSuffix(err.Error(), ": "+domainErr.Info())
}
