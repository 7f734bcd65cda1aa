package handler

import (
	"net/http"

	sharedError "github.com/smghasemi/membersync/internal/shared/error"
	"github.com/smghasemi/membersync/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates the JSON request body. On failure the error
// response has already been written, so handlers just return:
//
//	var req ImportRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		// Attach to the gin context so the logging middleware records it.
		c.Error(err)

		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// RespondError records the error on the gin context and writes the mapped
// response.
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	c.Error(err)
	c.JSON(errResp.Status, errResp)
}
