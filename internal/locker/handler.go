package locker

import (
	"net/http"
	"strconv"

	sharedError "github.com/smghasemi/membersync/internal/shared/error"
	"github.com/smghasemi/membersync/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type LockerHandler struct {
	lockerService *LockerService
}

func NewLockerHandler(lockerService *LockerService) *LockerHandler {
	return &LockerHandler{
		lockerService: lockerService,
	}
}

// List handles GET: a single locker when id is given, otherwise a filtered
// listing.
func (h *LockerHandler) List(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
			return
		}

		response, err := h.lockerService.Get(c.Request.Context(), id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(200, response)
		return
	}

	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	responses, err := h.lockerService.List(c.Request.Context(), filters)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(200, responses)
}

func (h *LockerHandler) Create(c *gin.Context) {
	var request CreateLockerRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.lockerService.Create(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(201, response)
}

func (h *LockerHandler) Patch(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	var request UpdateLockerRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.lockerService.Patch(c.Request.Context(), id, &request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(200, response)
}

func (h *LockerHandler) Delete(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	if err := h.lockerService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Locker deleted successfully."})
}

func (h *LockerHandler) respondError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}
	handler.RespondError(c, err, sharedError.InternalServerError)
}

func requireID(c *gin.Context) (int64, bool) {
	raw := c.Query("id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, sharedError.ErrorResponse{
			Status:  http.StatusBadRequest,
			Code:    "LOCKER-002",
			Message: "ID query param is required.",
		})
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return id, true
}

func parseFilters(c *gin.Context) (ListFilters, bool) {
	var filters ListFilters

	if raw, present := c.GetQuery("is_vip"); present {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
			return filters, false
		}
		filters.IsVIP = &v
	}
	if raw, present := c.GetQuery("is_open"); present {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
			return filters, false
		}
		filters.IsOpen = &v
	}
	if raw, present := c.GetQuery("user_id"); present {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
			return filters, false
		}
		filters.UserID = &v
	}
	if raw, present := c.GetQuery("full_name"); present {
		filters.FullName = &raw
	}

	return filters, true
}
