package registry

import (
	"errors"
	"strconv"

	sharedError "github.com/smghasemi/membersync/internal/shared/error"
	"github.com/smghasemi/membersync/internal/shared/handler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler exposes one generic CRUD resource over the six synchronized
// entities, selected by the action query parameter.
type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// resolve maps the action parameter to its descriptor, answering the
// invalid-action error itself so handlers can bail out directly.
func (h *Handler) resolve(c *gin.Context) (descriptor, bool) {
	action := c.Query("action")
	desc, ok := descriptors[action]
	if !ok {
		handler.RespondError(c, ErrInvalidAction, mustResolve(ErrInvalidAction))
		return descriptor{}, false
	}
	return desc, true
}

// List handles GET with filtering, ordering, and pagination.
func (h *Handler) List(c *gin.Context) {
	desc, ok := h.resolve(c)
	if !ok {
		return
	}

	q := h.db.WithContext(c.Request.Context()).Model(desc.newModel())

	// The id parameter filters on the natural key regardless of entity.
	if id := c.Query("id"); id != "" {
		q = q.Where(desc.pkColumn+" = ?", coerceFilter(id))
	}

	for _, field := range desc.filters {
		if value, present := c.GetQuery(field); present {
			q = q.Where(field+" = ?", coerceFilter(value))
		}
	}

	switch c.Query("order_by") {
	case "latest":
		q = q.Order(desc.pkColumn + " DESC")
	case "earlier":
		q = q.Order(desc.pkColumn + " ASC")
	}

	page, limit, err := pagination(c)
	if err != nil {
		handler.RespondError(c, err, mustResolve(ErrInvalidPagination))
		return
	}

	var totalItems int64
	if err := q.Count(&totalItems).Error; err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}
	totalPages := (totalItems + int64(limit) - 1) / int64(limit)

	items := desc.newSlice()
	if err := q.Offset((page - 1) * limit).Limit(limit).Find(items).Error; err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, ListResponse{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		Items:       items,
	})
}

// Create handles POST.
func (h *Handler) Create(c *gin.Context) {
	desc, ok := h.resolve(c)
	if !ok {
		return
	}

	obj := desc.newModel()
	if !handler.BindJSON(c, obj) {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(obj).Error; err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(201, obj)
}

// Patch handles partial updates by id.
func (h *Handler) Patch(c *gin.Context) {
	desc, ok := h.resolve(c)
	if !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		handler.RespondError(c, ErrMissingID, mustResolve(ErrMissingID))
		return
	}

	obj := desc.newModel()
	err := h.db.WithContext(c.Request.Context()).Where(desc.pkColumn+" = ?", coerceFilter(id)).First(obj).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			handler.RespondError(c, ErrEntryNotFound, mustResolve(ErrEntryNotFound))
			return
		}
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	var patch map[string]any
	if !handler.BindJSON(c, &patch) {
		return
	}

	// Only declared columns may be patched; the natural key never is.
	updates := make(map[string]any, len(patch))
	for _, column := range desc.columns {
		if value, present := patch[column]; present {
			updates[column] = value
		}
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(c.Request.Context()).Model(obj).Updates(updates).Error; err != nil {
			handler.RespondError(c, err, sharedError.InternalServerError)
			return
		}

		// Re-read so the response reflects the stored row, not the patch map.
		obj = desc.newModel()
		if err := h.db.WithContext(c.Request.Context()).Where(desc.pkColumn+" = ?", coerceFilter(id)).First(obj).Error; err != nil {
			handler.RespondError(c, err, sharedError.InternalServerError)
			return
		}
	}

	c.JSON(200, obj)
}

// Delete handles DELETE by id.
func (h *Handler) Delete(c *gin.Context) {
	desc, ok := h.resolve(c)
	if !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		handler.RespondError(c, ErrMissingID, mustResolve(ErrMissingID))
		return
	}

	res := h.db.WithContext(c.Request.Context()).Where(desc.pkColumn+" = ?", coerceFilter(id)).Delete(desc.newModel())
	if res.Error != nil {
		handler.RespondError(c, res.Error, sharedError.InternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		handler.RespondError(c, ErrEntryNotFound, mustResolve(ErrEntryNotFound))
		return
	}

	c.JSON(200, gin.H{"message": "Deleted successfully."})
}

func pagination(c *gin.Context) (page, limit int, err error) {
	page, limit = 1, 10

	if raw := c.Query("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, ErrInvalidPagination
		}
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, ErrInvalidPagination
		}
	}
	return page, limit, nil
}

// mustResolve looks up the registered response for a domain error. All
// errors passed here are registered in this package's init.
func mustResolve(err error) sharedError.ErrorResponse {
	resp, _ := sharedError.ResolveDomainError(err)
	return resp
}
