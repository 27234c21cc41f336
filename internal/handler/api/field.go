package api

import (
	"errors"
	"net/http"

	reqdto "github.com/jmlivon/app-canchas-futbol/internal/handler/dto/request"
	resdto "github.com/jmlivon/app-canchas-futbol/internal/handler/dto/response"
	"github.com/jmlivon/app-canchas-futbol/internal/handler/httperr"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/commands"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FieldHandler struct {
	fieldCommands commands.FieldCommands
	fieldQueries  queries.FieldQueries
}

func NewFieldHandler(fieldCommands commands.FieldCommands, fieldQueries queries.FieldQueries) *FieldHandler {
	return &FieldHandler{
		fieldCommands: fieldCommands,
		fieldQueries:  fieldQueries,
	}
}

// @Summary Create field
// @Description Register a new bookable field. Admin-facing.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreateFieldRequest true "Field request"
// @Success 201 {object} resdto.CreateFieldResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/fields [post]
func (h *FieldHandler) CreateField(c *gin.Context) {
	var req reqdto.CreateFieldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.fieldCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateFieldResponse{ID: id})
}

// @Summary List fields
// @Description List every field, including deactivated ones. Admin-facing.
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.FieldResponse
// @Router /admin/fields [get]
func (h *FieldHandler) ListFields(c *gin.Context) {
	views, err := h.fieldQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldViews(views))
}

// @Summary Update field
// @Description Update field attributes. Rejected while the field holds upcoming reservations. Admin-facing.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param request body reqdto.UpdateFieldRequest true "Field request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/fields/{id} [put]
func (h *FieldHandler) UpdateField(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid field ID format", nil)
		return
	}

	var req reqdto.UpdateFieldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.fieldCommands.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Field updated",
	})
}

// @Summary Deactivate field
// @Description Soft-delete a field so it stops appearing in availability. Admin-facing.
// @Tags admin
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/fields/{id} [delete]
func (h *FieldHandler) DeactivateField(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid field ID format", nil)
		return
	}

	if err := h.fieldCommands.Deactivate(c.Request.Context(), id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Field deactivated",
	})
}

func (h *FieldHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	case errors.Is(err, commands.ErrDuplicateField):
		httperr.AbortWithError(c, http.StatusConflict, err, "An active field with that name and category already exists", nil)
	case errors.Is(err, commands.ErrFieldHasUpcoming):
		httperr.AbortWithError(c, http.StatusConflict, err, "Field has upcoming reservations", nil)
	case errors.Is(err, commands.ErrFieldNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
