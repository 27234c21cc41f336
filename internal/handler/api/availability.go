package api

import (
	"errors"
	"net/http"

	resdto "github.com/jmlivon/app-canchas-futbol/internal/handler/dto/response"
	"github.com/jmlivon/app-canchas-futbol/internal/handler/httperr"
	"github.com/jmlivon/app-canchas-futbol/internal/pkg/errs"
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

var errDateRequired = errs.New("date query parameter is missing")

// @Summary Get availability
// @Description List free hourly slots per active field for a date
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param category query string false "Field category filter (small/medium/large or F5/F7/F11)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errDateRequired, "date query parameter is required", nil)
		return
	}
	category := c.Query("category")

	views, err := h.availability.ForDate(c.Request.Context(), date, category)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or past date", nil)
		case errors.Is(err, queries.ErrInvalidCategory):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityViews(date, views))
}
