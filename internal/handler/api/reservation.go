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

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a one-hour slot on a field
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.reservationCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Cancel an active reservation by DNI, date and start time
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CancelReservationRequest true "Cancellation request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	var req reqdto.CancelReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), req.ToInput()); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reservation cancelled",
	})
}

// @Summary Reschedule reservation
// @Description Move an active reservation to a new date, start time and optionally another field
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.RescheduleReservationRequest true "Reschedule request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/reschedule [put]
func (h *ReservationHandler) RescheduleReservation(c *gin.Context) {
	var req reqdto.RescheduleReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.reservationCommands.Reschedule(c.Request.Context(), req.ToInput()); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reservation rescheduled",
	})
}

// @Summary List reservations
// @Description List every reservation, newest first. Admin-facing.
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /admin/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	views, err := h.reservationQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Cancel reservation by ID
// @Description Cancel any active reservation regardless of lead time. Admin-facing.
// @Tags admin
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservationByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	if err := h.reservationCommands.CancelByID(c.Request.Context(), id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reservation cancelled",
	})
}

func (h *ReservationHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	case errors.Is(err, commands.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot book a past date", nil)
	case errors.Is(err, commands.ErrDuplicateBooking):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requester already has a reservation for that date", nil)
	case errors.Is(err, commands.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "The requested slot is not available", nil)
	case errors.Is(err, commands.ErrWindowClosed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Changes require more than 24 hours before the reserved slot", nil)
	case errors.Is(err, commands.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, commands.ErrFieldNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found", nil)
	case errors.Is(err, commands.ErrFieldInactive):
		httperr.AbortWithError(c, http.StatusConflict, err, "Field is not active", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
