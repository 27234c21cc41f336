package request

import (
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	DNI       string    `json:"dni" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Phone     string    `json:"phone" binding:"required"`
	Email     string    `json:"email" binding:"required"`
	FieldID   uuid.UUID `json:"field_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		DNI:       r.DNI,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		FieldID:   r.FieldID,
		Date:      r.Date,
		StartTime: r.StartTime,
	}
}

// CancelReservationRequest identifies the booking by its natural key,
// the same triple the requester knows without storing an ID.
type CancelReservationRequest struct {
	DNI       string `json:"dni" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

func (r CancelReservationRequest) ToInput() commands.CancelReservationInput {
	return commands.CancelReservationInput{
		DNI:       r.DNI,
		Date:      r.Date,
		StartTime: r.StartTime,
	}
}

type RescheduleReservationRequest struct {
	DNI          string     `json:"dni" binding:"required"`
	CurrentDate  string     `json:"current_date" binding:"required"`
	CurrentStart string     `json:"current_start" binding:"required"`
	NewDate      string     `json:"new_date" binding:"required"`
	NewStart     string     `json:"new_start" binding:"required"`
	FieldID      *uuid.UUID `json:"field_id,omitempty"`
}

func (r RescheduleReservationRequest) ToInput() commands.RescheduleInput {
	return commands.RescheduleInput{
		DNI:          r.DNI,
		CurrentDate:  r.CurrentDate,
		CurrentStart: r.CurrentStart,
		NewDate:      r.NewDate,
		NewStart:     r.NewStart,
		FieldID:      r.FieldID,
	}
}
