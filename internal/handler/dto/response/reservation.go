package response

import (
	"time"

	"github.com/jmlivon/app-canchas-futbol/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	DNI           string    `json:"dni"`
	RequesterName string    `json:"requesterName"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	FieldID       uuid.UUID `json:"fieldId"`
	FieldName     string    `json:"fieldName"`
	FieldCategory string    `json:"fieldCategory"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            rm.ID,
		DNI:           rm.DNI,
		RequesterName: rm.RequesterName,
		Phone:         rm.Phone,
		Email:         rm.Email,
		FieldID:       rm.FieldID,
		FieldName:     rm.FieldName,
		FieldCategory: rm.FieldCategory,
		Date:          rm.Date,
		StartTime:     rm.StartTime,
		EndTime:       rm.EndTime,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromReservationView(rm)
	}
	return result
}
