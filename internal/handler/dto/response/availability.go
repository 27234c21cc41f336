package response

import (
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/queries"

	"github.com/google/uuid"
)

type FieldAvailabilityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Capacity  int       `json:"capacity"`
	FreeSlots []string  `json:"freeSlots"`
}

type AvailabilityResponse struct {
	Date   string                       `json:"date"`
	Fields []*FieldAvailabilityResponse `json:"fields"`
}

func FromAvailabilityViews(date string, rms []*queries.FieldAvailabilityView) *AvailabilityResponse {
	fields := make([]*FieldAvailabilityResponse, len(rms))
	for i, rm := range rms {
		fields[i] = &FieldAvailabilityResponse{
			ID:        rm.ID,
			Name:      rm.Name,
			Category:  rm.Category,
			Capacity:  rm.Capacity,
			FreeSlots: rm.FreeSlots,
		}
	}
	return &AvailabilityResponse{Date: date, Fields: fields}
}
