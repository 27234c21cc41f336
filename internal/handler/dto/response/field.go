package response

import (
	"time"

	"github.com/jmlivon/app-canchas-futbol/internal/usecase/queries"

	"github.com/google/uuid"
)

type FieldResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Capacity  int       `json:"capacity"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateFieldResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromFieldView(rm *queries.FieldView) *FieldResponse {
	return &FieldResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Category:  rm.Category,
		Capacity:  rm.Capacity,
		Active:    rm.Active,
		CreatedAt: rm.CreatedAt,
	}
}

func FromFieldViews(rms []*queries.FieldView) []*FieldResponse {
	result := make([]*FieldResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromFieldView(rm)
	}
	return result
}
