package request

import (
	"github.com/jmlivon/app-canchas-futbol/internal/usecase/commands"
)

type CreateFieldRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
}

func (r CreateFieldRequest) ToInput() commands.CreateFieldInput {
	return commands.CreateFieldInput{
		Name:     r.Name,
		Category: r.Category,
		Capacity: r.Capacity,
	}
}

type UpdateFieldRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
}

func (r UpdateFieldRequest) ToInput() commands.UpdateFieldInput {
	return commands.UpdateFieldInput{
		Name:     r.Name,
		Category: r.Category,
		Capacity: r.Capacity,
	}
}
