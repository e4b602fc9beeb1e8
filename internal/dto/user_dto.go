package dto

import (
	"time"

	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/google/uuid"
)

type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type UserDTO struct {
	ID                uuid.UUID                `json:"id"`
	Name              string                   `json:"name"`
	Email             string                   `json:"email"`
	Phone             string                   `json:"phone,omitempty"`
	Role              string                   `json:"role"`
	EvaluationSummary *model.EvaluationSummary `json:"evaluation_summary,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func NewUserDTO(u model.User) (UserDTO, error) {
	summary, err := u.Summary()
	if err != nil {
		return UserDTO{}, err
	}
	return UserDTO{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Phone:             u.Phone,
		Role:              u.Role,
		EvaluationSummary: summary,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}, nil
}

type JobPostingInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}
