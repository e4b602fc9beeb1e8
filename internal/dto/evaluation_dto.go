package dto

import (
	"time"

	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/google/uuid"
)

// EvaluationForm is the input of a new evaluation. Scores maps criterion id
// to the score given.
type EvaluationForm struct {
	UserID         uuid.UUID          `json:"user_id"`
	ApplicationID  *uuid.UUID         `json:"application_id"`
	JobPostingID   *uuid.UUID         `json:"job_posting_id"`
	TemplateID     uuid.UUID          `json:"template_id"`
	Scores         map[string]float64 `json:"scores"`
	Feedback       string             `json:"feedback"`
	EvaluationDate *time.Time         `json:"evaluation_date"`
}

// EvaluationPatch lists the fields of an evaluation that may change. Nil
// fields are left alone. Scores are merged over the stored ones. The Set
// flags distinguish clearing a reference from not touching it.
type EvaluationPatch struct {
	Scores           map[string]float64
	Feedback         *string
	SetApplicationID bool
	ApplicationID    *uuid.UUID
	SetJobPostingID  bool
	JobPostingID     *uuid.UUID
	EvaluationDate   *time.Time
}

func (p EvaluationPatch) Empty() bool {
	return p.Scores == nil && p.Feedback == nil && !p.SetApplicationID && !p.SetJobPostingID && p.EvaluationDate == nil
}

type EvaluationDTO struct {
	ID             uuid.UUID            `json:"id"`
	UserID         uuid.UUID            `json:"user_id"`
	ApplicationID  *uuid.UUID           `json:"application_id,omitempty"`
	JobPostingID   *uuid.UUID           `json:"job_posting_id,omitempty"`
	TemplateID     uuid.UUID            `json:"template_id"`
	Stage          model.Stage          `json:"stage"`
	CriteriaScores model.CriteriaScores `json:"criteria_scores"`
	TotalScore     float64              `json:"total_score"`
	Percentage     float64              `json:"percentage"`
	Feedback       string               `json:"feedback"`
	Evaluator      model.Evaluator      `json:"evaluator"`
	EvaluationDate time.Time            `json:"evaluation_date"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func NewEvaluationDTO(e model.Evaluation) EvaluationDTO {
	return EvaluationDTO{
		ID:             e.ID,
		UserID:         e.UserID,
		ApplicationID:  e.ApplicationID,
		JobPostingID:   e.JobPostingID,
		TemplateID:     e.TemplateID,
		Stage:          e.Stage,
		CriteriaScores: e.CriteriaScores.Data(),
		TotalScore:     e.TotalScore,
		Percentage:     e.Percentage,
		Feedback:       e.Feedback,
		Evaluator: model.Evaluator{
			ID:   e.EvaluatorID,
			Name: e.EvaluatorName,
			Role: e.EvaluatorRole,
		},
		EvaluationDate: e.EvaluationDate,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func NewEvaluationDTOs(evaluations []model.Evaluation) []EvaluationDTO {
	out := make([]EvaluationDTO, 0, len(evaluations))
	for _, e := range evaluations {
		out = append(out, NewEvaluationDTO(e))
	}
	return out
}

type EvaluationSummaryDTO struct {
	UserID    uuid.UUID               `json:"user_id"`
	Summary   model.EvaluationSummary `json:"summary"`
	UpdatedAt time.Time               `json:"updated_at"`
}

func NewEvaluationSummaryDTO(r model.EvaluationSummaryRecord) EvaluationSummaryDTO {
	return EvaluationSummaryDTO{
		UserID:    r.UserID,
		Summary:   r.Summary.Data(),
		UpdatedAt: r.UpdatedAt,
	}
}
