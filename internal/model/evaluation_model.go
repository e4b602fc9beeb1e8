package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CriterionScore is the score given for one criterion, with the max score
// copied from the template at evaluation time.
type CriterionScore struct {
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
}

// CriteriaScores maps criterion id to its score.
type CriteriaScores map[string]CriterionScore

// Evaluation is one evaluator's scoring of a user at a stage.
type Evaluation struct {
	ID             uuid.UUID                          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID                          `gorm:"type:uuid;not null;index" json:"user_id"`
	ApplicationID  *uuid.UUID                         `gorm:"type:uuid" json:"application_id,omitempty"`
	JobPostingID   *uuid.UUID                         `gorm:"type:uuid" json:"job_posting_id,omitempty"`
	TemplateID     uuid.UUID                          `gorm:"type:uuid;not null" json:"template_id"`
	Stage          Stage                              `gorm:"type:varchar(50);not null;index" json:"stage"`
	CriteriaScores datatypes.JSONType[CriteriaScores] `json:"criteria_scores"`
	TotalScore     float64                            `gorm:"type:float" json:"total_score"`
	Percentage     float64                            `gorm:"type:float" json:"percentage"`
	Feedback       string                             `gorm:"type:text" json:"feedback"`
	EvaluatorID    string                             `gorm:"type:varchar(255);not null" json:"evaluator_id"`
	EvaluatorName  string                             `gorm:"type:varchar(255)" json:"evaluator_name"`
	EvaluatorRole  string                             `gorm:"type:varchar(50)" json:"evaluator_role"`
	EvaluationDate time.Time                          `gorm:"not null;index" json:"evaluation_date"`
	CreatedAt      time.Time                          `json:"created_at"`
	UpdatedAt      time.Time                          `json:"updated_at"`
}

func (e *Evaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
