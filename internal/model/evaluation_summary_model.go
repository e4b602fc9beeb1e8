package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StageSummary aggregates the evaluations of one stage.
type StageSummary struct {
	AverageScore    float64     `json:"averageScore"`
	Count           int         `json:"count"`
	HighestScore    float64     `json:"highestScore"`
	LowestScore     float64     `json:"lowestScore"`
	LastEvaluatedAt time.Time   `json:"lastEvaluatedAt"`
	EvaluationIDs   []uuid.UUID `json:"evaluationIds"`
}

// EvaluationSummary is derived data: it must always equal a recomputation
// over the user's current evaluations. Stages without evaluations are nil.
type EvaluationSummary struct {
	DocumentReview      *StageSummary `json:"documentReview,omitempty"`
	Interview           *StageSummary `json:"interview,omitempty"`
	FaceToFaceEducation *StageSummary `json:"faceToFaceEducation,omitempty"`
	CampParticipation   *StageSummary `json:"campParticipation,omitempty"`
	OverallAverage      float64       `json:"overallAverage"`
	TotalEvaluations    int           `json:"totalEvaluations"`
	LastEvaluatedAt     time.Time     `json:"lastEvaluatedAt"`
}

// Stage returns the summary slot for s, nil when the stage has no evaluations.
func (s *EvaluationSummary) Stage(stage Stage) *StageSummary {
	switch stage {
	case StageDocumentReview:
		return s.DocumentReview
	case StageInterview:
		return s.Interview
	case StageFaceToFaceEducation:
		return s.FaceToFaceEducation
	case StageCampParticipation:
		return s.CampParticipation
	}
	return nil
}

func (s *EvaluationSummary) SetStage(stage Stage, summary *StageSummary) {
	switch stage {
	case StageDocumentReview:
		s.DocumentReview = summary
	case StageInterview:
		s.Interview = summary
	case StageFaceToFaceEducation:
		s.FaceToFaceEducation = summary
	case StageCampParticipation:
		s.CampParticipation = summary
	}
}

// EvaluationSummaryRecord mirrors a user's summary for lookup by user id.
type EvaluationSummaryRecord struct {
	UserID    uuid.UUID                             `gorm:"type:uuid;primaryKey" json:"user_id"`
	Summary   datatypes.JSONType[EvaluationSummary] `json:"summary"`
	UpdatedAt time.Time                             `json:"updated_at"`
}

func (r *EvaluationSummaryRecord) TableName() string {
	return "evaluation_summaries"
}
