package model

import (
	"fmt"
	"strings"
)

// Stage is one of the four fixed evaluation phases. Values are the labels
// used by the admin dashboard and stored as-is.
type Stage string

const (
	StageDocumentReview      Stage = "서류 전형"
	StageInterview           Stage = "면접 전형"
	StageFaceToFaceEducation Stage = "대면 교육"
	StageCampParticipation   Stage = "캠프 참여"
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{StageDocumentReview, StageInterview, StageFaceToFaceEducation, StageCampParticipation}

var stageKeys = map[Stage]string{
	StageDocumentReview:      "documentReview",
	StageInterview:           "interview",
	StageFaceToFaceEducation: "faceToFaceEducation",
	StageCampParticipation:   "campParticipation",
}

// Key returns the camelCase key used for the stage inside a summary document.
func (s Stage) Key() string {
	return stageKeys[s]
}

func (s Stage) Valid() bool {
	_, ok := stageKeys[s]
	return ok
}

// ParseStage accepts either the stage label or its summary key.
func ParseStage(raw string) (Stage, error) {
	raw = strings.TrimSpace(raw)
	for stage, key := range stageKeys {
		if raw == string(stage) || strings.EqualFold(raw, key) {
			return stage, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", raw)
}
