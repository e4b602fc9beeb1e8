package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStage(t *testing.T) {
	tests := []struct {
		input   string
		want    Stage
		wantErr bool
	}{
		{input: "서류 전형", want: StageDocumentReview},
		{input: " 면접 전형 ", want: StageInterview},
		{input: "faceToFaceEducation", want: StageFaceToFaceEducation},
		{input: "campparticipation", want: StageCampParticipation},
		{input: "offer", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStage(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummaryStageSlots(t *testing.T) {
	var s EvaluationSummary
	for i, stage := range Stages {
		assert.Nil(t, s.Stage(stage))
		s.SetStage(stage, &StageSummary{Count: i + 1})
	}
	assert.Equal(t, 1, s.DocumentReview.Count)
	assert.Equal(t, 2, s.Interview.Count)
	assert.Equal(t, 3, s.FaceToFaceEducation.Count)
	assert.Equal(t, 4, s.CampParticipation.Count)
	assert.Nil(t, s.Stage("unknown"))
}

func TestUserSummary(t *testing.T) {
	u := User{}
	got, err := u.Summary()
	require.NoError(t, err)
	assert.Nil(t, got)

	u.EvaluationSummary = []byte(`{"overallAverage":8,"totalEvaluations":3,"interview":{"averageScore":10,"count":1}}`)
	got, err = u.Summary()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 8.0, got.OverallAverage)
	assert.Equal(t, 10.0, got.Interview.AverageScore)
	assert.Nil(t, got.DocumentReview)
}
