package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/mentor-eval/internal/apperr"
	"github.com/fadilmartias/mentor-eval/internal/dto"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/fadilmartias/mentor-eval/internal/repository"
	"github.com/fadilmartias/mentor-eval/internal/repository/repotest"
	"github.com/fadilmartias/mentor-eval/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateUsecase(t *testing.T) *CriteriaTemplateUsecase {
	t.Helper()
	return NewCriteriaTemplateUsecase(repository.NewCriteriaTemplateRepository(repotest.DB(t)), nil)
}

func TestCreateTemplateVersions(t *testing.T) {
	uc := newTemplateUsecase(t)
	ctx := context.Background()
	input := dto.CriteriaTemplateInput{
		Name:  "Interview Rubric",
		Stage: "interview",
		Criteria: []model.Criterion{
			{ID: "depth", MaxScore: 10, Order: 2},
			{ID: "clarity", Name: "Clarity", MaxScore: 5, Order: 1},
		},
	}

	first, err := uc.CreateTemplate(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)
	assert.Equal(t, model.StageInterview, first.Stage)
	assert.True(t, first.IsActive)

	criteria := first.Criteria.Data()
	require.Len(t, criteria, 2)
	assert.Equal(t, "clarity", criteria[0].ID)
	assert.Equal(t, "depth", criteria[1].Name)

	input.Inactive = true
	second, err := uc.CreateTemplate(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Version)
	assert.False(t, second.IsActive)

	all, err := uc.ListTemplates(ctx, model.StageInterview, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := uc.ListTemplates(ctx, "", true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)
}

func TestCreateTemplateValidation(t *testing.T) {
	uc := newTemplateUsecase(t)

	tests := []struct {
		name  string
		input dto.CriteriaTemplateInput
		field string
	}{
		{"no name", dto.CriteriaTemplateInput{Stage: "interview", Criteria: []model.Criterion{{ID: "a", MaxScore: 1}}}, "name"},
		{"bad stage", dto.CriteriaTemplateInput{Name: "x", Stage: "hackathon", Criteria: []model.Criterion{{ID: "a", MaxScore: 1}}}, "stage"},
		{"no criteria", dto.CriteriaTemplateInput{Name: "x", Stage: "interview"}, "criteria"},
		{"duplicate id", dto.CriteriaTemplateInput{Name: "x", Stage: "interview", Criteria: []model.Criterion{{ID: "a", MaxScore: 1}, {ID: "a", MaxScore: 1}}}, "criteria.1"},
		{"zero max", dto.CriteriaTemplateInput{Name: "x", Stage: "interview", Criteria: []model.Criterion{{ID: "a"}}}, "criteria.0"},
		{"negative weight", dto.CriteriaTemplateInput{Name: "x", Stage: "interview", Criteria: []model.Criterion{{ID: "a", MaxScore: 1, Weight: -1}}}, "criteria.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateTemplate(context.Background(), tt.input)
			require.ErrorIs(t, err, apperr.ErrValidationFailed)

			var formErr *util.FormError
			require.ErrorAs(t, err, &formErr)
			assert.Contains(t, formErr.Errors, tt.field)
		})
	}
}

func TestImportTemplates(t *testing.T) {
	uc := newTemplateUsecase(t)
	doc := []byte(`
templates:
  - name: Document Review
    stage: 서류 전형
    criteria:
      - id: motivation
        name: Motivation
        max_score: 10
      - id: experience
        name: Experience
        max_score: 10
        weight: 2
  - name: Camp
    stage: campParticipation
    inactive: true
    criteria:
      - id: teamwork
        max_score: 5
`)

	created, err := uc.ImportTemplates(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, model.StageDocumentReview, created[0].Stage)
	assert.Equal(t, 2.0, created[0].Criteria.Data()[1].Weight)
	assert.False(t, created[1].IsActive)

	got, err := uc.GetTemplate(context.Background(), created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Document Review", got.Name)
}

func TestImportTemplatesStopsAtFirstFailure(t *testing.T) {
	uc := newTemplateUsecase(t)
	doc := []byte(`
templates:
  - name: Good
    stage: interview
    criteria: [{id: a, max_score: 3}]
  - name: Bad
    stage: nowhere
    criteria: [{id: a, max_score: 3}]
`)

	created, err := uc.ImportTemplates(context.Background(), doc)
	require.ErrorIs(t, err, apperr.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Bad")
	assert.Len(t, created, 1)

	_, err = uc.ImportTemplates(context.Background(), []byte("templates: [unterminated"))
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)
}
