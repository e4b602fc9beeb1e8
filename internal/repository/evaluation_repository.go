package repository

import (
	"context"

	"github.com/fadilmartias/mentor-eval/internal/apperr"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EvaluationFilter narrows ListByUser. Offset only applies with a Limit.
type EvaluationFilter struct {
	Stage  model.Stage
	Limit  int
	Offset int
}

type EvaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db}
}

func (r *EvaluationRepository) CreateEvaluation(ctx context.Context, evaluation *model.Evaluation) error {
	return apperr.Store("create evaluation", r.db.WithContext(ctx).Create(evaluation).Error)
}

func (r *EvaluationRepository) UpdateEvaluation(ctx context.Context, evaluation *model.Evaluation) error {
	return apperr.Store("update evaluation", r.db.WithContext(ctx).Save(evaluation).Error)
}

func (r *EvaluationRepository) DeleteEvaluation(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Evaluation{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Store("delete evaluation", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("evaluation %s", id)
	}
	return nil
}

func (r *EvaluationRepository) FindEvaluationByID(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	var e model.Evaluation
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, apperr.Store("find evaluation", err)
	}
	return &e, nil
}

// ListByUser returns a user's evaluations, most recent first, together with
// the total number of matches ignoring Limit and Offset.
func (r *EvaluationRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter EvaluationFilter) ([]model.Evaluation, int64, error) {
	scoped := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.Evaluation{}).Where("user_id = ?", userID)
		if filter.Stage != "" {
			q = q.Where("stage = ?", filter.Stage)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, apperr.Store("count evaluations", err)
	}

	q := mostRecentFirst(scoped())
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var evaluations []model.Evaluation
	if err := q.Find(&evaluations).Error; err != nil {
		return nil, 0, apperr.Store("list evaluations", err)
	}
	return evaluations, total, nil
}

func mostRecentFirst(q *gorm.DB) *gorm.DB {
	return q.Order("evaluation_date DESC").Order("created_at DESC").Order("id")
}
