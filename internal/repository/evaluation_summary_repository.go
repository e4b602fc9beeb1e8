package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fadilmartias/mentor-eval/internal/apperr"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryRepository owns both copies of a user's evaluation summary: the
// field on the user row and the evaluation_summaries lookup row. Writes touch
// both in one transaction.
type SummaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db}
}

// ListEvaluationsBySubject returns every evaluation of a user, most recent first.
func (r *SummaryRepository) ListEvaluationsBySubject(ctx context.Context, userID uuid.UUID) ([]model.Evaluation, error) {
	var evaluations []model.Evaluation
	err := mostRecentFirst(r.db.WithContext(ctx).Where("user_id = ?", userID)).Find(&evaluations).Error
	if err != nil {
		return nil, apperr.Store("list subject evaluations", err)
	}
	return evaluations, nil
}

func (r *SummaryRepository) SaveSummary(ctx context.Context, userID uuid.UUID, summary model.EvaluationSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).Where("id = ?", userID).Update("evaluation_summary", datatypes.JSON(raw))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("user %s", userID)
		}

		record := model.EvaluationSummaryRecord{
			UserID:    userID,
			Summary:   datatypes.NewJSONType(summary),
			UpdatedAt: time.Now().UTC(),
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"summary", "updated_at"}),
		}).Create(&record).Error
	})
	return apperr.Store("save evaluation summary", err)
}

// ClearSummary removes both copies. The user field becomes NULL, never an
// empty or zeroed document.
func (r *SummaryRepository) ClearSummary(ctx context.Context, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).Where("id = ?", userID).Update("evaluation_summary", gorm.Expr("NULL"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("user %s", userID)
		}
		return tx.Where("user_id = ?", userID).Delete(&model.EvaluationSummaryRecord{}).Error
	})
	return apperr.Store("clear evaluation summary", err)
}

func (r *SummaryRepository) FindSummaryByUserID(ctx context.Context, userID uuid.UUID) (*model.EvaluationSummaryRecord, error) {
	var record model.EvaluationSummaryRecord
	err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	if err != nil {
		return nil, apperr.Store("find evaluation summary", err)
	}
	return &record, nil
}

// ListSubjectIDs returns every user that has evaluations or a stored summary.
func (r *SummaryRepository) ListSubjectIDs(ctx context.Context) ([]uuid.UUID, error) {
	var evaluated []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.Evaluation{}).Distinct().Pluck("user_id", &evaluated).Error; err != nil {
		return nil, apperr.Store("list evaluated users", err)
	}
	var summarized []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.EvaluationSummaryRecord{}).Pluck("user_id", &summarized).Error; err != nil {
		return nil, apperr.Store("list summarized users", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(evaluated)+len(summarized))
	ids := make([]uuid.UUID, 0, len(evaluated)+len(summarized))
	for _, id := range append(evaluated, summarized...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
