package usecase

//go:generate go tool mockgen -source=evaluation_summary_usecase.go -destination=mock_summary_store_test.go -package=usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/mentor-eval/internal/apperr"
	"github.com/fadilmartias/mentor-eval/internal/logger"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/fadilmartias/mentor-eval/internal/scoring"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SummaryStore is the persistence the aggregator needs.
type SummaryStore interface {
	ListEvaluationsBySubject(ctx context.Context, userID uuid.UUID) ([]model.Evaluation, error)
	SaveSummary(ctx context.Context, userID uuid.UUID, summary model.EvaluationSummary) error
	ClearSummary(ctx context.Context, userID uuid.UUID) error
	FindSummaryByUserID(ctx context.Context, userID uuid.UUID) (*model.EvaluationSummaryRecord, error)
	ListSubjectIDs(ctx context.Context) ([]uuid.UUID, error)
}

// SummaryPublisher announces a recomputed summary. A nil summary means it
// was cleared.
type SummaryPublisher interface {
	PublishSummary(ctx context.Context, userID uuid.UUID, summary *model.EvaluationSummary) error
}

// SummaryUsecase keeps every user's EvaluationSummary equal to a
// recomputation over the user's current evaluations. The summary is a cache:
// code that just wrote evaluations must call RecomputeSummary instead of
// reading the cached copy.
type SummaryUsecase struct {
	store     SummaryStore
	publisher SummaryPublisher
	log       *zap.Logger
}

// NewSummaryUsecase builds the aggregator. publisher may be nil.
func NewSummaryUsecase(store SummaryStore, publisher SummaryPublisher, log *zap.Logger) *SummaryUsecase {
	return &SummaryUsecase{
		store:     store,
		publisher: publisher,
		log:       logger.Component(log, "summary"),
	}
}

// RecomputeSummary rebuilds the summary of userID from scratch and stores it
// on the user and in the lookup table. With no evaluations left both copies
// are removed. Failures are returned as apperr.ErrAggregationFailed.
func (uc *SummaryUsecase) RecomputeSummary(ctx context.Context, userID uuid.UUID) error {
	evaluations, err := uc.store.ListEvaluationsBySubject(ctx, userID)
	if err != nil {
		return apperr.Aggregation(userID.String(), err)
	}

	summary, ok := scoring.ComputeSummary(evaluations)
	if !ok {
		if err := uc.store.ClearSummary(ctx, userID); err != nil {
			return apperr.Aggregation(userID.String(), err)
		}
		uc.log.Debug("summary cleared", zap.String(logger.FieldUserID, userID.String()))
		uc.publish(ctx, userID, nil)
		return nil
	}

	if err := uc.store.SaveSummary(ctx, userID, summary); err != nil {
		return apperr.Aggregation(userID.String(), err)
	}
	uc.log.Debug("summary recomputed",
		zap.String(logger.FieldUserID, userID.String()),
		zap.Int("total_evaluations", summary.TotalEvaluations),
		zap.Float64("overall_average", summary.OverallAverage),
	)
	uc.publish(ctx, userID, &summary)
	return nil
}

// GetSummary reads the lookup copy of a user's summary.
func (uc *SummaryUsecase) GetSummary(ctx context.Context, userID uuid.UUID) (*model.EvaluationSummaryRecord, error) {
	return uc.store.FindSummaryByUserID(ctx, userID)
}

// Reconcile recomputes the summary of every user that has evaluations or a
// stored summary, at most concurrency at a time. It returns how many users
// were recomputed successfully and the joined failures.
func (uc *SummaryUsecase) Reconcile(ctx context.Context, concurrency int) (int, error) {
	ids, err := uc.store.ListSubjectIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list subjects: %w", err)
	}
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]error, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = err
				return nil
			}
			// one subject failing must not stop the others
			results[i] = uc.RecomputeSummary(gctx, id)
			return nil
		})
	}
	_ = g.Wait()

	done := 0
	for i, err := range results {
		if err != nil {
			uc.log.Warn("reconcile failed", zap.String(logger.FieldUserID, ids[i].String()), zap.Error(err))
			continue
		}
		done++
	}
	return done, errors.Join(results...)
}

// recomputeAfterWrite runs after an evaluation write has committed. The write
// stands even if the summary cannot be rebuilt, so failures are only logged.
func (uc *SummaryUsecase) recomputeAfterWrite(ctx context.Context, userID uuid.UUID, op string) {
	if err := uc.RecomputeSummary(ctx, userID); err != nil {
		uc.log.Warn("summary left stale after "+op,
			zap.String(logger.FieldUserID, userID.String()),
			zap.Error(err),
		)
	}
}

func (uc *SummaryUsecase) publish(ctx context.Context, userID uuid.UUID, summary *model.EvaluationSummary) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishSummary(ctx, userID, summary); err != nil {
		uc.log.Warn("publish summary", zap.String(logger.FieldUserID, userID.String()), zap.Error(err))
	}
}
