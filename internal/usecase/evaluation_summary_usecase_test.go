package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fadilmartias/mentor-eval/internal/apperr"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var evaluatedAt = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

func stored(userID uuid.UUID, stage model.Stage, total float64) model.Evaluation {
	return model.Evaluation{ID: uuid.New(), UserID: userID, Stage: stage, TotalScore: total, EvaluationDate: evaluatedAt}
}

func TestRecomputeSummarySavesAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSummaryStore(ctrl)
	publisher := NewMockSummaryPublisher(ctrl)
	ctx := context.Background()
	userID := uuid.New()

	store.EXPECT().ListEvaluationsBySubject(ctx, userID).Return([]model.Evaluation{
		stored(userID, model.StageDocumentReview, 8),
		stored(userID, model.StageDocumentReview, 6),
		stored(userID, model.StageInterview, 10),
	}, nil)

	var saved model.EvaluationSummary
	store.EXPECT().SaveSummary(ctx, userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, summary model.EvaluationSummary) error {
			saved = summary
			return nil
		})
	publisher.EXPECT().PublishSummary(ctx, userID, gomock.Not(gomock.Nil())).Return(nil)

	uc := NewSummaryUsecase(store, publisher, zap.NewNop())
	require.NoError(t, uc.RecomputeSummary(ctx, userID))

	require.NotNil(t, saved.DocumentReview)
	assert.Equal(t, 7.0, saved.DocumentReview.AverageScore)
	assert.Equal(t, 10.0, saved.Interview.AverageScore)
	assert.Equal(t, 8.0, saved.OverallAverage)
	assert.Equal(t, 3, saved.TotalEvaluations)
}

func TestRecomputeSummaryClearsWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSummaryStore(ctrl)
	publisher := NewMockSummaryPublisher(ctrl)
	ctx := context.Background()
	userID := uuid.New()

	store.EXPECT().ListEvaluationsBySubject(ctx, userID).Return(nil, nil)
	store.EXPECT().ClearSummary(ctx, userID).Return(nil)
	store.EXPECT().SaveSummary(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	publisher.EXPECT().PublishSummary(ctx, userID, gomock.Nil()).Return(nil)

	uc := NewSummaryUsecase(store, publisher, nil)
	require.NoError(t, uc.RecomputeSummary(ctx, userID))
}

func TestRecomputeSummaryStoreFailures(t *testing.T) {
	boom := apperr.Store("query", errors.New("connection refused"))

	tests := []struct {
		name   string
		expect func(store *MockSummaryStore, userID uuid.UUID)
	}{
		{
			name: "read fails",
			expect: func(store *MockSummaryStore, userID uuid.UUID) {
				store.EXPECT().ListEvaluationsBySubject(gomock.Any(), userID).Return(nil, boom)
			},
		},
		{
			name: "save fails",
			expect: func(store *MockSummaryStore, userID uuid.UUID) {
				store.EXPECT().ListEvaluationsBySubject(gomock.Any(), userID).
					Return([]model.Evaluation{stored(userID, model.StageInterview, 4)}, nil)
				store.EXPECT().SaveSummary(gomock.Any(), userID, gomock.Any()).Return(boom)
			},
		},
		{
			name: "clear fails",
			expect: func(store *MockSummaryStore, userID uuid.UUID) {
				store.EXPECT().ListEvaluationsBySubject(gomock.Any(), userID).Return([]model.Evaluation{}, nil)
				store.EXPECT().ClearSummary(gomock.Any(), userID).Return(boom)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockSummaryStore(ctrl)
			userID := uuid.New()
			tt.expect(store, userID)

			// no publisher expectations: nothing is announced on failure
			uc := NewSummaryUsecase(store, NewMockSummaryPublisher(ctrl), nil)
			err := uc.RecomputeSummary(context.Background(), userID)

			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrAggregationFailed)
			assert.ErrorIs(t, err, apperr.ErrStoreFailure)
			assert.Contains(t, err.Error(), userID.String())
		})
	}
}

func TestRecomputeSummaryPublishFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSummaryStore(ctrl)
	publisher := NewMockSummaryPublisher(ctrl)
	core, observed := observer.New(zapcore.WarnLevel)
	userID := uuid.New()

	store.EXPECT().ListEvaluationsBySubject(gomock.Any(), userID).
		Return([]model.Evaluation{stored(userID, model.StageCampParticipation, 9)}, nil)
	store.EXPECT().SaveSummary(gomock.Any(), userID, gomock.Any()).Return(nil)
	publisher.EXPECT().PublishSummary(gomock.Any(), userID, gomock.Any()).Return(errors.New("redis down"))

	uc := NewSummaryUsecase(store, publisher, zap.New(core))
	require.NoError(t, uc.RecomputeSummary(context.Background(), userID))

	entries := observed.FilterMessage("publish summary").All()
	require.Len(t, entries, 1)
	assert.Equal(t, userID.String(), entries[0].ContextMap()["user_id"])
}

func TestReconcileContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSummaryStore(ctrl)
	core, observed := observer.New(zapcore.WarnLevel)

	ok1, ok2, broken := uuid.New(), uuid.New(), uuid.New()
	store.EXPECT().ListSubjectIDs(gomock.Any()).Return([]uuid.UUID{ok1, broken, ok2}, nil)

	for _, id := range []uuid.UUID{ok1, ok2} {
		store.EXPECT().ListEvaluationsBySubject(gomock.Any(), id).
			Return([]model.Evaluation{stored(id, model.StageInterview, 5)}, nil)
		store.EXPECT().SaveSummary(gomock.Any(), id, gomock.Any()).Return(nil)
	}
	store.EXPECT().ListEvaluationsBySubject(gomock.Any(), broken).
		Return(nil, apperr.Store("query", errors.New("timeout")))

	uc := NewSummaryUsecase(store, nil, zap.New(core))
	done, err := uc.Reconcile(context.Background(), 2)

	assert.Equal(t, 2, done)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrAggregationFailed)
	assert.Len(t, observed.FilterMessage("reconcile failed").All(), 1)
}

func TestReconcileListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSummaryStore(ctrl)
	store.EXPECT().ListSubjectIDs(gomock.Any()).Return(nil, errors.New("boom"))

	done, err := NewSummaryUsecase(store, nil, nil).Reconcile(context.Background(), 0)
	assert.Zero(t, done)
	assert.Error(t, err)
}
