package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/mentor-eval/internal/apperr"
	"github.com/fadilmartias/mentor-eval/internal/dto"
	"github.com/fadilmartias/mentor-eval/internal/logger"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/fadilmartias/mentor-eval/internal/repository"
	"github.com/fadilmartias/mentor-eval/internal/scoring"
	"github.com/fadilmartias/mentor-eval/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type EvaluationUsecase struct {
	evaluationRepo *repository.EvaluationRepository
	templateRepo   *repository.CriteriaTemplateRepository
	userRepo       *repository.UserRepository
	jobRepo        *repository.JobRepository
	summary        *SummaryUsecase
	log            *zap.Logger
	now            func() time.Time
}

func NewEvaluationUsecase(
	evaluationRepo *repository.EvaluationRepository,
	templateRepo *repository.CriteriaTemplateRepository,
	userRepo *repository.UserRepository,
	jobRepo *repository.JobRepository,
	summary *SummaryUsecase,
	log *zap.Logger,
) *EvaluationUsecase {
	return &EvaluationUsecase{
		evaluationRepo: evaluationRepo,
		templateRepo:   templateRepo,
		userRepo:       userRepo,
		jobRepo:        jobRepo,
		summary:        summary,
		log:            logger.Component(log, "evaluation"),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// CreateEvaluation validates and stores a new evaluation, then recomputes the
// user's summary. The stage comes from the template.
func (uc *EvaluationUsecase) CreateEvaluation(ctx context.Context, form dto.EvaluationForm, evaluator model.Evaluator) (uuid.UUID, error) {
	errs := map[string]string{}
	if form.UserID == uuid.Nil {
		errs["user_id"] = "user_id is required"
	}
	if form.TemplateID == uuid.Nil {
		errs["template_id"] = "template_id is required"
	}
	if strings.TrimSpace(form.Feedback) == "" {
		errs["feedback"] = "feedback is required"
	}
	if strings.TrimSpace(evaluator.ID) == "" {
		errs["evaluator_id"] = "evaluator is required"
	}
	if len(errs) > 0 {
		return uuid.Nil, util.NewFormError("invalid evaluation", errs)
	}

	template, err := uc.templateRepo.FindTemplateByID(ctx, form.TemplateID)
	if err != nil {
		return uuid.Nil, err
	}
	if !template.IsActive {
		return uuid.Nil, util.NewFormError("invalid evaluation", map[string]string{
			"template_id": "template is inactive",
		})
	}

	scores, err := buildScores(template, nil, form.Scores)
	if err != nil {
		return uuid.Nil, err
	}

	if err := uc.requireUser(ctx, form.UserID); err != nil {
		return uuid.Nil, err
	}
	if form.JobPostingID != nil {
		if _, err := uc.jobRepo.FindJobByID(ctx, *form.JobPostingID); err != nil {
			return uuid.Nil, err
		}
	}

	evaluationDate := uc.now()
	if form.EvaluationDate != nil && !form.EvaluationDate.IsZero() {
		evaluationDate = form.EvaluationDate.UTC()
	}

	total, percentage := scoring.RecordScore(scores)
	evaluation := model.Evaluation{
		UserID:         form.UserID,
		ApplicationID:  form.ApplicationID,
		JobPostingID:   form.JobPostingID,
		TemplateID:     template.ID,
		Stage:          template.Stage,
		CriteriaScores: datatypes.NewJSONType(scores),
		TotalScore:     total,
		Percentage:     percentage,
		Feedback:       strings.TrimSpace(form.Feedback),
		EvaluatorID:    evaluator.ID,
		EvaluatorName:  evaluator.Name,
		EvaluatorRole:  evaluator.Role,
		EvaluationDate: evaluationDate,
	}
	if err := uc.evaluationRepo.CreateEvaluation(ctx, &evaluation); err != nil {
		return uuid.Nil, err
	}

	uc.log.Info("evaluation created",
		zap.String(logger.FieldEvaluationID, evaluation.ID.String()),
		zap.String(logger.FieldUserID, evaluation.UserID.String()),
		zap.String(logger.FieldStage, string(evaluation.Stage)),
		zap.String(logger.FieldEvaluatorID, evaluator.ID),
	)
	uc.summary.recomputeAfterWrite(ctx, evaluation.UserID, "create")
	return evaluation.ID, nil
}

// UpdateEvaluation applies patch to an evaluation and recomputes the user's
// summary. The user and stage of an evaluation never change.
func (uc *EvaluationUsecase) UpdateEvaluation(ctx context.Context, id uuid.UUID, patch dto.EvaluationPatch, evaluator model.Evaluator) error {
	if patch.Empty() {
		return util.NewFormError("nothing to update", map[string]string{})
	}
	if patch.Feedback != nil && strings.TrimSpace(*patch.Feedback) == "" {
		return util.NewFormError("invalid evaluation", map[string]string{"feedback": "feedback is required"})
	}

	evaluation, err := uc.evaluationRepo.FindEvaluationByID(ctx, id)
	if err != nil {
		return err
	}

	if patch.Scores != nil {
		template, err := uc.templateRepo.FindTemplateByID(ctx, evaluation.TemplateID)
		if err != nil {
			return err
		}
		scores, err := buildScores(template, evaluation.CriteriaScores.Data(), patch.Scores)
		if err != nil {
			return err
		}
		evaluation.CriteriaScores = datatypes.NewJSONType(scores)
		evaluation.TotalScore, evaluation.Percentage = scoring.RecordScore(scores)
	}
	if patch.Feedback != nil {
		evaluation.Feedback = strings.TrimSpace(*patch.Feedback)
	}
	if patch.SetApplicationID {
		evaluation.ApplicationID = patch.ApplicationID
	}
	if patch.SetJobPostingID {
		if patch.JobPostingID != nil {
			if _, err := uc.jobRepo.FindJobByID(ctx, *patch.JobPostingID); err != nil {
				return err
			}
		}
		evaluation.JobPostingID = patch.JobPostingID
	}
	if patch.EvaluationDate != nil && !patch.EvaluationDate.IsZero() {
		evaluation.EvaluationDate = patch.EvaluationDate.UTC()
	}

	if err := uc.evaluationRepo.UpdateEvaluation(ctx, evaluation); err != nil {
		return err
	}

	uc.log.Info("evaluation updated",
		zap.String(logger.FieldEvaluationID, evaluation.ID.String()),
		zap.String(logger.FieldUserID, evaluation.UserID.String()),
		zap.String(logger.FieldEvaluatorID, evaluator.ID),
	)
	uc.summary.recomputeAfterWrite(ctx, evaluation.UserID, "update")
	return nil
}

// DeleteEvaluation removes an evaluation and recomputes the user's summary.
func (uc *EvaluationUsecase) DeleteEvaluation(ctx context.Context, id uuid.UUID, evaluator model.Evaluator) error {
	evaluation, err := uc.evaluationRepo.FindEvaluationByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.evaluationRepo.DeleteEvaluation(ctx, id); err != nil {
		return err
	}

	uc.log.Info("evaluation deleted",
		zap.String(logger.FieldEvaluationID, id.String()),
		zap.String(logger.FieldUserID, evaluation.UserID.String()),
		zap.String(logger.FieldEvaluatorID, evaluator.ID),
	)
	uc.summary.recomputeAfterWrite(ctx, evaluation.UserID, "delete")
	return nil
}

func (uc *EvaluationUsecase) GetEvaluation(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	return uc.evaluationRepo.FindEvaluationByID(ctx, id)
}

// GetUserEvaluations lists a user's evaluations, most recent first. An empty
// stage lists every stage; pageSize 0 returns everything.
func (uc *EvaluationUsecase) GetUserEvaluations(ctx context.Context, userID uuid.UUID, stage model.Stage, page, pageSize int) ([]model.Evaluation, int64, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, 0, err
	}

	filter := repository.EvaluationFilter{Stage: stage}
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		filter.Limit = pageSize
		filter.Offset = (page - 1) * pageSize
	}
	return uc.evaluationRepo.ListByUser(ctx, userID, filter)
}

func (uc *EvaluationUsecase) requireUser(ctx context.Context, userID uuid.UUID) error {
	ok, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("user %s", userID)
	}
	return nil
}

// buildScores merges given over current and checks the result against the
// template: every criterion scored, within [0, max], no unknown ids.
func buildScores(template *model.CriteriaTemplate, current model.CriteriaScores, given map[string]float64) (model.CriteriaScores, error) {
	errs := map[string]string{}
	for id := range given {
		if _, ok := template.Criterion(id); !ok {
			errs["scores."+id] = "unknown criterion"
		}
	}

	scores := make(model.CriteriaScores, len(template.Criteria.Data()))
	for _, c := range template.Criteria.Data() {
		score, ok := given[c.ID]
		if !ok {
			prev, had := current[c.ID]
			if !had {
				errs["scores."+c.ID] = "score is required"
				continue
			}
			score = prev.Score
		}
		if score < 0 || score > c.MaxScore {
			errs["scores."+c.ID] = fmt.Sprintf("score must be between 0 and %g", c.MaxScore)
			continue
		}
		scores[c.ID] = model.CriterionScore{Score: score, MaxScore: c.MaxScore}
	}

	if len(errs) > 0 {
		return nil, util.NewFormError("invalid scores", errs)
	}
	return scores, nil
}
