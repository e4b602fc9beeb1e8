package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fadilmartias/mentor-eval/internal/dto"
	"github.com/fadilmartias/mentor-eval/internal/logger"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/fadilmartias/mentor-eval/internal/repository"
	"github.com/fadilmartias/mentor-eval/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
)

type CriteriaTemplateUsecase struct {
	templateRepo *repository.CriteriaTemplateRepository
	log          *zap.Logger
}

func NewCriteriaTemplateUsecase(templateRepo *repository.CriteriaTemplateRepository, log *zap.Logger) *CriteriaTemplateUsecase {
	return &CriteriaTemplateUsecase{templateRepo: templateRepo, log: logger.Component(log, "criteria_template")}
}

// CreateTemplate stores input as the next version of the template named
// input.Name. Criteria are kept in display order.
func (uc *CriteriaTemplateUsecase) CreateTemplate(ctx context.Context, input dto.CriteriaTemplateInput) (*model.CriteriaTemplate, error) {
	errs := map[string]string{}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		errs["name"] = "name is required"
	}
	stage, err := model.ParseStage(input.Stage)
	if err != nil {
		errs["stage"] = err.Error()
	}
	if len(input.Criteria) == 0 {
		errs["criteria"] = "at least one criterion is required"
	}

	seen := map[string]bool{}
	criteria := make([]model.Criterion, 0, len(input.Criteria))
	for i, c := range input.Criteria {
		c.ID = strings.TrimSpace(c.ID)
		key := fmt.Sprintf("criteria.%d", i)
		switch {
		case c.ID == "":
			errs[key] = "id is required"
		case seen[c.ID]:
			errs[key] = fmt.Sprintf("duplicate criterion %q", c.ID)
		case c.MaxScore <= 0:
			errs[key] = "max score must be positive"
		case c.Weight < 0:
			errs[key] = "weight must not be negative"
		}
		seen[c.ID] = true
		if strings.TrimSpace(c.Name) == "" {
			c.Name = c.ID
		}
		if c.Order == 0 {
			c.Order = i + 1
		}
		criteria = append(criteria, c)
	}
	if len(errs) > 0 {
		return nil, util.NewFormError("invalid criteria template", errs)
	}
	sort.SliceStable(criteria, func(i, j int) bool { return criteria[i].Order < criteria[j].Order })

	latest, err := uc.templateRepo.LatestVersion(ctx, name)
	if err != nil {
		return nil, err
	}

	template := &model.CriteriaTemplate{
		Name:        name,
		Version:     latest + 1,
		Stage:       stage,
		Description: strings.TrimSpace(input.Description),
		Criteria:    datatypes.NewJSONType(criteria),
		IsActive:    !input.Inactive,
	}
	if err := uc.templateRepo.CreateTemplate(ctx, template); err != nil {
		return nil, err
	}

	uc.log.Info("criteria template created",
		zap.String("template", template.Name),
		zap.Int("version", template.Version),
		zap.String(logger.FieldStage, string(template.Stage)),
	)
	return template, nil
}

func (uc *CriteriaTemplateUsecase) GetTemplate(ctx context.Context, id uuid.UUID) (*model.CriteriaTemplate, error) {
	return uc.templateRepo.FindTemplateByID(ctx, id)
}

func (uc *CriteriaTemplateUsecase) ListTemplates(ctx context.Context, stage model.Stage, activeOnly bool) ([]model.CriteriaTemplate, error) {
	return uc.templateRepo.ListTemplates(ctx, stage, activeOnly)
}

// ImportTemplates creates every template listed in a YAML document of the
// form {templates: [...]}. It stops at the first failure and returns what was
// created so far.
func (uc *CriteriaTemplateUsecase) ImportTemplates(ctx context.Context, data []byte) ([]*model.CriteriaTemplate, error) {
	var file dto.CriteriaTemplateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, util.NewFormError("invalid template file", map[string]string{"file": err.Error()})
	}

	created := make([]*model.CriteriaTemplate, 0, len(file.Templates))
	for i, input := range file.Templates {
		template, err := uc.CreateTemplate(ctx, input)
		if err != nil {
			return created, fmt.Errorf("template %d (%s): %w", i, input.Name, err)
		}
		created = append(created, template)
	}
	return created, nil
}
