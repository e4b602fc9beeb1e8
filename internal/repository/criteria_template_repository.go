package repository

import (
	"context"

	"github.com/fadilmartias/mentor-eval/internal/apperr"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CriteriaTemplateRepository struct {
	db *gorm.DB
}

func NewCriteriaTemplateRepository(db *gorm.DB) *CriteriaTemplateRepository {
	return &CriteriaTemplateRepository{db}
}

func (r *CriteriaTemplateRepository) CreateTemplate(ctx context.Context, template *model.CriteriaTemplate) error {
	return apperr.Store("create criteria template", r.db.WithContext(ctx).Create(template).Error)
}

func (r *CriteriaTemplateRepository) FindTemplateByID(ctx context.Context, id uuid.UUID) (*model.CriteriaTemplate, error) {
	var t model.CriteriaTemplate
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, apperr.Store("find criteria template", err)
	}
	return &t, nil
}

// LatestVersion returns the highest version stored under name, 0 if none.
func (r *CriteriaTemplateRepository) LatestVersion(ctx context.Context, name string) (int, error) {
	var version int
	err := r.db.WithContext(ctx).
		Model(&model.CriteriaTemplate{}).
		Where("name = ?", name).
		Select("COALESCE(MAX(version), 0)").
		Scan(&version).Error
	return version, apperr.Store("latest criteria template version", err)
}

// ListTemplates lists templates by stage and version. An empty stage matches all.
func (r *CriteriaTemplateRepository) ListTemplates(ctx context.Context, stage model.Stage, activeOnly bool) ([]model.CriteriaTemplate, error) {
	q := r.db.WithContext(ctx).Model(&model.CriteriaTemplate{})
	if stage != "" {
		q = q.Where("stage = ?", stage)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var templates []model.CriteriaTemplate
	err := q.Order("name").Order("version DESC").Find(&templates).Error
	return templates, apperr.Store("list criteria templates", err)
}
