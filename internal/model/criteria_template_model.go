package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Criterion is a single scoring dimension of a template.
type Criterion struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description"`
	MaxScore    float64 `json:"maxScore" yaml:"max_score"`
	// Weight is displayed by the dashboard only; scoring ignores it.
	Weight float64 `json:"weight,omitempty" yaml:"weight"`
	Order  int     `json:"order" yaml:"order"`
}

type CriteriaTemplate struct {
	ID          uuid.UUID                       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                          `gorm:"type:varchar(255);not null;uniqueIndex:idx_template_name_version" json:"name"`
	Version     int                             `gorm:"not null;uniqueIndex:idx_template_name_version" json:"version"`
	Stage       Stage                           `gorm:"type:varchar(50);not null;index" json:"stage"`
	Description string                          `gorm:"type:text" json:"description"`
	Criteria    datatypes.JSONType[[]Criterion] `json:"criteria"`
	IsActive    bool                            `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time                       `json:"created_at"`
	UpdatedAt   time.Time                       `json:"updated_at"`
}

func (t *CriteriaTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Criterion looks up a criterion by id.
func (t *CriteriaTemplate) Criterion(id string) (Criterion, bool) {
	for _, c := range t.Criteria.Data() {
		if c.ID == id {
			return c, true
		}
	}
	return Criterion{}, false
}
