package repository

import (
	"github.com/fadilmartias/mentor-eval/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.JobPosting{},
		&model.CriteriaTemplate{},
		&model.Evaluation{},
		&model.EvaluationSummaryRecord{},
	)
}
