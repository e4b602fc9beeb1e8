// Package repotest provides an in-memory database and seed helpers for tests.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/fadilmartias/mentor-eval/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a private, migrated in-memory sqlite database for tb.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("test db handle: %v", err)
	}
	// one connection keeps the in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := repository.AutoMigrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

func SeedUser(tb testing.TB, db *gorm.DB, name string) *model.User {
	tb.Helper()
	u := &model.User{
		Name:  name,
		Email: uuid.NewString() + "@example.com",
		Role:  model.RoleMentor,
	}
	if err := db.WithContext(context.Background()).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedJobPosting(tb testing.TB, db *gorm.DB, title string) *model.JobPosting {
	tb.Helper()
	j := &model.JobPosting{Title: title, Status: "open"}
	if err := db.WithContext(context.Background()).Create(j).Error; err != nil {
		tb.Fatalf("seed job posting: %v", err)
	}
	return j
}

// SeedTemplate stores a template with one criterion per id, each with max score 10.
func SeedTemplate(tb testing.TB, db *gorm.DB, stage model.Stage, criterionIDs ...string) *model.CriteriaTemplate {
	tb.Helper()
	criteria := make([]model.Criterion, 0, len(criterionIDs))
	for i, id := range criterionIDs {
		criteria = append(criteria, model.Criterion{ID: id, Name: id, MaxScore: 10, Order: i + 1})
	}
	t := &model.CriteriaTemplate{
		Name:     string(stage) + " " + uuid.NewString()[:8],
		Version:  1,
		Stage:    stage,
		Criteria: datatypes.NewJSONType(criteria),
		IsActive: true,
	}
	if err := db.WithContext(context.Background()).Create(t).Error; err != nil {
		tb.Fatalf("seed criteria template: %v", err)
	}
	return t
}

// SeedEvaluation stores an evaluation with the given total score directly,
// bypassing validation and summary recomputation.
func SeedEvaluation(tb testing.TB, db *gorm.DB, userID uuid.UUID, stage model.Stage, total float64, at time.Time) *model.Evaluation {
	tb.Helper()
	e := &model.Evaluation{
		UserID:         userID,
		TemplateID:     uuid.New(),
		Stage:          stage,
		CriteriaScores: datatypes.NewJSONType(model.CriteriaScores{"overall": {Score: total, MaxScore: 10}}),
		TotalScore:     total,
		Percentage:     total * 10,
		Feedback:       "seeded",
		EvaluatorID:    "seed",
		EvaluationDate: at.UTC(),
	}
	if err := db.WithContext(context.Background()).Create(e).Error; err != nil {
		tb.Fatalf("seed evaluation: %v", err)
	}
	return e
}
