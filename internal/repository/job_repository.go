package repository

import (
	"context"

	"github.com/fadilmartias/mentor-eval/internal/apperr"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) CreateJob(ctx context.Context, job *model.JobPosting) error {
	return apperr.Store("create job posting", r.db.WithContext(ctx).Create(job).Error)
}

func (r *JobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*model.JobPosting, error) {
	var j model.JobPosting
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if err != nil {
		return nil, apperr.Store("find job posting", err)
	}
	return &j, nil
}

func (r *JobRepository) GetJobs(ctx context.Context) ([]model.JobPosting, error) {
	var jobs []model.JobPosting
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error
	return jobs, apperr.Store("list job postings", err)
}
