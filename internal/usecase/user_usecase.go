package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/mentor-eval/internal/dto"
	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/fadilmartias/mentor-eval/internal/repository"
	"github.com/fadilmartias/mentor-eval/internal/util"
	"github.com/google/uuid"
)

// UserUsecase manages the profiles evaluations point at, and job postings.
type UserUsecase struct {
	userRepo *repository.UserRepository
	jobRepo  *repository.JobRepository
}

func NewUserUsecase(userRepo *repository.UserRepository, jobRepo *repository.JobRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, jobRepo: jobRepo}
}

func (uc *UserUsecase) CreateUser(ctx context.Context, input dto.UserInput) (*model.User, error) {
	errs := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "name is required"
	}
	if !strings.Contains(input.Email, "@") {
		errs["email"] = "a valid email is required"
	}
	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = model.RoleApplicant
	}
	switch role {
	case model.RoleApplicant, model.RoleMentor, model.RoleAdmin:
	default:
		errs["role"] = "role must be applicant, mentor or admin"
	}
	if len(errs) > 0 {
		return nil, util.NewFormError("invalid user", errs)
	}

	user := &model.User{
		Name:  strings.TrimSpace(input.Name),
		Email: strings.ToLower(strings.TrimSpace(input.Email)),
		Phone: strings.TrimSpace(input.Phone),
		Role:  role,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser returns the profile including its cached evaluation summary.
func (uc *UserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return uc.userRepo.FindUserByID(ctx, id)
}

func (uc *UserUsecase) CreateJobPosting(ctx context.Context, input dto.JobPostingInput) (*model.JobPosting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, util.NewFormError("invalid job posting", map[string]string{"title": "title is required"})
	}
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = "open"
	}
	job := &model.JobPosting{
		Title:   strings.TrimSpace(input.Title),
		Content: input.Content,
		Status:  status,
	}
	if err := uc.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (uc *UserUsecase) GetJobPosting(ctx context.Context, id uuid.UUID) (*model.JobPosting, error) {
	return uc.jobRepo.FindJobByID(ctx, id)
}

func (uc *UserUsecase) ListJobPostings(ctx context.Context) ([]model.JobPosting, error) {
	return uc.jobRepo.GetJobs(ctx)
}
