package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

func (u *jobUsecase) PostJob(ctx context.Context, creatorID string, input domain.PostJobInput) (*domain.Job, error) {
	creator, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	// Business Validation
	if input.Salary <= 0 {
		return nil, apperror.BadRequest("Salary must be greater than zero")
	}
	requirements := splitDelimited(input.Requirements)
	if len(requirements) == 0 {
		return nil, apperror.BadRequest("At least one requirement is needed")
	}

	companyID, err := primitive.ObjectIDFromHex(input.CompanyID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid company id")
	}
	if _, err := u.companyRepo.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	job := &domain.Job{
		Title:           input.Title,
		Description:     input.Description,
		Requirements:    requirements,
		Salary:          input.Salary,
		Location:        input.Location,
		JobType:         input.JobType,
		ExperienceYears: input.ExperienceYears,
		Position:        input.Position,
		CompanyID:       companyID,
		CreatedBy:       creator,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) SearchJobs(ctx context.Context, keyword string) ([]domain.Job, error) {
	jobs, err := u.jobRepo.Search(ctx, keyword)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) GetJobByID(ctx context.Context, id string) (*domain.Job, error) {
	jobID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobsByCreator(ctx context.Context, creatorID string) ([]domain.Job, error) {
	creator, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	jobs, err := u.jobRepo.FetchByCreator(ctx, creator)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
