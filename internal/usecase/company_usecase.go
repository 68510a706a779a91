package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	jobRepo     domain.JobRepository
	uploader    domain.FileUploader
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, jobRepo domain.JobRepository, uploader domain.FileUploader) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		uploader:    uploader,
	}
}

func (u *companyUsecase) RegisterCompany(ctx context.Context, ownerID, name string) (*domain.Company, error) {
	if name == "" {
		return nil, apperror.BadRequest("Company name is required")
	}

	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	_, err = u.companyRepo.GetByName(ctx, name)
	if err == nil {
		return nil, apperror.Conflict("Company already exists")
	}
	if !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	company := &domain.Company{
		Name:      name,
		OwnerID:   owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicateCompanyName) {
			return nil, apperror.Conflict("Company already exists")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (u *companyUsecase) ListOwnedCompanies(ctx context.Context, ownerID string) ([]domain.Company, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	companies, err := u.companyRepo.FetchByOwner(ctx, owner)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return companies, nil
}

func (u *companyUsecase) GetCompanyByID(ctx context.Context, id string) (*domain.Company, error) {
	companyID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

// UpdateCompany merges present fields into the stored document; a new logo is
// uploaded before anything is persisted.
func (u *companyUsecase) UpdateCompany(ctx context.Context, id string, input domain.CompanyUpdateInput) (*domain.Company, error) {
	company, err := u.GetCompanyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *company
	if input.Name != "" {
		updated.Name = input.Name
	}
	if input.Description != "" {
		updated.Description = input.Description
	}
	if input.Website != "" {
		updated.Website = input.Website
	}
	if input.Location != "" {
		updated.Location = input.Location
	}

	if input.Logo != nil && len(input.Logo.Data) > 0 {
		logoURL, err := u.uploader.Upload(ctx, input.Logo.OriginalName, input.Logo.Data)
		if err != nil {
			logger.Log.Error("company logo upload failed", "company_id", id, "error", err)
			return nil, apperror.UploadFailed(err)
		}
		updated.LogoURL = logoURL
	}

	updated.UpdatedAt = time.Now()

	if err := u.companyRepo.Update(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, domain.ErrCompanyNotFound):
			return nil, apperror.NotFound("Company not found")
		case errors.Is(err, domain.ErrDuplicateCompanyName):
			return nil, apperror.Conflict("Company already exists")
		default:
			return nil, apperror.Internal(err)
		}
	}
	return &updated, nil
}

// DeleteCompany removes the company and every job posted under it.
func (u *companyUsecase) DeleteCompany(ctx context.Context, id string) error {
	company, err := u.GetCompanyByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.jobRepo.DeleteByCompanyID(ctx, company.ID); err != nil {
		return apperror.Internal(err)
	}

	if err := u.companyRepo.Delete(ctx, company.ID); err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
