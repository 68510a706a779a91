package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) FetchByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Company, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Search(ctx context.Context, keyword string) ([]domain.Job, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) FetchByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]domain.Job, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) DeleteByCompanyID(ctx context.Context, companyID primitive.ObjectID) error {
	return m.Called(ctx, companyID).Error(0)
}

func TestRegisterCompany(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	t.Run("Should persist a company owned by the caller", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockCompanies, new(MockJobRepo), new(MockUploader))

		mockCompanies.On("GetByName", ctx, "Acme").Return(nil, domain.ErrCompanyNotFound)
		mockCompanies.On("Create", ctx, mock.AnythingOfType("*domain.Company")).Return(nil)

		company, err := uc.RegisterCompany(ctx, owner.Hex(), "Acme")

		assert.NoError(t, err)
		assert.Equal(t, "Acme", company.Name)
		assert.Equal(t, owner, company.OwnerID)
	})

	t.Run("Should reject a duplicate name with a conflict", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockCompanies, new(MockJobRepo), new(MockUploader))

		mockCompanies.On("GetByName", ctx, "Acme").Return(&domain.Company{Name: "Acme"}, nil)

		_, err := uc.RegisterCompany(ctx, owner.Hex(), "Acme")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		mockCompanies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should require a name", func(t *testing.T) {
		uc := usecase.NewCompanyUsecase(new(MockCompanyRepo), new(MockJobRepo), new(MockUploader))

		_, err := uc.RegisterCompany(ctx, owner.Hex(), "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}

func TestUpdateCompany(t *testing.T) {
	ctx := context.Background()

	seedCompany := func() *domain.Company {
		return &domain.Company{
			ID:          primitive.NewObjectID(),
			Name:        "Acme",
			Description: "old description",
			Location:    "Pune",
			OwnerID:     primitive.NewObjectID(),
		}
	}

	t.Run("Should merge only the provided fields", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockCompanies, new(MockJobRepo), new(MockUploader))
		company := seedCompany()

		mockCompanies.On("GetByID", ctx, company.ID).Return(company, nil)
		mockCompanies.On("Update", ctx, mock.AnythingOfType("*domain.Company")).Return(nil)

		updated, err := uc.UpdateCompany(ctx, company.ID.Hex(), domain.CompanyUpdateInput{Website: "https://acme.example.com"})

		assert.NoError(t, err)
		assert.Equal(t, "https://acme.example.com", updated.Website)
		assert.Equal(t, "Acme", updated.Name)
		assert.Equal(t, "Pune", updated.Location)
	})

	t.Run("Should upload the logo before persisting", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepo)
		mockUploader := new(MockUploader)
		uc := usecase.NewCompanyUsecase(mockCompanies, new(MockJobRepo), mockUploader)
		company := seedCompany()
		logo := &domain.FileUpload{OriginalName: "logo.png", Data: []byte{0x89, 0x50}}

		mockCompanies.On("GetByID", ctx, company.ID).Return(company, nil)
		mockUploader.On("Upload", ctx, "logo.png", logo.Data).Return("https://cdn.example.com/logo.png", nil)
		mockCompanies.On("Update", ctx, mock.AnythingOfType("*domain.Company")).Return(nil)

		updated, err := uc.UpdateCompany(ctx, company.ID.Hex(), domain.CompanyUpdateInput{Logo: logo})

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/logo.png", updated.LogoURL)
	})

	t.Run("Should return not found for an unknown company", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(mockCompanies, new(MockJobRepo), new(MockUploader))
		gone := primitive.NewObjectID()

		mockCompanies.On("GetByID", ctx, gone).Return(nil, domain.ErrCompanyNotFound)

		_, err := uc.UpdateCompany(ctx, gone.Hex(), domain.CompanyUpdateInput{Name: "x"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestDeleteCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete the company and cascade to its jobs", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCompanyUsecase(mockCompanies, mockJobs, new(MockUploader))
		company := &domain.Company{ID: primitive.NewObjectID(), Name: "Acme"}

		mockCompanies.On("GetByID", ctx, company.ID).Return(company, nil)
		mockJobs.On("DeleteByCompanyID", ctx, company.ID).Return(nil)
		mockCompanies.On("Delete", ctx, company.ID).Return(nil)

		err := uc.DeleteCompany(ctx, company.ID.Hex())

		assert.NoError(t, err)
		mockJobs.AssertExpectations(t)
		mockCompanies.AssertExpectations(t)
	})

	t.Run("Should return not found without touching jobs", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewCompanyUsecase(mockCompanies, mockJobs, new(MockUploader))
		gone := primitive.NewObjectID()

		mockCompanies.On("GetByID", ctx, gone).Return(nil, domain.ErrCompanyNotFound)

		err := uc.DeleteCompany(ctx, gone.Hex())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		mockJobs.AssertNotCalled(t, "DeleteByCompanyID", mock.Anything, mock.Anything)
	})
}
