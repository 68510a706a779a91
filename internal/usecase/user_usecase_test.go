package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/hash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByAadhaar(ctx context.Context, aadhaar string) (*domain.User, error) {
	args := m.Called(ctx, aadhaar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByPAN(ctx context.Context, pan string) (*domain.User, error) {
	args := m.Called(ctx, pan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, originalName string, data []byte) (string, error) {
	args := m.Called(ctx, originalName, data)
	return args.String(0), args.Error(1)
}

func newTokenManager(t *testing.T) *auth.JWTManager {
	t.Helper()
	mgr, err := auth.NewJWTManager("test-secret", 24*time.Hour)
	assert.NoError(t, err)
	return mgr
}

func validRegisterInput() domain.RegisterInput {
	return domain.RegisterInput{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		PhoneNumber:   "9876543210",
		Password:      "password123",
		AadhaarNumber: "111122223333",
		PANNumber:     "ABCDE1234F",
		Role:          domain.RoleJobSeeker,
		Photo:         &domain.FileUpload{OriginalName: "photo.png", Data: []byte{0x89, 0x50}},
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create user with hashed password and empty skills", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockUploader := new(MockUploader)
		uc := usecase.NewUserUsecase(mockRepo, mockUploader, newTokenManager(t))
		input := validRegisterInput()

		mockRepo.On("GetByAadhaar", ctx, input.AadhaarNumber).Return(nil, domain.ErrUserNotFound)
		mockRepo.On("GetByPAN", ctx, input.PANNumber).Return(nil, domain.ErrUserNotFound)
		mockRepo.On("GetByEmail", ctx, input.Email).Return(nil, domain.ErrUserNotFound)
		mockUploader.On("Upload", ctx, "photo.png", input.Photo.Data).Return("https://cdn.example.com/photo.png", nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			created := args.Get(1).(*domain.User)
			assert.NotEqual(t, input.Password, created.Password)
			assert.True(t, hash.CheckPasswordHash(input.Password, created.Password))
			assert.Equal(t, []string{}, created.Profile.Skills)
			assert.Equal(t, "https://cdn.example.com/photo.png", created.Profile.PhotoURL)
		})

		user, err := uc.Register(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, user)
		mockRepo.AssertExpectations(t)
		mockUploader.AssertExpectations(t)
	})

	t.Run("Should report aadhaar conflict first and probe nothing else", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockUploader := new(MockUploader)
		uc := usecase.NewUserUsecase(mockRepo, mockUploader, newTokenManager(t))
		input := validRegisterInput()

		existing := &domain.User{ID: primitive.NewObjectID()}
		mockRepo.On("GetByAadhaar", ctx, input.AadhaarNumber).Return(existing, nil)

		_, err := uc.Register(ctx, input)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		assert.Contains(t, err.Error(), "Aadhaar")
		mockRepo.AssertNotCalled(t, "GetByPAN", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockUploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should report email conflict without creating a record", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockUploader := new(MockUploader)
		uc := usecase.NewUserUsecase(mockRepo, mockUploader, newTokenManager(t))
		input := validRegisterInput()

		mockRepo.On("GetByAadhaar", ctx, input.AadhaarNumber).Return(nil, domain.ErrUserNotFound)
		mockRepo.On("GetByPAN", ctx, input.PANNumber).Return(nil, domain.ErrUserNotFound)
		mockRepo.On("GetByEmail", ctx, input.Email).Return(&domain.User{}, nil)

		_, err := uc.Register(ctx, input)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should fail fatally when the photo upload fails", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockUploader := new(MockUploader)
		uc := usecase.NewUserUsecase(mockRepo, mockUploader, newTokenManager(t))
		input := validRegisterInput()

		mockRepo.On("GetByAadhaar", ctx, input.AadhaarNumber).Return(nil, domain.ErrUserNotFound)
		mockRepo.On("GetByPAN", ctx, input.PANNumber).Return(nil, domain.ErrUserNotFound)
		mockRepo.On("GetByEmail", ctx, input.Email).Return(nil, domain.ErrUserNotFound)
		mockUploader.On("Upload", ctx, "photo.png", input.Photo.Data).Return("", errors.New("bucket unavailable"))

		_, err := uc.Register(ctx, input)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, statusOf(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a missing photo", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, new(MockUploader), newTokenManager(t))
		input := validRegisterInput()
		input.Photo = nil

		_, err := uc.Register(ctx, input)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	seedUser := func(t *testing.T, password string, role domain.Role) *domain.User {
		digest, err := hash.HashPassword(password)
		assert.NoError(t, err)
		return &domain.User{
			ID:       primitive.NewObjectID(),
			FullName: "Asha Rao",
			Email:    "asha@example.com",
			Password: digest,
			Role:     role,
		}
	}

	t.Run("Should issue a verifiable token on success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := newTokenManager(t)
		uc := usecase.NewUserUsecase(mockRepo, new(MockUploader), tokens)
		user := seedUser(t, "password123", domain.RoleJobSeeker)

		mockRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

		token, loggedIn, err := uc.Login(ctx, user.Email, "password123", domain.RoleJobSeeker)

		assert.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)

		claims, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
	})

	t.Run("Unknown email and wrong password must be indistinguishable", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, new(MockUploader), newTokenManager(t))
		user := seedUser(t, "password123", domain.RoleJobSeeker)

		mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrUserNotFound)
		mockRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

		_, _, errUnknown := uc.Login(ctx, "ghost@example.com", "password123", domain.RoleJobSeeker)
		_, _, errWrongPass := uc.Login(ctx, user.Email, "nope", domain.RoleJobSeeker)

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, errUnknown))
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, errWrongPass))
	})

	t.Run("Should reject a role mismatch with a distinct denial", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, new(MockUploader), newTokenManager(t))
		user := seedUser(t, "password123", domain.RoleJobSeeker)

		mockRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

		token, _, err := uc.Login(ctx, user.Email, "password123", domain.RoleRecruiter)

		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		assert.NotContains(t, err.Error(), "password")
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	seedUser := func() *domain.User {
		return &domain.User{
			ID:            primitive.NewObjectID(),
			FullName:      "Asha Rao",
			Email:         "asha@example.com",
			PhoneNumber:   "9876543210",
			AadhaarNumber: "111122223333",
			PANNumber:     "ABCDE1234F",
			Role:          domain.RoleJobSeeker,
			Profile: domain.Profile{
				Bio:    "old bio",
				Skills: []string{"python"},
			},
		}
	}

	t.Run("Should merge only the fields present in the payload", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, new(MockUploader), newTokenManager(t))
		user := seedUser()

		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		updated, err := uc.UpdateProfile(ctx, user.ID.Hex(), domain.ProfileUpdateInput{Bio: "new bio"})

		assert.NoError(t, err)
		assert.Equal(t, "new bio", updated.Profile.Bio)
		assert.Equal(t, "Asha Rao", updated.FullName)
		assert.Equal(t, "asha@example.com", updated.Email)
		assert.Equal(t, []string{"python"}, updated.Profile.Skills)
	})

	t.Run("Should split skills into trimmed tokens replacing the old list", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, new(MockUploader), newTokenManager(t))
		user := seedUser()

		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		updated, err := uc.UpdateProfile(ctx, user.ID.Hex(), domain.ProfileUpdateInput{Skills: "go, rust , c++"})

		assert.NoError(t, err)
		assert.Equal(t, []string{"go", "rust", "c++"}, updated.Profile.Skills)
	})

	t.Run("Should set resume fields only after a successful upload", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockUploader := new(MockUploader)
		uc := usecase.NewUserUsecase(mockRepo, mockUploader, newTokenManager(t))
		user := seedUser()
		resume := &domain.FileUpload{OriginalName: "cv.pdf", Data: []byte("%PDF")}

		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil)
		mockUploader.On("Upload", ctx, "cv.pdf", resume.Data).Return("https://cdn.example.com/cv.pdf", nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		updated, err := uc.UpdateProfile(ctx, user.ID.Hex(), domain.ProfileUpdateInput{Resume: resume})

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/cv.pdf", updated.Profile.ResumeURL)
		assert.Equal(t, "cv.pdf", updated.Profile.ResumeOriginalName)
	})

	t.Run("Should not persist anything when the resume upload fails", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockUploader := new(MockUploader)
		uc := usecase.NewUserUsecase(mockRepo, mockUploader, newTokenManager(t))
		user := seedUser()
		resume := &domain.FileUpload{OriginalName: "cv.pdf", Data: []byte("%PDF")}

		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil)
		mockUploader.On("Upload", ctx, "cv.pdf", resume.Data).Return("", errors.New("bucket unavailable"))

		_, err := uc.UpdateProfile(ctx, user.ID.Hex(), domain.ProfileUpdateInput{Resume: resume})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, statusOf(t, err))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should return not found when the session user vanished", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, new(MockUploader), newTokenManager(t))
		gone := primitive.NewObjectID()

		mockRepo.On("GetByID", ctx, gone).Return(nil, domain.ErrUserNotFound)

		_, err := uc.UpdateProfile(ctx, gone.Hex(), domain.ProfileUpdateInput{Bio: "x"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}
