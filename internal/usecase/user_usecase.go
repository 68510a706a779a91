package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/hash"
	"go-jobboard-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shared by the email and password failure paths so a caller cannot tell
// which of the two was wrong.
const msgBadCredentials = "Incorrect email or password"

type userUsecase struct {
	userRepo domain.UserRepository
	uploader domain.FileUploader
	tokens   *auth.JWTManager
}

func NewUserUsecase(userRepo domain.UserRepository, uploader domain.FileUploader, tokens *auth.JWTManager) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		uploader: uploader,
		tokens:   tokens,
	}
}

func (u *userUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if input.Photo == nil || len(input.Photo.Data) == 0 {
		return nil, apperror.BadRequest("Profile photo is required")
	}
	if input.Role != domain.RoleJobSeeker && input.Role != domain.RoleRecruiter {
		return nil, apperror.BadRequest("Role must be jobseeker or recruiter")
	}

	// Uniqueness probes run in a fixed order; the first collision wins and
	// the rest are not probed. All of them run before the photo upload so a
	// conflict never costs an orphaned object.
	if err := u.ensureAvailable(ctx, u.userRepo.GetByAadhaar, input.AadhaarNumber, "Aadhaar number already exists"); err != nil {
		return nil, err
	}
	if err := u.ensureAvailable(ctx, u.userRepo.GetByPAN, input.PANNumber, "PAN number already exists"); err != nil {
		return nil, err
	}
	if err := u.ensureAvailable(ctx, u.userRepo.GetByEmail, input.Email, "Email already exists"); err != nil {
		return nil, err
	}

	// Upload before persistence: a user record must never exist without a
	// photo URL.
	photoURL, err := u.uploader.Upload(ctx, input.Photo.OriginalName, input.Photo.Data)
	if err != nil {
		logger.Log.Error("profile photo upload failed", "email", input.Email, "error", err)
		return nil, apperror.UploadFailed(err)
	}

	digest, err := hash.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		FullName:      input.FullName,
		Email:         input.Email,
		PhoneNumber:   input.PhoneNumber,
		Password:      digest,
		AadhaarNumber: input.AadhaarNumber,
		PANNumber:     input.PANNumber,
		Role:          input.Role,
		Profile: domain.Profile{
			Skills:   []string{},
			PhotoURL: photoURL,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still hit the unique index
		return nil, mapUserDuplicate(err)
	}
	return user, nil
}

func (u *userUsecase) Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, apperror.Unauthorized(msgBadCredentials)
		}
		return "", nil, apperror.Internal(err)
	}

	if !hash.CheckPasswordHash(password, user.Password) {
		return "", nil, apperror.Unauthorized(msgBadCredentials)
	}

	if user.Role != role {
		return "", nil, apperror.Forbidden("You don't have the necessary role to access this resource")
	}

	token, err := u.tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	return token, user, nil
}

func (u *userUsecase) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// UpdateProfile merges the fields present in the input into a copy of the
// stored document and writes the merged copy back in one update. Absent
// fields never touch existing values.
func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, input domain.ProfileUpdateInput) (*domain.User, error) {
	user, err := u.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *user
	if input.FullName != "" {
		updated.FullName = input.FullName
	}
	if input.Email != "" {
		updated.Email = input.Email
	}
	if input.PhoneNumber != "" {
		updated.PhoneNumber = input.PhoneNumber
	}
	if input.AadhaarNumber != "" {
		updated.AadhaarNumber = input.AadhaarNumber
	}
	if input.PANNumber != "" {
		updated.PANNumber = input.PANNumber
	}
	if input.Bio != "" {
		updated.Profile.Bio = input.Bio
	}
	if input.Skills != "" {
		// Replaces the previous list entirely, never appends
		updated.Profile.Skills = splitDelimited(input.Skills)
	}

	if input.Resume != nil && len(input.Resume.Data) > 0 {
		resumeURL, err := u.uploader.Upload(ctx, input.Resume.OriginalName, input.Resume.Data)
		if err != nil {
			logger.Log.Error("resume upload failed", "user_id", userID, "error", err)
			return nil, apperror.UploadFailed(err)
		}
		updated.Profile.ResumeURL = resumeURL
		updated.Profile.ResumeOriginalName = input.Resume.OriginalName
	}

	updated.UpdatedAt = time.Now()

	if err := u.userRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, mapUserDuplicate(err)
	}
	return &updated, nil
}

// ensureAvailable probes one unique field; only the not-found outcome means
// the value is free to take.
func (u *userUsecase) ensureAvailable(ctx context.Context, lookup func(context.Context, string) (*domain.User, error), value, conflictMsg string) error {
	_, err := lookup(ctx, value)
	if err == nil {
		return apperror.Conflict(conflictMsg)
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return apperror.Internal(err)
	}
	return nil
}

func mapUserDuplicate(err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return apperror.Conflict("Email already exists")
	case errors.Is(err, domain.ErrDuplicateAadhaar):
		return apperror.Conflict("Aadhaar number already exists")
	case errors.Is(err, domain.ErrDuplicatePAN):
		return apperror.Conflict("PAN number already exists")
	default:
		return apperror.Internal(err)
	}
}

// splitDelimited turns a comma-delimited string into an ordered list of
// trimmed tokens, dropping empties.
func splitDelimited(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
