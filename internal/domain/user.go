package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is fixed at registration and compared verbatim at login.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrDuplicateAadhaar = errors.New("aadhaar number already exists")
	ErrDuplicatePAN     = errors.New("pan number already exists")
)

// Profile is the mutable sub-document owned by a User. Only the Profile
// Update workflow writes to it.
type Profile struct {
	Bio                string   `json:"bio" bson:"bio"`
	Skills             []string `json:"skills" bson:"skills"`
	ResumeURL          string   `json:"resume_url,omitempty" bson:"resume_url,omitempty"`
	ResumeOriginalName string   `json:"resume_original_name,omitempty" bson:"resume_original_name,omitempty"`
	PhotoURL           string   `json:"photo_url" bson:"photo_url"`
}

// User is the identity and auth entity. Password only ever holds the bcrypt
// digest and is excluded from JSON, so handlers can return the entity as the
// sanitized view directly.
type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName      string             `json:"fullname" bson:"fullname"`
	Email         string             `json:"email" bson:"email"`
	PhoneNumber   string             `json:"phone_number" bson:"phone_number"`
	Password      string             `json:"-" bson:"password"`
	AadhaarNumber string             `json:"aadhaar_number" bson:"aadhaar_number"`
	PANNumber     string             `json:"pan_number" bson:"pan_number"`
	Role          Role               `json:"role" bson:"role"`
	Profile       Profile            `json:"profile" bson:"profile"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByAadhaar(ctx context.Context, aadhaar string) (*User, error)
	GetByPAN(ctx context.Context, pan string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// FileUploader is the object storage collaborator. Upload returns the public
// URL of the stored object; failures are not retried here.
type FileUploader interface {
	Upload(ctx context.Context, originalName string, data []byte) (string, error)
}

// FileUpload carries an in-memory multipart file through a workflow.
type FileUpload struct {
	OriginalName string
	Data         []byte
}

type RegisterInput struct {
	FullName      string
	Email         string
	PhoneNumber   string
	Password      string
	AadhaarNumber string
	PANNumber     string
	Role          Role
	Photo         *FileUpload
}

// ProfileUpdateInput has PATCH semantics: empty fields leave the stored value
// untouched. Skills is a comma-delimited string split before assignment.
type ProfileUpdateInput struct {
	FullName      string
	Email         string
	PhoneNumber   string
	AadhaarNumber string
	PANNumber     string
	Bio           string
	Skills        string
	Resume        *FileUpload
}

type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string, role Role) (string, *User, error)
	GetCurrentUser(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*User, error)
}
