package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrDuplicateCompanyName = errors.New("company name already exists")
)

type Company struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Website     string             `json:"website,omitempty" bson:"website,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	LogoURL     string             `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	OwnerID     primitive.ObjectID `json:"owner_id" bson:"owner_id"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Company, error)
	GetByName(ctx context.Context, name string) (*Company, error)
	FetchByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CompanyUpdateInput has PATCH semantics like ProfileUpdateInput.
type CompanyUpdateInput struct {
	Name        string
	Description string
	Website     string
	Location    string
	Logo        *FileUpload
}

type CompanyUsecase interface {
	RegisterCompany(ctx context.Context, ownerID, name string) (*Company, error)
	ListOwnedCompanies(ctx context.Context, ownerID string) ([]Company, error)
	GetCompanyByID(ctx context.Context, id string) (*Company, error)
	UpdateCompany(ctx context.Context, id string, input CompanyUpdateInput) (*Company, error)
	DeleteCompany(ctx context.Context, id string) error
}
