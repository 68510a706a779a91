package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrJobNotFound = errors.New("job not found")

type Job struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	Requirements    []string           `json:"requirements" bson:"requirements"`
	Salary          float64            `json:"salary" bson:"salary"`
	Location        string             `json:"location" bson:"location"`
	JobType         string             `json:"job_type" bson:"job_type"`
	ExperienceYears int                `json:"experience_years" bson:"experience_years"`
	Position        int                `json:"position" bson:"position"`
	CompanyID       primitive.ObjectID `json:"company_id" bson:"company_id"`
	CreatedBy       primitive.ObjectID `json:"created_by" bson:"created_by"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Job, error)
	Search(ctx context.Context, keyword string) ([]Job, error)
	FetchByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]Job, error)
	DeleteByCompanyID(ctx context.Context, companyID primitive.ObjectID) error
}

type PostJobInput struct {
	Title           string
	Description     string
	Requirements    string // comma-delimited, split before persistence
	Salary          float64
	Location        string
	JobType         string
	ExperienceYears int
	Position        int // number of openings
	CompanyID       string
}

type JobUsecase interface {
	PostJob(ctx context.Context, creatorID string, input PostJobInput) (*Job, error)
	SearchJobs(ctx context.Context, keyword string) ([]Job, error)
	GetJobByID(ctx context.Context, id string) (*Job, error)
	ListJobsByCreator(ctx context.Context, creatorID string) ([]Job, error)
}
