package mongodb

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type jobRepo struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) domain.JobRepository {
	return &jobRepo{col: db.Collection("jobs")}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, job)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Job, error) {
	var job domain.Job
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Search matches the keyword case-insensitively against title and
// description, newest postings first. An empty keyword returns everything.
func (r *jobRepo) Search(ctx context.Context, keyword string) ([]domain.Job, error) {
	filter := bson.M{}
	if keyword != "" {
		filter = bson.M{
			"$or": []bson.M{
				{"title": bson.M{"$regex": keyword, "$options": "i"}},
				{"description": bson.M{"$regex": keyword, "$options": "i"}},
			},
		}
	}

	return r.find(ctx, filter)
}

func (r *jobRepo) FetchByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]domain.Job, error) {
	return r.find(ctx, bson.M{"created_by": creatorID})
}

func (r *jobRepo) DeleteByCompanyID(ctx context.Context, companyID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"company_id": companyID})
	return err
}

func (r *jobRepo) find(ctx context.Context, filter bson.M) ([]domain.Job, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	jobs := []domain.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
