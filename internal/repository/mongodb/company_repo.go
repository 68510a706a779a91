package mongodb

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type companyRepo struct {
	col *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) domain.CompanyRepository {
	col := db.Collection("companies")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}
	if _, err := col.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Log.Warn("failed to ensure indexes for companies collection", "error", err)
	}

	return &companyRepo{col: col}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	if company.ID.IsZero() {
		company.ID = primitive.NewObjectID()
	}

	if _, err := r.col.InsertOne(ctx, company); err != nil {
		var writeException mongo.WriteException
		if errors.As(err, &writeException) {
			for _, writeError := range writeException.WriteErrors {
				if writeError.Code == mongoDuplicateKey && strings.Contains(writeError.Message, "name_1") {
					return domain.ErrDuplicateCompanyName
				}
			}
		}
		return err
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Company, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *companyRepo) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *companyRepo) FetchByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Company, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	companies := []domain.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	update := bson.M{
		"$set": bson.M{
			"name":        company.Name,
			"description": company.Description,
			"website":     company.Website,
			"location":    company.Location,
			"logo_url":    company.LogoURL,
			"updated_at":  company.UpdatedAt,
		},
	}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": company.ID}, update)
	if err != nil {
		var writeException mongo.WriteException
		if errors.As(err, &writeException) {
			for _, writeError := range writeException.WriteErrors {
				if writeError.Code == mongoDuplicateKey && strings.Contains(writeError.Message, "name_1") {
					return domain.ErrDuplicateCompanyName
				}
			}
		}
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (r *companyRepo) findOne(ctx context.Context, filter bson.M) (*domain.Company, error) {
	var company domain.Company
	err := r.col.FindOne(ctx, filter).Decode(&company)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}
