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

// MongoDB duplicate key error code
const mongoDuplicateKey = 11000

type userRepo struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) domain.UserRepository {
	col := db.Collection("users")

	// Ensure unique indexes (idempotent operation)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "aadhaar_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "pan_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := col.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Log.Warn("failed to ensure indexes for users collection", "error", err)
	}

	return &userRepo{col: col}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return mapUserWriteError(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepo) GetByAadhaar(ctx context.Context, aadhaar string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"aadhaar_number": aadhaar})
}

func (r *userRepo) GetByPAN(ctx context.Context, pan string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"pan_number": pan})
}

// Update writes the merged document built by the usecase in a single atomic
// $set. The password digest is deliberately not part of the update.
func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	update := bson.M{
		"$set": bson.M{
			"fullname":       user.FullName,
			"email":          user.Email,
			"phone_number":   user.PhoneNumber,
			"aadhaar_number": user.AadhaarNumber,
			"pan_number":     user.PANNumber,
			"profile":        user.Profile,
			"updated_at":     user.UpdatedAt,
		},
	}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		return mapUserWriteError(err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepo) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// mapUserWriteError translates duplicate key violations to the sentinel of the
// unique index that was hit.
func mapUserWriteError(err error) error {
	var writeException mongo.WriteException
	if errors.As(err, &writeException) {
		for _, writeError := range writeException.WriteErrors {
			if writeError.Code != mongoDuplicateKey {
				continue
			}
			switch {
			case strings.Contains(writeError.Message, "email_1"):
				return domain.ErrDuplicateEmail
			case strings.Contains(writeError.Message, "aadhaar_number_1"):
				return domain.ErrDuplicateAadhaar
			case strings.Contains(writeError.Message, "pan_number_1"):
				return domain.ErrDuplicatePAN
			}
		}
	}
	return err
}
