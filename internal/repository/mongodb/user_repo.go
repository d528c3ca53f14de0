package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devlink/internal/domain"
	"devlink/internal/repository"
)

const userCollection = "users"

type UserRepo struct {
	db *mongo.Database
}

// NewUserRepo binds the repo to the users collection and ensures its
// unique email index exists.
func NewUserRepo(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) *UserRepo {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := db.Collection(userCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Fatal().Err(err).Msg("failed to create user indexes")
	}

	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateKey
		}
		return nil, err
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, errors.New("inserted user ID is not an ObjectID")
	}
	user.ID = objectID

	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.db.Collection(userCollection).FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Update(
	ctx context.Context,
	id bson.ObjectID,
	params repository.UpdateUserParams,
) (*domain.User, error) {
	updateMap := bson.M{}
	if params.FirstName != nil {
		updateMap["first_name"] = *params.FirstName
	}
	if params.LastName != nil {
		updateMap["last_name"] = *params.LastName
	}
	if params.PasswordHash != nil {
		updateMap["password_hash"] = *params.PasswordHash
	}
	if params.Age != nil {
		updateMap["age"] = *params.Age
	}
	if params.Gender != nil {
		updateMap["gender"] = *params.Gender
	}
	if params.PhotoURL != nil {
		updateMap["photo_url"] = *params.PhotoURL
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.Skills != nil {
		updateMap["skills"] = *params.Skills
	}
	updateMap["updated_at"] = time.Now()

	var user domain.User
	err := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) CountExcluding(ctx context.Context, excluded []bson.ObjectID) (int64, error) {
	return r.db.Collection(userCollection).CountDocuments(ctx, excludingFilter(excluded))
}

func (r *UserRepo) ListExcluding(
	ctx context.Context,
	excluded []bson.ObjectID,
	skip, limit int64,
) ([]domain.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.db.Collection(userCollection).Find(ctx, excludingFilter(excluded), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func excludingFilter(excluded []bson.ObjectID) bson.M {
	if len(excluded) == 0 {
		return bson.M{}
	}
	return bson.M{"_id": bson.M{"$nin": excluded}}
}
