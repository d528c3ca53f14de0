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

const connectionCollection = "connections"

type ConnectionRepo struct {
	db *mongo.Database
}

// NewConnectionRepo binds the repo to the connections collection and
// ensures the unique (pair_min, pair_max) index exists. The index is what
// guarantees at most one record per unordered user pair, even when two
// requests for the same pair race past the service pre-check.
func NewConnectionRepo(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) *ConnectionRepo {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "pair_min", Value: 1},
				{Key: "pair_max", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "to_user_id", Value: 1},
				{Key: "status", Value: 1},
			},
		},
	}

	if _, err := db.Collection(connectionCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Fatal().Err(err).Msg("failed to create connection indexes")
	}

	return &ConnectionRepo{db: db}
}

func (r *ConnectionRepo) Create(ctx context.Context, conn *domain.Connection) (*domain.Connection, error) {
	if conn.FromUserID == conn.ToUserID {
		return nil, repository.ErrSelfConnection
	}

	conn.PairMin, conn.PairMax = domain.NormalizePair(conn.FromUserID, conn.ToUserID)
	now := time.Now()
	conn.CreatedAt = now
	conn.UpdatedAt = now

	result, err := r.db.Collection(connectionCollection).InsertOne(ctx, conn)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateKey
		}
		return nil, err
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, errors.New("inserted connection ID is not an ObjectID")
	}
	conn.ID = objectID

	return conn, nil
}

func (r *ConnectionRepo) GetByPair(ctx context.Context, a, b bson.ObjectID) (*domain.Connection, error) {
	lo, hi := domain.NormalizePair(a, b)
	return r.findOne(ctx, bson.M{"pair_min": lo, "pair_max": hi})
}

func (r *ConnectionRepo) GetPendingForReceiver(ctx context.Context, id, receiverID bson.ObjectID) (*domain.Connection, error) {
	return r.findOne(ctx, bson.M{
		"_id":        id,
		"to_user_id": receiverID,
		"status":     domain.StatusInterested,
	})
}

func (r *ConnectionRepo) findOne(ctx context.Context, filter bson.M) (*domain.Connection, error) {
	var conn domain.Connection
	err := r.db.Collection(connectionCollection).FindOne(ctx, filter).Decode(&conn)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

func (r *ConnectionRepo) UpdateStatus(
	ctx context.Context,
	id bson.ObjectID,
	status domain.ConnectionStatus,
) (*domain.Connection, error) {
	var conn domain.Connection
	err := r.db.Collection(connectionCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&conn)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

func (r *ConnectionRepo) ListByUser(ctx context.Context, userID bson.ObjectID) ([]domain.Connection, error) {
	return r.find(ctx, eitherSideFilter(userID))
}

func (r *ConnectionRepo) ListPendingReceived(ctx context.Context, userID bson.ObjectID) ([]domain.Connection, error) {
	return r.find(ctx, bson.M{
		"to_user_id": userID,
		"status":     domain.StatusInterested,
	})
}

func (r *ConnectionRepo) ListAccepted(ctx context.Context, userID bson.ObjectID) ([]domain.Connection, error) {
	filter := eitherSideFilter(userID)
	filter["status"] = domain.StatusAccepted
	return r.find(ctx, filter)
}

func (r *ConnectionRepo) find(ctx context.Context, filter bson.M) ([]domain.Connection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(connectionCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conns []domain.Connection
	if err := cursor.All(ctx, &conns); err != nil {
		return nil, err
	}
	return conns, nil
}

func eitherSideFilter(userID bson.ObjectID) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"from_user_id": userID},
			{"to_user_id": userID},
		},
	}
}
