package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devlink/internal/domain"
)

// UpdateUserParams carries the optional fields of a profile update.
// Only non-nil fields are written; the rest of the record is untouched.
type UpdateUserParams struct {
	FirstName    *string
	LastName     *string
	PasswordHash *string
	Age          *int
	Gender       *string
	PhotoURL     *string
	Description  *string
	Skills       *[]string
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id bson.ObjectID, params UpdateUserParams) (*domain.User, error)
	// CountExcluding and ListExcluding drive the feed: users whose id is
	// not in excluded, ordered by id ascending.
	CountExcluding(ctx context.Context, excluded []bson.ObjectID) (int64, error)
	ListExcluding(ctx context.Context, excluded []bson.ObjectID, skip, limit int64) ([]domain.User, error)
}

type ConnectionRepository interface {
	Create(ctx context.Context, conn *domain.Connection) (*domain.Connection, error)
	// GetByPair returns the connection between the two users in either
	// direction and any status, or nil when none exists.
	GetByPair(ctx context.Context, a, b bson.ObjectID) (*domain.Connection, error)
	// GetPendingForReceiver returns the connection matching
	// {id, to_user_id, status=interested}, or nil. The compound match is
	// what makes a foreign or already-decided request look missing.
	GetPendingForReceiver(ctx context.Context, id, receiverID bson.ObjectID) (*domain.Connection, error)
	UpdateStatus(ctx context.Context, id bson.ObjectID, status domain.ConnectionStatus) (*domain.Connection, error)
	// ListByUser returns every connection touching the user, both
	// directions, any status.
	ListByUser(ctx context.Context, userID bson.ObjectID) ([]domain.Connection, error)
	ListPendingReceived(ctx context.Context, userID bson.ObjectID) ([]domain.Connection, error)
	ListAccepted(ctx context.Context, userID bson.ObjectID) ([]domain.Connection, error)
}
