package service_test

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devlink/internal/domain"
	"devlink/internal/repository"
)

// In-memory stand-ins for the Mongo repositories. They honor the same
// contracts: nil result for missing records, ErrDuplicateKey for unique
// index violations, id-ascending order for the feed listing.

type fakeUserRepo struct {
	users map[bson.ObjectID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[bson.ObjectID]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, repository.ErrDuplicateKey
		}
	}

	now := time.Now()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user

	return user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id bson.ObjectID) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id bson.ObjectID, params repository.UpdateUserParams) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	if params.FirstName != nil {
		u.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		u.LastName = *params.LastName
	}
	if params.PasswordHash != nil {
		u.PasswordHash = *params.PasswordHash
	}
	if params.Age != nil {
		u.Age = params.Age
	}
	if params.Gender != nil {
		u.Gender = *params.Gender
	}
	if params.PhotoURL != nil {
		u.PhotoURL = *params.PhotoURL
	}
	if params.Description != nil {
		u.Description = *params.Description
	}
	if params.Skills != nil {
		u.Skills = *params.Skills
	}
	u.UpdatedAt = time.Now()

	r.users[id] = u
	return &u, nil
}

func (r *fakeUserRepo) CountExcluding(_ context.Context, excluded []bson.ObjectID) (int64, error) {
	return int64(len(r.candidates(excluded))), nil
}

func (r *fakeUserRepo) ListExcluding(_ context.Context, excluded []bson.ObjectID, skip, limit int64) ([]domain.User, error) {
	candidates := r.candidates(excluded)
	if skip >= int64(len(candidates)) {
		return nil, nil
	}
	candidates = candidates[skip:]
	if int64(len(candidates)) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func (r *fakeUserRepo) candidates(excluded []bson.ObjectID) []domain.User {
	skip := make(map[bson.ObjectID]struct{}, len(excluded))
	for _, id := range excluded {
		skip[id] = struct{}{}
	}

	var out []domain.User
	for id, u := range r.users {
		if _, ok := skip[id]; ok {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out
}

type fakeConnRepo struct {
	conns map[bson.ObjectID]domain.Connection
}

func newFakeConnRepo() *fakeConnRepo {
	return &fakeConnRepo{conns: make(map[bson.ObjectID]domain.Connection)}
}

func (r *fakeConnRepo) Create(_ context.Context, conn *domain.Connection) (*domain.Connection, error) {
	if conn.FromUserID == conn.ToUserID {
		return nil, repository.ErrSelfConnection
	}

	conn.PairMin, conn.PairMax = domain.NormalizePair(conn.FromUserID, conn.ToUserID)
	for _, c := range r.conns {
		if c.PairMin == conn.PairMin && c.PairMax == conn.PairMax {
			return nil, repository.ErrDuplicateKey
		}
	}

	now := time.Now()
	conn.ID = bson.NewObjectID()
	conn.CreatedAt = now
	conn.UpdatedAt = now
	r.conns[conn.ID] = *conn

	return conn, nil
}

func (r *fakeConnRepo) GetByPair(_ context.Context, a, b bson.ObjectID) (*domain.Connection, error) {
	lo, hi := domain.NormalizePair(a, b)
	for _, c := range r.conns {
		if c.PairMin == lo && c.PairMax == hi {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeConnRepo) GetPendingForReceiver(_ context.Context, id, receiverID bson.ObjectID) (*domain.Connection, error) {
	c, ok := r.conns[id]
	if !ok || c.ToUserID != receiverID || c.Status != domain.StatusInterested {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeConnRepo) UpdateStatus(_ context.Context, id bson.ObjectID, status domain.ConnectionStatus) (*domain.Connection, error) {
	c, ok := r.conns[id]
	if !ok {
		return nil, nil
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	r.conns[id] = c
	return &c, nil
}

func (r *fakeConnRepo) ListByUser(_ context.Context, userID bson.ObjectID) ([]domain.Connection, error) {
	var out []domain.Connection
	for _, c := range r.conns {
		if c.FromUserID == userID || c.ToUserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConnRepo) ListPendingReceived(_ context.Context, userID bson.ObjectID) ([]domain.Connection, error) {
	var out []domain.Connection
	for _, c := range r.conns {
		if c.ToUserID == userID && c.Status == domain.StatusInterested {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConnRepo) ListAccepted(_ context.Context, userID bson.ObjectID) ([]domain.Connection, error) {
	var out []domain.Connection
	for _, c := range r.conns {
		if c.Status != domain.StatusAccepted {
			continue
		}
		if c.FromUserID == userID || c.ToUserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}
