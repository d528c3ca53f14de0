package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devlink/internal/domain"
	"devlink/internal/repository"
)

const (
	DefaultFeedPageSize = 10
	MaxFeedPageSize     = 50
)

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

type FeedPage struct {
	Data       []domain.UserSummary `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

type FeedService struct {
	connRepo repository.ConnectionRepository
	userRepo repository.UserRepository
}

func NewFeedService(connRepo repository.ConnectionRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{
		connRepo: connRepo,
		userRepo: userRepo,
	}
}

// GetFeed returns the page of users the requester has no connection with.
// Any connection record in any status and either direction hides its
// counterpart, and the requester never sees themselves. Candidates are
// ordered by id ascending so pages are stable.
func (s *FeedService) GetFeed(ctx context.Context, userID bson.ObjectID, page, pageSize int) (*FeedPage, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultFeedPageSize
	}
	if pageSize > MaxFeedPageSize {
		pageSize = MaxFeedPageSize
	}

	conns, err := s.connRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := map[bson.ObjectID]struct{}{userID: {}}
	excluded := []bson.ObjectID{userID}
	for _, conn := range conns {
		other := conn.FromUserID
		if other == userID {
			other = conn.ToUserID
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		excluded = append(excluded, other)
	}

	total, err := s.userRepo.CountExcluding(ctx, excluded)
	if err != nil {
		return nil, err
	}

	if total == 0 {
		return &FeedPage{
			Data:       []domain.UserSummary{},
			Pagination: Pagination{Total: 0, Page: 1, Pages: 1},
		}, nil
	}

	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	skip := int64(page-1) * int64(pageSize)

	data := []domain.UserSummary{}
	if skip < total {
		users, err := s.userRepo.ListExcluding(ctx, excluded, skip, int64(pageSize))
		if err != nil {
			return nil, err
		}
		for i := range users {
			data = append(data, users[i].Summary())
		}
	}

	return &FeedPage{
		Data:       data,
		Pagination: Pagination{Total: total, Page: page, Pages: pages},
	}, nil
}
