package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devlink/internal/domain"
	"devlink/internal/repository"
)

var (
	ErrCannotConnectSelf = errors.New("cannot send a connection request to yourself")
	ErrConnectionExists  = errors.New("connection already exists")
	ErrRequestNotFound   = errors.New("connection request not found")
	ErrInvalidStatus     = errors.New("invalid connection status")
)

type ConnectionService struct {
	connRepo repository.ConnectionRepository
	userRepo repository.UserRepository
}

func NewConnectionService(connRepo repository.ConnectionRepository, userRepo repository.UserRepository) *ConnectionService {
	return &ConnectionService{
		connRepo: connRepo,
		userRepo: userRepo,
	}
}

// SendRequest creates a connection from requester to target with an explicit
// status of interested or ignored. At most one connection may exist per
// unordered user pair, regardless of direction or status.
func (s *ConnectionService) SendRequest(
	ctx context.Context,
	requesterID, targetID bson.ObjectID,
	status domain.ConnectionStatus,
) (*domain.Connection, error) {
	if !domain.SendStatus(status) {
		return nil, ErrInvalidStatus
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, ErrUserNotFound
	}

	if requesterID == targetID {
		return nil, ErrCannotConnectSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	existing, err := s.connRepo.GetByPair(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConnectionExists
	}

	conn, err := s.connRepo.Create(ctx, &domain.Connection{
		FromUserID: requesterID,
		ToUserID:   targetID,
		Status:     status,
	})
	if err != nil {
		switch {
		// A concurrent request for the same pair can pass the pre-check;
		// the unique pair index turns the loser into the same conflict.
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, ErrConnectionExists
		case errors.Is(err, repository.ErrSelfConnection):
			return nil, ErrCannotConnectSelf
		}
		return nil, fmt.Errorf("creating connection: %w", err)
	}

	fromSummary := requester.Summary()
	toSummary := target.Summary()
	conn.FromUser = &fromSummary
	conn.ToUser = &toSummary

	return conn, nil
}

// ReviewRequest lets the receiver of a pending request accept or reject it.
// The lookup matches id, receiver and interested status in one step, so a
// request addressed to someone else, or already decided, is
// indistinguishable from a missing one.
func (s *ConnectionService) ReviewRequest(
	ctx context.Context,
	reviewerID, requestID bson.ObjectID,
	decision domain.ConnectionStatus,
) (*domain.Connection, error) {
	if !domain.ReviewStatus(decision) {
		return nil, ErrInvalidStatus
	}

	reviewer, err := s.userRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	if reviewer == nil {
		return nil, ErrUserNotFound
	}

	pending, err := s.connRepo.GetPendingForReceiver(ctx, requestID, reviewerID)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, ErrRequestNotFound
	}

	conn, err := s.connRepo.UpdateStatus(ctx, pending.ID, decision)
	if err != nil {
		return nil, fmt.Errorf("updating connection status: %w", err)
	}
	if conn == nil {
		return nil, ErrRequestNotFound
	}

	toSummary := reviewer.Summary()
	conn.ToUser = &toSummary
	if sender, err := s.userRepo.GetByID(ctx, conn.FromUserID); err == nil && sender != nil {
		fromSummary := sender.Summary()
		conn.FromUser = &fromSummary
	}

	return conn, nil
}

// ListPendingReceived returns the requests awaiting the user's review, with
// sender summaries attached.
func (s *ConnectionService) ListPendingReceived(ctx context.Context, userID bson.ObjectID) ([]domain.Connection, error) {
	conns, err := s.connRepo.ListPendingReceived(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Connection, 0, len(conns))
	for _, conn := range conns {
		sender, err := s.userRepo.GetByID(ctx, conn.FromUserID)
		if err != nil {
			return nil, err
		}
		if sender != nil {
			summary := sender.Summary()
			conn.FromUser = &summary
		}
		out = append(out, conn)
	}
	return out, nil
}

// ListConnections returns the counterpart of every accepted connection,
// whichever side the user is on.
func (s *ConnectionService) ListConnections(ctx context.Context, userID bson.ObjectID) ([]domain.UserSummary, error) {
	conns, err := s.connRepo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.UserSummary, 0, len(conns))
	for _, conn := range conns {
		otherID := conn.FromUserID
		if otherID == userID {
			otherID = conn.ToUserID
		}

		other, err := s.userRepo.GetByID(ctx, otherID)
		if err != nil {
			return nil, err
		}
		if other == nil {
			continue
		}
		out = append(out, other.Summary())
	}
	return out, nil
}
