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
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("old password is incorrect")
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileInput carries the optional profile fields. Nil means "leave
// as is"; the update is a field-level overlay onto the stored record.
type UpdateProfileInput struct {
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	Age         *int      `json:"age"`
	Gender      *string   `json:"gender"`
	PhotoURL    *string   `json:"photoUrl"`
	Description *string   `json:"description"`
	Skills      *[]string `json:"skills"`
}

func (s *UserService) GetProfile(ctx context.Context, userID bson.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID bson.ObjectID, input UpdateProfileInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.Update(ctx, userID, repository.UpdateUserParams{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Age:         input.Age,
		Gender:      input.Gender,
		PhotoURL:    input.PhotoURL,
		Description: input.Description,
		Skills:      input.Skills,
	})
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID bson.ObjectID, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !verifyPassword(oldPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	updated, err := s.userRepo.Update(ctx, userID, repository.UpdateUserParams{PasswordHash: &hash})
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	if updated == nil {
		return ErrUserNotFound
	}

	return nil
}
