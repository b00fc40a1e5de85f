package service

import (
	"context"
	"errors"

	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

// UserAlreadyExistsMessage is returned in place of an insert outcome for a known email.
const UserAlreadyExistsMessage = "User Already Exist"

// UserService exposes user and role operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	// CreateUser stores a first-time user. A duplicate email is not an error: the result
	// carries UserAlreadyExistsMessage and a nil InsertedID.
	CreateUser(ctx context.Context, user *model.User) (*model.InsertResult, error)
	DeleteUser(ctx context.Context, id string) (*model.DeleteResult, error)
	PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) CreateUser(ctx context.Context, user *model.User) (*model.InsertResult, error) {
	// role is only ever granted through PromoteToAdmin
	user.Role = ""
	res, err := s.repo.Create(ctx, user)
	if errors.Is(err, repository.ErrUserExists) {
		return &model.InsertResult{Message: UserAlreadyExistsMessage, InsertedID: nil}, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) (*model.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}

func (s *userService) PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error) {
	return s.repo.PromoteToAdmin(ctx, id)
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}
