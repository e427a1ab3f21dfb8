package service

import (
	"context"
	"fmt"

	repository "github.com/voyago/api/internal/database/postgres"
	"github.com/voyago/api/internal/entity"
)

// UpdateUserRequest carries the profile fields a user may change about
// themselves. Email, password and id are immutable through this path, so
// they are not part of the request at all.
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers(ctx context.Context, identity *entity.Identity) ([]*entity.User, error) {
	if !identity.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, identity *entity.Identity, id string) (*entity.User, error) {
	if identity == nil {
		return nil, entity.ErrUnauthorized
	}

	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) UpdateUser(ctx context.Context, identity *entity.Identity, id string, req *UpdateUserRequest) (*entity.User, error) {
	if identity == nil {
		return nil, entity.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, identity *entity.Identity, id string) (*entity.User, error) {
	if !identity.IsAdmin() {
		return nil, entity.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return user, nil
}
