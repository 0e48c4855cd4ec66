package service

import (
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
	"github.com/ebeyer/lapwise/internal/security"
)

type UserService interface {
	List(skip, limit int) ([]dto.UserResponse, error)
	UpdateMe(actor *model.User, req dto.UserUpdateRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(skip, limit int) ([]dto.UserResponse, error) {
	users, err := s.userRepo.List(skip, limit)
	if err != nil {
		return nil, err
	}
	resps := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resps = append(resps, toUserResponse(&users[i]))
	}
	return resps, nil
}

// UpdateMe applies only the fields present in the request body. A password,
// if given, is strength-checked and stored hashed.
func (s *userService) UpdateMe(actor *model.User, req dto.UserUpdateRequest) (*dto.UserResponse, error) {
	fields := map[string]any{}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Password != nil {
		if err := security.ValidatePassword(*req.Password); err != nil {
			return nil, err
		}
		hashed, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["hashed_password"] = hashed
	}
	if err := s.userRepo.Update(actor, fields); err != nil {
		return nil, err
	}
	resp := toUserResponse(actor)
	return &resp, nil
}
