package service

import (
	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
	"github.com/ebeyer/lapwise/internal/security"
	"github.com/rs/zerolog/log"
)

type AuthService interface {
	Signup(req dto.SignupRequest) (*dto.UserResponse, error)
	Login(req dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenMaker
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenMaker) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Signup(req dto.SignupRequest) (*dto.UserResponse, error) {
	if err := security.ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.BadRequest("The user with this email already exists in the system")
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}
	user := model.User{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DisplayName:    req.DisplayName,
		Role:           model.Role(req.Role),
		IsActive:       true,
		HashedPassword: hashed,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, err
	}
	resp := toUserResponse(&user)
	return &resp, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !security.VerifyPassword(req.Password, user.HashedPassword) {
		return nil, apperr.BadRequest("Incorrect username or password")
	}
	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to generate access token")
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
