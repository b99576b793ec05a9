package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/domain/repository"
	"github.com/luxeliving/catalog-api/pkg/helpers"
)

// AuthService registers accounts and issues bearer tokens. The catalog core
// only consumes the resulting (uid, role) context; token verification lives
// in the auth middleware.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}
	name := in.Name
	if name == "" {
		name = "User"
	}
	u := &entity.User{
		Email:    in.Email,
		Password: hash,
		Name:     name,
		Phone:    in.Phone,
		Role:     entity.ParseRole(in.Role),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", writeFailure(err)
	}
	token, _, err := s.JWT.Generate(u.ID, string(u.Role))
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, _, err := s.JWT.Generate(u.ID, string(u.Role))
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
