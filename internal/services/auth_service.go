package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/security"
)

type AuthService struct {
	users     *repository.UserRepository
	hasher    *security.PasswordHasher
	tokens    *security.TokenManager
	dummyHash string
}

func NewAuthService(
	users *repository.UserRepository,
	hasher *security.PasswordHasher,
	tokens *security.TokenManager,
) (*AuthService, error) {
	// Unknown emails are checked against this hash so login takes the same
	// time whether or not the account exists.
	dummyHash, err := hasher.Hash("task-manager-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummyHash,
	}, nil
}

func (s *AuthService) Signup(ctx context.Context, fullName, email, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooLong) {
			return nil, apperrors.ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, fullName, email, hashed)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponseData, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lookup user by email: %w", err)
		}
		_, _ = s.hasher.Verify(s.dummyHash, password)
		return nil, apperrors.ErrInvalidCredentials
	}

	matched, err := s.hasher.Verify(user.Password, password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !matched {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponseData{
		ID:          user.ID,
		Email:       user.Email,
		AccessToken: accessToken,
	}, nil
}

// Authenticate resolves a bearer token to the id of an existing user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("lookup token user: %w", err)
	}

	return user.ID, nil
}
