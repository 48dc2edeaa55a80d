package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

// UserService implements registration and role bookkeeping.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register inserts a user record unless one already exists for the
// email. The duplicate case is a sentinel success with a null inserted
// id, never an error.
//
// The check and the insert are two store calls with no transaction
// between them; concurrent duplicate submissions can race. The unique
// email index makes the loser of that race surface as ErrUserExists,
// which collapses into the same sentinel.
func (s *UserService) Register(ctx context.Context, name, email string) (*ports.RegisterResult, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return &ports.RegisterResult{Message: "user already exists", InsertedID: nil}, nil
	}

	user := &domain.User{
		Name:      name,
		Email:     email,
		Role:      domain.RoleNone,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return &ports.RegisterResult{Message: "user already exists", InsertedID: nil}, nil
		}
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("id", id).Msg("user registered")
	return &ports.RegisterResult{InsertedID: &id}, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// RoleOf re-reads the store on every call. Role checks must see the
// freshest record; nothing is cached.
func (s *UserService) RoleOf(ctx context.Context, email string) (domain.Role, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.RoleNone, nil
		}
		return domain.RoleNone, err
	}
	return user.Role, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role domain.Role) (*ports.UpdateResult, error) {
	if !role.IsAssignable() {
		return nil, domain.ErrInvalidRole
	}

	res, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("role", string(role)).Int64("matched", res.MatchedCount).Msg("user role updated")
	return res, nil
}
