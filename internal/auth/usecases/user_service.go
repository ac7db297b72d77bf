package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"atlas-cms/internal/auth/domain"
	"atlas-cms/internal/auth/security"
)

func NewUserService(repository UserRepository) *SimpleUserService {
	return &SimpleUserService{
		repository: repository,
	}
}

var _ UserService = &SimpleUserService{}

type SimpleUserService struct {
	repository UserRepository
}

// RegisterFirstAdmin bootstraps the instance: it only succeeds while no user
// exists at all, and the user it creates is always an admin. Every later
// account goes through CreateUser behind the admin guard.
func (s *SimpleUserService) RegisterFirstAdmin(ctx context.Context, email, name, password string) (domain.User, error) {
	count, err := s.repository.Count(ctx)
	if err != nil {
		slog.Error("counting users", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("counting users: %w", err)
	}

	if count > 0 {
		slog.Warn("first admin registration attempted on a bootstrapped instance")
		return domain.User{}, ErrRegistrationClosed
	}

	return s.createUser(ctx, email, name, password, domain.RoleAdmin)
}

func (s *SimpleUserService) CreateUser(ctx context.Context, email, name, password string, role domain.Role) (domain.User, error) {
	existing, err := s.repository.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		slog.Error("checking existing user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("checking existing user: %w", err)
	}

	if existing.ID != "" {
		slog.Warn("user already exists", slog.String("email", email))
		return domain.User{}, ErrUserDuplicated
	}

	return s.createUser(ctx, email, name, password, role)
}

func (s *SimpleUserService) createUser(ctx context.Context, email, name, password string, role domain.Role) (domain.User, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user, err := domain.NewUserBuilder().
		WithEmail(email).
		WithName(name).
		WithRole(role).
		WithPasswordHash(hash).
		Build()
	if err != nil {
		return domain.User{}, err
	}

	err = s.repository.Create(ctx, user)
	if err != nil {
		slog.Error("creating user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}

	slog.Info("user created successfully",
		slog.String("id", user.ID.String()),
		slog.String("role", string(user.Role)))

	return user, nil
}

// Authenticate never reveals whether the email or the password was wrong.
func (s *SimpleUserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repository.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		slog.Error("getting user by email", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("getting user by email: %w", err)
	}

	if !security.ComparePassword(user.PasswordHash, password) {
		slog.Warn("failed login attempt", slog.String("user_id", user.ID.String()))
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (s *SimpleUserService) GetUser(ctx context.Context, id domain.ID) (domain.User, error) {
	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		slog.Error("getting user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *SimpleUserService) ListUsers(ctx context.Context, pagination Pagination) ([]domain.User, int, error) {
	users, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing users", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}

	return users, total, nil
}

func (s *SimpleUserService) DeleteUser(ctx context.Context, id domain.ID) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting user", slog.String("error", err.Error()))
		return fmt.Errorf("deleting user: %w", err)
	}

	slog.Info("user deleted", slog.String("id", id.String()))

	return nil
}
