package usecases

import (
	"context"
	"errors"

	"atlas-cms/internal/auth/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/auth/usecases/repository_port_mock.go -package=usecases -mock_names=UserRepository=MockUserRepository

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDuplicated     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationClosed = errors.New("registration is closed")
	ErrSessionRevoked     = errors.New("session has been revoked")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type UserRepository interface {
	Create(context.Context, domain.User) error
	GetByID(context.Context, domain.ID) (domain.User, error)
	GetByEmail(context.Context, string) (domain.User, error)
	Update(context.Context, domain.User) error
	FindAll(context.Context, Pagination) ([]domain.User, int, error)
	Count(context.Context) (int64, error)
	Delete(context.Context, domain.ID) error
}
