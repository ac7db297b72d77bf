package usecases

import (
	"context"

	"atlas-cms/internal/auth/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/auth/usecases/api.go

type UserService interface {
	RegisterFirstAdmin(ctx context.Context, email, name, password string) (domain.User, error)
	CreateUser(ctx context.Context, email, name, password string, role domain.Role) (domain.User, error)
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
	GetUser(ctx context.Context, id domain.ID) (domain.User, error)
	ListUsers(ctx context.Context, pagination Pagination) ([]domain.User, int, error)
	DeleteUser(ctx context.Context, id domain.ID) error
}

type SessionService interface {
	Login(ctx context.Context, email, password string) (string, domain.Session, error)
	Verify(ctx context.Context, token string) (domain.Session, error)
	Revoke(ctx context.Context, session domain.Session) error
}
