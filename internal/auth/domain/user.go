package domain

import (
	"errors"
	"net/mail"
	"time"

	"atlas-cms/internal/infra/utils"
)

type ID string

func (i ID) String() string {
	return string(i)
}

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleEditor:
		return Role(value), nil
	default:
		return "", ErrInvalidRole
	}
}

type User struct {
	ID           ID
	Email        string
	Name         string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func NewUserBuilder() *userBuilder {
	return &userBuilder{}
}

type userBuilder struct {
	actions []userHandler
}

type userHandler func(u *User) error

func (b *userBuilder) WithEmail(email string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		if _, err := mail.ParseAddress(email); err != nil {
			return ErrInvalidEmail
		}
		u.Email = email
		return nil
	})
	return b
}

func (b *userBuilder) WithName(name string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.Name = name
		return nil
	})
	return b
}

func (b *userBuilder) WithRole(role Role) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		if _, err := ParseRole(string(role)); err != nil {
			return err
		}
		u.Role = role
		return nil
	})
	return b
}

func (b *userBuilder) WithPasswordHash(hash string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.PasswordHash = hash
		return nil
	})
	return b
}

func (b *userBuilder) Build() (User, error) {
	now := time.Now()
	result := User{
		ID:        ID(utils.GenerateUUID()),
		Role:      RoleEditor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return User{}, err
		}
	}

	return result, nil
}

// Session is the authenticated view of a request, reconstructed from a
// verified token.
type Session struct {
	TokenID   string
	UserID    ID
	Role      Role
	ExpiresAt time.Time
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
