package internal

import (
	"time"

	"atlas-cms/internal/auth/domain"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name"`
	Role         string    `json:"role" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) ToDomain() domain.User {
	return domain.User{
		ID:           domain.ID(u.ID),
		Email:        u.Email,
		Name:         u.Name,
		Role:         domain.Role(u.Role),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromUser(value domain.User) User {
	return User{
		ID:           value.ID.String(),
		Email:        value.Email,
		Name:         value.Name,
		Role:         string(value.Role),
		PasswordHash: value.PasswordHash,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}
}
