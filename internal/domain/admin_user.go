package domain

import "time"

type AdminRole string

const (
	RoleOwner   AdminRole = "owner"
	RoleManager AdminRole = "manager"
)

type AdminUser struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email" validate:"required,email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         AdminRole  `json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
