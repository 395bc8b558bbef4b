package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de acceso al dashboard
const (
	RoleAdmin       = 1
	RoleCoordinator = 2
	RoleViewer      = 3
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	Contractor   *string   `json:"contractor,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID         int
	UserName       string
	UserEmail      string
	UserActive     bool
	UserRoleID     int
	UserContractor *string
	jwt.RegisteredClaims
}
