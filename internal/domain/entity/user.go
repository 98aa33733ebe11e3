package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User usuario de la aplicación. PasswordHash es bcrypt, nunca se expone.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string // admin | staff
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
