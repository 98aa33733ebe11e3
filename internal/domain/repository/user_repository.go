package repository

import "github.com/jhoicas/manufactura-api/internal/domain/entity"

// UserRepository puerto de persistencia para User (auth).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
}
