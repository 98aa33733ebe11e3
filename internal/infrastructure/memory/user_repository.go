package memory

import (
	"sync"

	"github.com/jhoicas/manufactura-api/internal/domain"
	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	mu         sync.RWMutex
	byID       map[string]*entity.User
	byUsername map[string]string // username -> id
}

// NewUserRepository construye el repo vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{byID: make(map[string]*entity.User), byUsername: make(map[string]string)}
}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

// Create persiste un usuario. ErrDuplicate si el username ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUsername[user.Username]; ok {
		return domain.ErrDuplicate
	}
	r.byID[user.ID] = cloneUser(user)
	r.byUsername[user.Username] = user.ID
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

// FindByUsername busca por username. Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	return cloneUser(r.byID[id]), nil
}
