package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/manufactura-api/internal/application/dto"
	"github.com/jhoicas/manufactura-api/internal/domain"
	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores (informativos, sin
// relación forzada con productos).
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func validateSupplierDraft(in dto.SupplierDraft) error {
	switch {
	case in.Name == "":
		return domain.NewValidationError("name", "es requerido")
	case in.Phone == "":
		return domain.NewValidationError("phone", "es requerido")
	}
	return nil
}

// Create valida el draft y persiste un nuevo proveedor; el código S0xx lo
// asigna el repositorio dentro del mismo insert.
func (uc *SupplierUseCase) Create(in dto.SupplierDraft) (*dto.SupplierResponse, error) {
	if err := validateSupplierDraft(in); err != nil {
		return nil, err
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(supplier), nil
}

// List lista proveedores ordenados por fecha de creación descendente.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(suppliers, func(i, j int) bool {
		return suppliers[i].CreatedAt.After(suppliers[j].CreatedAt)
	})
	return dto.ToSupplierResponses(suppliers), nil
}

// Update reemplaza todos los campos del proveedor. Devuelve (nil, nil) si no existe.
func (uc *SupplierUseCase) Update(id string, in dto.SupplierDraft) (*dto.SupplierResponse, error) {
	if err := validateSupplierDraft(in); err != nil {
		return nil, err
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	supplier.Name = in.Name
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	supplier.Address = in.Address
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return dto.ToSupplierResponse(supplier), nil
}

// Delete elimina definitivamente un proveedor. ErrNotFound si no existe.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
