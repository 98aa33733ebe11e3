package repository

import "github.com/jhoicas/manufactura-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para Supplier.
// Create asigna el código secuencial (SupplierID) desde un contador atómico.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	Count() (int, error)
}
