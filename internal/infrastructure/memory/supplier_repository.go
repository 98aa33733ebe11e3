package memory

import (
	"sync"
	"sync/atomic"

	"github.com/jhoicas/manufactura-api/internal/domain"
	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/domain/repository"
	"github.com/jhoicas/manufactura-api/internal/domain/sequence"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación en memoria de SupplierRepository.
// El código S0xx sale del mismo esquema de contador atómico que los productos.
type SupplierRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Supplier
	order []string
	seq   atomic.Int64
}

// NewSupplierRepository construye el repo vacío.
func NewSupplierRepository() *SupplierRepo {
	return &SupplierRepo{items: make(map[string]*entity.Supplier)}
}

func cloneSupplier(s *entity.Supplier) *entity.Supplier {
	cp := *s
	return &cp
}

// Create persiste un nuevo proveedor y le asigna su código secuencial.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	supplier.SupplierID = sequence.Format(sequence.SupplierPrefix, r.seq.Add(1))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[supplier.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[supplier.ID] = cloneSupplier(supplier)
	r.order = append(r.order, supplier.ID)
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneSupplier(s), nil
}

// List devuelve todos los proveedores en orden de inserción.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneSupplier(r.items[id]))
	}
	return out, nil
}

// Update reemplaza el registro completo preservando código y fecha de creación.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[supplier.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := cloneSupplier(supplier)
	cp.SupplierID = existing.SupplierID
	cp.CreatedAt = existing.CreatedAt
	r.items[supplier.ID] = cp
	return nil
}

// Delete elimina definitivamente. ErrNotFound si no existe.
func (r *SupplierRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count devuelve el número de proveedores.
func (r *SupplierRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
