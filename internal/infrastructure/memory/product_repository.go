// Package memory implementa los puertos de persistencia sobre mapas en
// proceso. Es la implementación de referencia: la usan los tests de casos de
// uso y el modo DB_DRIVER=memory para desarrollo sin PostgreSQL.
//
// Los repos guardan y devuelven copias de las entidades para que ningún caller
// mute estado compartido por fuera de los métodos del repositorio.
package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/manufactura-api/internal/domain"
	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/domain/repository"
	"github.com/jhoicas/manufactura-api/internal/domain/sequence"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
//
// El código secuencial sale de un contador atómico incrementado en el mismo
// insert, nunca de un count puntual: M inserts concurrentes producen M códigos
// distintos. Los ajustes de stock se serializan con un mutex por producto, de
// modo que ajustes sobre productos distintos proceden en paralelo.
type ProductRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Product
	order []string // orden de inserción para List

	seq   atomic.Int64
	locks sync.Map // id -> *sync.Mutex, serialización por producto
}

// NewProductRepository construye el repo vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: make(map[string]*entity.Product)}
}

func (r *ProductRepo) lockFor(id string) *sync.Mutex {
	v, _ := r.locks.LoadOrStore(id, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func clone(p *entity.Product) *entity.Product {
	cp := *p
	return &cp
}

// Create persiste un nuevo producto y le asigna su código secuencial.
func (r *ProductRepo) Create(product *entity.Product) error {
	product.ProductID = sequence.Format(sequence.ProductPrefix, r.seq.Add(1))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[product.ID] = clone(product)
	r.order = append(r.order, product.ID)
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return clone(p), nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.items[id]))
	}
	return out, nil
}

// Update reemplaza el registro completo. ErrNotFound si no existe.
// ID, código secuencial y fecha de creación se preservan del registro existente.
// Toma el mutex por producto antes que r.mu (mismo orden que AdjustStock) para
// que un reemplazo no pueda intercalarse dentro de un ajuste en vuelo sobre la
// misma identidad.
func (r *ProductRepo) Update(product *entity.Product) error {
	lock := r.lockFor(product.ID)
	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := clone(product)
	cp.ProductID = existing.ProductID
	cp.CreatedAt = existing.CreatedAt
	r.items[product.ID] = cp
	return nil
}

// Delete elimina definitivamente. ErrNotFound si no existe. Serializado por
// producto igual que Update y AdjustStock: un ajuste concurrente no puede
// reinsertar el registro después del borrado.
func (r *ProductRepo) Delete(id string) error {
	lock := r.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

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

// Count devuelve el número de productos.
func (r *ProductRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

// ListLowStock filtra currentStock <= minStock en orden de inserción.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Product
	for _, id := range r.order {
		p := r.items[id]
		if p.CurrentStock <= p.MinStock {
			out = append(out, clone(p))
		}
	}
	return out, nil
}

// AdjustStock aplica delta de forma atómica por producto: el mutex por ID
// serializa la secuencia leer-verificar-escribir, así dos decrementos
// concurrentes no pueden pasar ambos la verificación contra una lectura vieja.
func (r *ProductRepo) AdjustStock(ctx context.Context, id string, delta int) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lock := r.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	r.mu.RLock()
	p, ok := r.items[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}

	next := p.CurrentStock + delta
	if next < 0 {
		return nil, &domain.InsufficientStockError{Current: p.CurrentStock, Requested: -delta}
	}

	updated := clone(p)
	updated.CurrentStock = next
	updated.UpdatedAt = time.Now()

	r.mu.Lock()
	r.items[id] = updated
	r.mu.Unlock()
	return clone(updated), nil
}
