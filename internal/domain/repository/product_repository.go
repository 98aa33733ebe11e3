package repository

import (
	"context"

	"github.com/jhoicas/manufactura-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// Create asigna el código secuencial (ProductID) desde un contador atómico al
// insert; el caller no lo provee. Los Get devuelven (nil, nil) cuando el
// recurso no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List devuelve todos los productos en orden de inserción (los callers
	// ordenan por fecha de creación descendente por convención, no aquí).
	List() ([]*entity.Product, error)
	// Update reemplaza todos los campos mutables del registro. ErrNotFound si no existe.
	Update(product *entity.Product) error
	// Delete elimina definitivamente. ErrNotFound si no existe.
	Delete(id string) error
	Count() (int, error)
	// ListLowStock filtra en el store los productos con currentStock <= minStock,
	// sin traer la tabla completa.
	ListLowStock() ([]*entity.Product, error)
	// AdjustStock aplica delta (positivo o negativo) al stock del producto de
	// forma atómica por identidad: la secuencia leer-verificar-escribir está
	// serializada por producto y nunca deja stock negativo. Devuelve el producto
	// actualizado con updated_at refrescado; ErrNotFound si no existe;
	// *domain.InsufficientStockError si el decremento excede el stock actual.
	// Ajustes sobre productos distintos proceden en paralelo. Si ctx expira
	// antes de confirmar, el estado persistido queda intacto.
	AdjustStock(ctx context.Context, id string, delta int) (*entity.Product, error)
}
