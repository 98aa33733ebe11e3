package usecase

import (
	"context"

	"github.com/jhoicas/manufactura-api/internal/application/dto"
	"github.com/jhoicas/manufactura-api/internal/domain"
	"github.com/jhoicas/manufactura-api/internal/domain/repository"
)

// Operaciones de ajuste de stock (contrato con el consumidor HTTP).
const (
	OpIn  = "in"  // entrada: suma al stock, sin tope superior
	OpOut = "out" // salida: resta, falla si excede el stock actual
)

// StockUseCase aplica ajustes de stock a un producto. La atomicidad
// leer-verificar-escribir por identidad la garantiza el repositorio
// (FOR UPDATE en Postgres, mutex por producto en memoria); aquí solo se
// valida la entrada y se traduce la operación a un delta.
//
// Nunca se recorta en silencio: un decremento que excede el stock falla con
// InsufficientStockError en lugar de dejar el stock en cero.
type StockUseCase struct {
	repo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Adjust aplica un ajuste de stock: op "in" incrementa, "out" decrementa.
// quantity <= 0 falla con ErrInvalidQuantity; op desconocida con ErrInvalidInput;
// producto inexistente con ErrNotFound; decremento excesivo con
// *domain.InsufficientStockError (portando actual y solicitado).
func (uc *StockUseCase) Adjust(ctx context.Context, id, op string, quantity int) (*dto.ProductResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	var delta int
	switch op {
	case OpIn:
		delta = quantity
	case OpOut:
		delta = -quantity
	default:
		return nil, domain.NewValidationError("operation", "debe ser \"in\" u \"out\"")
	}
	product, err := uc.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}
