package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/manufactura-api/internal/application/dto"
	"github.com/jhoicas/manufactura-api/internal/domain"
	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se muta por
// separado vía StockUseCase; aquí solo entra como parte de un reemplazo completo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// validateProductDraft valida tipos, presencia y no-negatividad campo a campo.
func validateProductDraft(in dto.ProductDraft) error {
	switch {
	case in.Name == "":
		return domain.NewValidationError("name", "es requerido")
	case in.Category == "":
		return domain.NewValidationError("category", "es requerido")
	case in.Unit == "":
		return domain.NewValidationError("unit", "es requerido")
	case in.Price.LessThan(decimal.Zero):
		return domain.NewValidationError("price", "no puede ser negativo")
	case in.MinStock < 0:
		return domain.NewValidationError("minStock", "no puede ser negativo")
	case in.CurrentStock < 0:
		return domain.NewValidationError("currentStock", "no puede ser negativo")
	}
	return nil
}

// Create valida el draft y persiste un nuevo producto. El código secuencial
// (P001, ...) lo asigna el repositorio dentro del mismo insert.
func (uc *ProductUseCase) Create(in dto.ProductDraft) (*dto.ProductResponse, error) {
	if err := validateProductDraft(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Unit:         in.Unit,
		Price:        in.Price,
		MinStock:     in.MinStock,
		CurrentStock: in.CurrentStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// List lista todos los productos ordenados por fecha de creación descendente
// (convención de los consumidores; el repositorio devuelve orden de inserción).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return dto.ToProductResponses(products), nil
}

// Update reemplaza todos los campos del producto. El reemplazo completo puede
// fijar cualquier stock no negativo (la validación lo garantiza); ID, código y
// fecha de creación son inmutables. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) Update(id string, in dto.ProductDraft) (*dto.ProductResponse, error) {
	if err := validateProductDraft(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Name = in.Name
	product.Category = in.Category
	product.Unit = in.Unit
	product.Price = in.Price
	product.MinStock = in.MinStock
	product.CurrentStock = in.CurrentStock
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete elimina definitivamente un producto. ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ListLowStock lista los productos con currentStock <= minStock usando el
// filtro del store (sin traer la tabla completa).
func (uc *ProductUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponses(products), nil
}
