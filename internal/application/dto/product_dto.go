package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/manufactura-api/internal/domain/entity"
)

// Los nombres JSON (productId, minStock, currentStock, ...) son el contrato de
// wire con los consumidores: no cambiarlos al pasar datos hacia/desde el core.

// ProductDraft entrada para crear o reemplazar un producto. En create el
// productId lo asigna el repositorio; en update los campos reemplazan todos
// los del registro.
type ProductDraft struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	MinStock     int             `json:"minStock"`
	CurrentStock int             `json:"currentStock"`
}

// AdjustStockRequest cuerpo del PATCH de stock: operation "in" | "out".
type AdjustStockRequest struct {
	Operation string `json:"operation"`
	Quantity  int    `json:"quantity"`
}

// ProductResponse salida de un producto (forma persistida del registro).
type ProductResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	MinStock     int             `json:"minStock"`
	CurrentStock int             `json:"currentStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToProductResponse mapea la entidad a su forma de wire.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:           p.ID,
		ProductID:    p.ProductID,
		Name:         p.Name,
		Category:     p.Category,
		Unit:         p.Unit,
		Price:        p.Price,
		MinStock:     p.MinStock,
		CurrentStock: p.CurrentStock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToProductResponses mapea un slice de entidades.
func ToProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *ToProductResponse(p))
	}
	return out
}
