package dto

import (
	"time"

	"github.com/jhoicas/manufactura-api/internal/domain/entity"
)

// SupplierDraft entrada para crear o reemplazar un proveedor.
type SupplierDraft struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplierId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToSupplierResponse mapea la entidad a su forma de wire.
func ToSupplierResponse(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{
		ID:         s.ID,
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Phone:      s.Phone,
		Email:      s.Email,
		Address:    s.Address,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ToSupplierResponses mapea un slice de entidades.
func ToSupplierResponses(suppliers []*entity.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *ToSupplierResponse(s))
	}
	return out
}
