package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un insumo o material del inventario de manufactura.
// CurrentStock es el único campo que muta después de la creación (vía ajustes de stock);
// ProductID es el código secuencial legible (P001, P002, ...) asignado al insertar.
type Product struct {
	ID           string          // identidad primaria (UUID), inmutable
	ProductID    string          // código secuencial legible, único, inmutable
	Name         string
	Category     string
	Unit         string          // unidad de medida (kg, pza, lt, ...)
	Price        decimal.Decimal // precio unitario, >= 0
	MinStock     int             // umbral de reorden, >= 0
	CurrentStock int             // invariante: >= 0 en todo momento
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Value devuelve el valor monetario del stock actual (currentStock * price).
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}
