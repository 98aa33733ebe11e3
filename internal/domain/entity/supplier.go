package entity

import "time"

// Supplier representa un proveedor. Informativo: no se fuerza relación con Product.
type Supplier struct {
	ID         string // identidad primaria (UUID), inmutable
	SupplierID string // código secuencial legible (S001, S002, ...), único, inmutable
	Name       string
	Phone      string // requerido
	Email      string // opcional
	Address    string // opcional
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
