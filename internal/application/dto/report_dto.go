package dto

import "github.com/shopspring/decimal"

// InventorySummary KPIs globales del inventario (snapshot completo).
type InventorySummary struct {
	ProductCount  int             `json:"productCount"`
	TotalStock    int             `json:"totalStock"`    // unidades sumadas
	TotalValue    decimal.Decimal `json:"totalValue"`    // suma de currentStock * price
	LowStockCount int             `json:"lowStockCount"` // currentStock <= minStock
	OutOfStock    int             `json:"outOfStock"`
	Critical      int             `json:"critical"`
	Warning       int             `json:"warning"`
	Healthy       int             `json:"healthy"`
}

// CategoryRollup agregados por categoría.
type CategoryRollup struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Stock    int             `json:"stock"`
	Value    decimal.Decimal `json:"value"`
	AvgPrice decimal.Decimal `json:"avgPrice"` // value / stock; 0 cuando stock == 0
}

// TopProduct producto del ranking por valor de stock.
type TopProduct struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Value     decimal.Decimal `json:"value"` // currentStock * price
}

// LowStockAlert fila de la vista de alertas: severidad derivada del clasificador.
type LowStockAlert struct {
	Product         ProductResponse `json:"product"`
	Tier            string          `json:"tier"` // out_of_stock | critical | warning
	StockPercentage int             `json:"stockPercentage"` // -1 cuando minStock == 0 (indefinido)
	Shortage        int             `json:"shortage"`        // unidades por debajo del mínimo
}
