// Package stock clasifica la salud del stock de un producto (servicio de dominio).
//
// Es la única fuente de verdad para los umbrales de severidad: tanto el listado
// de bajo stock como la vista de alertas derivan de aquí, para que las dos
// vistas no puedan divergir.
package stock

import (
	"math"

	"github.com/jhoicas/manufactura-api/internal/domain"
	"github.com/jhoicas/manufactura-api/internal/domain/entity"
)

// Tier nivel de severidad del stock de un producto.
type Tier string

const (
	TierOutOfStock Tier = "out_of_stock" // currentStock == 0
	TierCritical   Tier = "critical"     // 0 < currentStock < minStock*0.5
	TierWarning    Tier = "warning"      // minStock*0.5 <= currentStock <= minStock
	TierHealthy    Tier = "healthy"      // currentStock > minStock
)

// Classify calcula el nivel de severidad a partir del stock actual y el mínimo.
func Classify(p *entity.Product) Tier {
	switch {
	case p.CurrentStock == 0:
		return TierOutOfStock
	case float64(p.CurrentStock) < float64(p.MinStock)*0.5:
		return TierCritical
	case p.CurrentStock <= p.MinStock:
		return TierWarning
	default:
		return TierHealthy
	}
}

// IsLowStock predicado grueso de alerta: currentStock <= minStock.
// Superconjunto de Critical + Warning + OutOfStock.
func IsLowStock(p *entity.Product) bool {
	return p.CurrentStock <= p.MinStock
}

// Percentage porcentaje de stock respecto al mínimo, redondeado.
// Falla con ErrInvalidInput cuando MinStock == 0 (división entre cero: el caller debe guardar).
func Percentage(p *entity.Product) (int, error) {
	if p.MinStock == 0 {
		return 0, domain.ErrInvalidInput
	}
	return int(math.Round(float64(p.CurrentStock) / float64(p.MinStock) * 100)), nil
}

// Shortage unidades que faltan para alcanzar el mínimo (0 si no falta nada).
func Shortage(p *entity.Product) int {
	if d := p.MinStock - p.CurrentStock; d > 0 {
		return d
	}
	return 0
}
