// Package report deriva vistas agregadas sobre un snapshot de productos
// (servicio de dominio, puro). El snapshot viene del List() del repositorio y
// no se garantiza que refleje mutaciones posteriores a su lectura.
//
// Las sumas monetarias se calculan en decimal para evitar error de acumulación
// flotante a precisión de moneda.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/domain/stock"
)

// TotalValue suma currentStock * price sobre todos los productos.
func TotalValue(products []*entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Value())
	}
	return total
}

// TotalStock suma las unidades en stock de todos los productos.
func TotalStock(products []*entity.Product) int {
	total := 0
	for _, p := range products {
		total += p.CurrentStock
	}
	return total
}

// LowStock filtra los productos con currentStock <= minStock, preservando el orden.
func LowStock(products []*entity.Product) []*entity.Product {
	var out []*entity.Product
	for _, p := range products {
		if stock.IsLowStock(p) {
			out = append(out, p)
		}
	}
	return out
}

// CountByTier cuenta productos por nivel de severidad.
func CountByTier(products []*entity.Product) map[stock.Tier]int {
	out := make(map[stock.Tier]int, 4)
	for _, p := range products {
		out[stock.Classify(p)]++
	}
	return out
}

// GroupByCategory agrupa por categoría preservando el orden relativo original
// dentro de cada grupo. La igualdad de categoría es match exacto de string
// (sin normalizar mayúsculas ni espacios). Devuelve además las categorías en
// orden de primera aparición, para recorridos deterministas.
func GroupByCategory(products []*entity.Product) (map[string][]*entity.Product, []string) {
	groups := make(map[string][]*entity.Product)
	var categories []string
	for _, p := range products {
		if _, ok := groups[p.Category]; !ok {
			categories = append(categories, p.Category)
		}
		groups[p.Category] = append(groups[p.Category], p)
	}
	return groups, categories
}

// Rollup agregados de un grupo (normalmente una categoría).
type Rollup struct {
	Count    int
	Stock    int             // unidades sumadas
	Value    decimal.Decimal // suma de currentStock * price
	AvgPrice decimal.Decimal // Value / Stock; Zero cuando Stock == 0 (indefinido)
}

// RollupOf calcula los agregados de un grupo de productos.
func RollupOf(group []*entity.Product) Rollup {
	r := Rollup{Value: decimal.Zero, AvgPrice: decimal.Zero}
	for _, p := range group {
		r.Count++
		r.Stock += p.CurrentStock
		r.Value = r.Value.Add(p.Value())
	}
	if r.Stock > 0 {
		r.AvgPrice = r.Value.Div(decimal.NewFromInt(int64(r.Stock)))
	}
	return r
}

// TopByValue ordena descendente por valor (currentStock * price) con orden
// estable (empates conservan el orden original) y trunca a n. No muta el slice
// de entrada.
func TopByValue(products []*entity.Product, n int) []*entity.Product {
	sorted := make([]*entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value().GreaterThan(sorted[j].Value())
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
