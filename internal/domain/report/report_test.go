package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/domain/report"
	"github.com/jhoicas/manufactura-api/internal/domain/stock"
)

func prod(id, cat string, stock int, price float64) *entity.Product {
	return &entity.Product{
		ID:           id,
		Category:     cat,
		CurrentStock: stock,
		Price:        decimal.NewFromFloat(price),
		MinStock:     5,
	}
}

// Escenario de referencia: A/3/$10, A/2/$5, B/1/$100.
func snapshot() []*entity.Product {
	return []*entity.Product{
		prod("p1", "A", 3, 10),
		prod("p2", "A", 2, 5),
		prod("p3", "B", 1, 100),
	}
}

func TestTotalValue(t *testing.T) {
	// 30 + 10 + 100 = 140
	total := report.TotalValue(snapshot())
	assert.True(t, total.Equal(decimal.NewFromInt(140)), "total = %s", total)
}

func TestTotalValue_Vacio(t *testing.T) {
	assert.True(t, report.TotalValue(nil).Equal(decimal.Zero))
}

// Los montos se acumulan en decimal: sumar 0.1 diez veces da exactamente 1.00.
func TestTotalValue_SinErrorFlotante(t *testing.T) {
	var products []*entity.Product
	for i := 0; i < 10; i++ {
		products = append(products, prod("p", "A", 1, 0.1))
	}
	assert.True(t, report.TotalValue(products).Equal(decimal.NewFromInt(1)))
}

func TestGroupByCategory(t *testing.T) {
	groups, categories := report.GroupByCategory(snapshot())

	assert.Equal(t, []string{"A", "B"}, categories, "categorías en orden de aparición")
	require.Len(t, groups["A"], 2)
	require.Len(t, groups["B"], 1)
	// Orden relativo original dentro del grupo
	assert.Equal(t, "p1", groups["A"][0].ID)
	assert.Equal(t, "p2", groups["A"][1].ID)
}

// La igualdad de categoría es match exacto: "a" y "A" son grupos distintos.
func TestGroupByCategory_SinNormalizar(t *testing.T) {
	groups, _ := report.GroupByCategory([]*entity.Product{
		prod("p1", "A", 1, 1),
		prod("p2", "a", 1, 1),
	})
	assert.Len(t, groups, 2)
}

func TestRollupOf(t *testing.T) {
	groups, _ := report.GroupByCategory(snapshot())
	r := report.RollupOf(groups["A"])

	assert.Equal(t, 2, r.Count)
	assert.Equal(t, 5, r.Stock)
	assert.True(t, r.Value.Equal(decimal.NewFromInt(40)), "value = %s", r.Value)
	// precio promedio = 40 / 5 = 8
	assert.True(t, r.AvgPrice.Equal(decimal.NewFromInt(8)), "avg = %s", r.AvgPrice)
}

// Con stock sumado 0 el precio promedio es indefinido: queda en Zero.
func TestRollupOf_StockCero(t *testing.T) {
	r := report.RollupOf([]*entity.Product{prod("p1", "A", 0, 10)})
	assert.Equal(t, 1, r.Count)
	assert.True(t, r.AvgPrice.Equal(decimal.Zero))
}

func TestTopByValue(t *testing.T) {
	top := report.TopByValue(snapshot(), 2)

	require.Len(t, top, 2)
	assert.Equal(t, "p3", top[0].ID, "B vale 100, va primero")
	assert.Equal(t, "p1", top[1].ID, "el primer A vale 30, va segundo")
}

// Los empates conservan el orden original (sort estable).
func TestTopByValue_EmpatesEstables(t *testing.T) {
	products := []*entity.Product{
		prod("p1", "A", 2, 5),  // 10
		prod("p2", "A", 1, 10), // 10
		prod("p3", "A", 5, 2),  // 10
	}
	top := report.TopByValue(products, 3)
	assert.Equal(t, "p1", top[0].ID)
	assert.Equal(t, "p2", top[1].ID)
	assert.Equal(t, "p3", top[2].ID)
}

func TestTopByValue_NoMutaEntrada(t *testing.T) {
	products := snapshot()
	_ = report.TopByValue(products, 3)
	assert.Equal(t, "p1", products[0].ID, "el snapshot de entrada no debe reordenarse")
}

func TestTopByValue_NMayorQueLen(t *testing.T) {
	assert.Len(t, report.TopByValue(snapshot(), 10), 3)
	assert.Len(t, report.TopByValue(snapshot(), 0), 0)
}

func TestLowStock(t *testing.T) {
	products := []*entity.Product{
		prod("p1", "A", 3, 10),  // minStock 5 → low
		prod("p2", "A", 20, 5),  // healthy
		prod("p3", "B", 5, 100), // frontera: 5 <= 5 → low
	}
	low := report.LowStock(products)
	require.Len(t, low, 2)
	assert.Equal(t, "p1", low[0].ID)
	assert.Equal(t, "p3", low[1].ID)
}

func TestCountByTier(t *testing.T) {
	products := []*entity.Product{
		prod("p1", "A", 0, 1),  // out of stock
		prod("p2", "A", 2, 1),  // critical (2 < 2.5)
		prod("p3", "A", 5, 1),  // warning
		prod("p4", "A", 50, 1), // healthy
	}
	counts := report.CountByTier(products)
	assert.Equal(t, 1, counts[stock.TierOutOfStock])
	assert.Equal(t, 1, counts[stock.TierCritical])
	assert.Equal(t, 1, counts[stock.TierWarning])
	assert.Equal(t, 1, counts[stock.TierHealthy])
}

// Lecturas repetidas sin mutación intermedia devuelven resultados idénticos.
func TestAgregacion_Idempotente(t *testing.T) {
	products := snapshot()
	v1 := report.TotalValue(products)
	v2 := report.TotalValue(products)
	assert.True(t, v1.Equal(v2))

	top1 := report.TopByValue(products, 3)
	top2 := report.TopByValue(products, 3)
	assert.Equal(t, top1, top2)
}
