package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/manufactura-api/internal/application/dto"
	"github.com/jhoicas/manufactura-api/internal/application/usecase"
	"github.com/jhoicas/manufactura-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newReportFixture puebla un store en memoria con un inventario pequeño y
// conocido y devuelve el caso de uso de reportes sobre él.
//
//	Tuercas   (Ferretería)  stock 3, min 1, $10  → valor 30, sano
//	Arandelas (Ferretería)  stock 2, min 5, $5   → valor 10, crítico
//	Motor     (Maquinaria)  stock 1, min 1, $100 → valor 100, warning
//	Correa    (Maquinaria)  stock 0, min 4, $8   → valor 0, agotado
func newReportFixture(t *testing.T) *usecase.ReportUseCase {
	t.Helper()
	repo := memory.NewProductRepository()
	productUC := usecase.NewProductUseCase(repo)

	seed := []struct {
		name, category string
		stock, min     int
		price          float64
	}{
		{"Tuercas", "Ferretería", 3, 1, 10},
		{"Arandelas", "Ferretería", 2, 5, 5},
		{"Motor", "Maquinaria", 1, 1, 100},
		{"Correa", "Maquinaria", 0, 4, 8},
	}
	for _, s := range seed {
		_, err := productUC.Create(dto.ProductDraft{
			Name:         s.name,
			Category:     s.category,
			Unit:         "unidad",
			Price:        decimal.NewFromFloat(s.price),
			MinStock:     s.min,
			CurrentStock: s.stock,
		})
		require.NoError(t, err)
	}
	return usecase.NewReportUseCase(repo, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_KPIsGlobales(t *testing.T) {
	uc := newReportFixture(t)

	out, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 4, out.ProductCount)
	assert.Equal(t, 6, out.TotalStock, "3+2+1+0 unidades")
	assert.True(t, out.TotalValue.Equal(decimal.NewFromInt(140)), "30+10+100+0, obtuvo %s", out.TotalValue)
	assert.Equal(t, 3, out.LowStockCount, "Arandelas, Motor y Correa están en o bajo su mínimo")
	assert.Equal(t, 1, out.OutOfStock)
	assert.Equal(t, 1, out.Critical, "2 unidades están bajo la mitad del mínimo de 5")
	assert.Equal(t, 1, out.Warning)
	assert.Equal(t, 1, out.Healthy)
}

func TestSummary_InventarioVacio(t *testing.T) {
	uc := usecase.NewReportUseCase(memory.NewProductRepository(), nil)

	out, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 0, out.ProductCount)
	assert.True(t, out.TotalValue.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Categories / TopProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories_AgregadosPorCategoria(t *testing.T) {
	uc := newReportFixture(t)

	out, err := uc.Categories()
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Orden de primera aparición en el snapshot.
	ferreteria := out[0]
	assert.Equal(t, "Ferretería", ferreteria.Category)
	assert.Equal(t, 2, ferreteria.Count)
	assert.Equal(t, 5, ferreteria.Stock)
	assert.True(t, ferreteria.Value.Equal(decimal.NewFromInt(40)), "obtuvo %s", ferreteria.Value)
	assert.True(t, ferreteria.AvgPrice.Equal(decimal.NewFromInt(8)), "40/5 unidades, obtuvo %s", ferreteria.AvgPrice)

	maquinaria := out[1]
	assert.Equal(t, "Maquinaria", maquinaria.Category)
	assert.Equal(t, 2, maquinaria.Count)
	assert.True(t, maquinaria.Value.Equal(decimal.NewFromInt(100)))
}

func TestTopProducts_RankingPorValor(t *testing.T) {
	uc := newReportFixture(t)

	out, err := uc.TopProducts(2)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Motor", out[0].Name, "mayor valor de stock primero")
	assert.True(t, out[0].Value.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Tuercas", out[1].Name)
}

func TestTopProducts_NMayorQueElInventario(t *testing.T) {
	uc := newReportFixture(t)

	out, err := uc.TopProducts(50)
	require.NoError(t, err)
	assert.Len(t, out, 4, "se devuelven todos sin rellenar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Alerts
// ──────────────────────────────────────────────────────────────────────────────

func TestAlerts_SeveridadPorcentajeYFaltante(t *testing.T) {
	uc := newReportFixture(t)

	out, err := uc.Alerts()
	require.NoError(t, err)
	require.Len(t, out, 3, "solo los productos en o bajo su mínimo generan alertas")

	// Ordenadas de más a menos severas.
	assert.Equal(t, "Correa", out[0].Product.Name)
	assert.Equal(t, "out_of_stock", out[0].Tier)
	assert.Equal(t, 0, out[0].StockPercentage)
	assert.Equal(t, 4, out[0].Shortage)

	assert.Equal(t, "Arandelas", out[1].Product.Name)
	assert.Equal(t, "critical", out[1].Tier, "2 unidades están bajo la mitad del mínimo de 5")
	assert.Equal(t, 40, out[1].StockPercentage)
	assert.Equal(t, 3, out[1].Shortage)

	assert.Equal(t, "Motor", out[2].Product.Name)
	assert.Equal(t, "warning", out[2].Tier)
	assert.Equal(t, 100, out[2].StockPercentage)
	assert.Equal(t, 0, out[2].Shortage, "en el mínimo exacto no hay faltante")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests InventoryPDF
// ──────────────────────────────────────────────────────────────────────────────

// Sin generador configurado el export falla con error, nunca con panic.
func TestInventoryPDF_SinGeneradorFallaConError(t *testing.T) {
	uc := newReportFixture(t) // construido con pdf == nil

	out, err := uc.InventoryPDF(context.Background())
	require.Error(t, err)
	assert.Nil(t, out)
}
