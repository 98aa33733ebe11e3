package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/domain/stock"
)

func producto(current, min int) *entity.Product {
	return &entity.Product{CurrentStock: current, MinStock: min}
}

// ──────────────────────────────────────────────────────────────────────────────
// TestClassify_Fronteras recorre las fronteras exactas de los niveles con
// minStock = 10: 0 → OutOfStock; 4 → Critical (4 < 5); 5 → Warning (5 >= 5);
// 10 → Warning (10 <= 10); 11 → Healthy.
// ──────────────────────────────────────────────────────────────────────────────
func TestClassify_Fronteras(t *testing.T) {
	cases := []struct {
		current int
		want    stock.Tier
	}{
		{0, stock.TierOutOfStock},
		{1, stock.TierCritical},
		{4, stock.TierCritical},
		{5, stock.TierWarning},
		{10, stock.TierWarning},
		{11, stock.TierHealthy},
		{100, stock.TierHealthy},
	}
	for _, c := range cases {
		got := stock.Classify(producto(c.current, 10))
		assert.Equal(t, c.want, got, "currentStock=%d minStock=10", c.current)
	}
}

// Un mínimo impar fuerza frontera fraccionaria: minStock=5 → 2 < 2.5 es Critical,
// 3 >= 2.5 es Warning.
func TestClassify_MinimoImpar(t *testing.T) {
	assert.Equal(t, stock.TierCritical, stock.Classify(producto(2, 5)))
	assert.Equal(t, stock.TierWarning, stock.Classify(producto(3, 5)))
}

// Con minStock = 0, cualquier stock positivo es Healthy y cero es OutOfStock.
func TestClassify_MinimoCero(t *testing.T) {
	assert.Equal(t, stock.TierOutOfStock, stock.Classify(producto(0, 0)))
	assert.Equal(t, stock.TierHealthy, stock.Classify(producto(1, 0)))
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, stock.IsLowStock(producto(0, 10)))
	assert.True(t, stock.IsLowStock(producto(10, 10)))
	assert.False(t, stock.IsLowStock(producto(11, 10)))
}

func TestPercentage(t *testing.T) {
	pct, err := stock.Percentage(producto(5, 10))
	require.NoError(t, err)
	assert.Equal(t, 50, pct)

	// Redondeo al entero más cercano: 1/3 → 33, 2/3 → 67.
	pct, err = stock.Percentage(producto(1, 3))
	require.NoError(t, err)
	assert.Equal(t, 33, pct)
	pct, err = stock.Percentage(producto(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 67, pct)
}

// MinStock == 0 es frontera de división entre cero: debe fallar, no devolver algo.
func TestPercentage_MinimoCeroFalla(t *testing.T) {
	_, err := stock.Percentage(producto(5, 0))
	require.Error(t, err)
}

func TestShortage(t *testing.T) {
	assert.Equal(t, 7, stock.Shortage(producto(3, 10)))
	assert.Equal(t, 0, stock.Shortage(producto(15, 10)))
}
