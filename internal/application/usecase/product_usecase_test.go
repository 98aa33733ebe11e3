package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/manufactura-api/internal/application/dto"
	"github.com/jhoicas/manufactura-api/internal/application/usecase"
	"github.com/jhoicas/manufactura-api/internal/domain"
	"github.com/jhoicas/manufactura-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newProductUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewProductRepository())
}

func validDraft() dto.ProductDraft {
	return dto.ProductDraft{
		Name:         "Tornillo M8",
		Category:     "Ferretería",
		Unit:         "unidad",
		Price:        decimal.NewFromFloat(2.50),
		MinStock:     10,
		CurrentStock: 25,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AsignaCodigoYTimestamps(t *testing.T) {
	uc := newProductUC()

	out, err := uc.Create(validDraft())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "debe asignarse un ID")
	assert.Equal(t, "P001", out.ProductID, "el primer producto recibe el código P001")
	assert.Equal(t, "Tornillo M8", out.Name)
	assert.Equal(t, 25, out.CurrentStock)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt, "en create ambos timestamps coinciden")

	out2, err := uc.Create(validDraft())
	require.NoError(t, err)
	assert.Equal(t, "P002", out2.ProductID, "los códigos son secuenciales")
}

func TestCreate_ValidacionCampoACampo(t *testing.T) {
	uc := newProductUC()

	cases := []struct {
		name   string
		mutate func(*dto.ProductDraft)
		field  string
	}{
		{"nombre vacío", func(d *dto.ProductDraft) { d.Name = "" }, "name"},
		{"categoría vacía", func(d *dto.ProductDraft) { d.Category = "" }, "category"},
		{"unidad vacía", func(d *dto.ProductDraft) { d.Unit = "" }, "unit"},
		{"precio negativo", func(d *dto.ProductDraft) { d.Price = decimal.NewFromInt(-1) }, "price"},
		{"minStock negativo", func(d *dto.ProductDraft) { d.MinStock = -1 }, "minStock"},
		{"currentStock negativo", func(d *dto.ProductDraft) { d.CurrentStock = -5 }, "currentStock"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)

			out, err := uc.Create(draft)
			assert.Nil(t, out)

			var valErr *domain.ValidationError
			require.ErrorAs(t, err, &valErr, "debe ser un error de validación")
			assert.Equal(t, tc.field, valErr.Field, "el error debe señalar el campo rechazado")
		})
	}
}

func TestCreate_PrecioYStockCeroSonValidos(t *testing.T) {
	uc := newProductUC()

	draft := validDraft()
	draft.Price = decimal.Zero
	draft.MinStock = 0
	draft.CurrentStock = 0

	out, err := uc.Create(draft)
	require.NoError(t, err)
	assert.True(t, out.Price.IsZero())
	assert.Equal(t, 0, out.CurrentStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_Inexistente_DevuelveNilNil(t *testing.T) {
	uc := newProductUC()

	out, err := uc.GetByID("no-existe")
	assert.NoError(t, err)
	assert.Nil(t, out, "un ID inexistente no es un error, es ausencia")
}

func TestList_OrdenadoPorCreacionDescendente(t *testing.T) {
	uc := newProductUC()

	for _, name := range []string{"A", "B", "C"} {
		draft := validDraft()
		draft.Name = name
		_, err := uc.Create(draft)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // timestamps distinguibles
	}

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "C", out[0].Name, "el más reciente va primero")
	assert.Equal(t, "A", out[2].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ReemplazaTodosLosCampos(t *testing.T) {
	uc := newProductUC()

	created, err := uc.Create(validDraft())
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.ProductDraft{
		Name:         "Tornillo M10",
		Category:     "Fijaciones",
		Unit:         "caja",
		Price:        decimal.NewFromFloat(3.75),
		MinStock:     5,
		CurrentStock: 40,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID, "el ID es inmutable")
	assert.Equal(t, created.ProductID, updated.ProductID, "el código secuencial es inmutable")
	assert.Equal(t, "Tornillo M10", updated.Name)
	assert.Equal(t, "Fijaciones", updated.Category)
	assert.Equal(t, 40, updated.CurrentStock, "el reemplazo completo puede fijar cualquier stock no negativo")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "la fecha de creación no cambia")
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdate_Inexistente_DevuelveNilNil(t *testing.T) {
	uc := newProductUC()

	out, err := uc.Update("no-existe", validDraft())
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdate_DraftInvalido_NoTocaElRegistro(t *testing.T) {
	uc := newProductUC()

	created, err := uc.Create(validDraft())
	require.NoError(t, err)

	bad := validDraft()
	bad.CurrentStock = -1
	_, err = uc.Update(created.ID, bad)
	require.Error(t, err)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.CurrentStock, "el registro queda intacto tras una validación fallida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete / ListLowStock
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_EliminaYSegundoDeleteFalla(t *testing.T) {
	uc := newProductUC()

	created, err := uc.Create(validDraft())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListLowStock_FiltraPorUmbral(t *testing.T) {
	uc := newProductUC()

	// stock == min → bajo stock; stock > min → sano
	low := validDraft()
	low.Name = "Bajo"
	low.MinStock = 10
	low.CurrentStock = 10
	_, err := uc.Create(low)
	require.NoError(t, err)

	ok := validDraft()
	ok.Name = "Sano"
	ok.MinStock = 10
	ok.CurrentStock = 11
	_, err = uc.Create(ok)
	require.NoError(t, err)

	out, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Bajo", out[0].Name)
}
