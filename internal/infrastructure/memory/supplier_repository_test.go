package memory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/manufactura-api/internal/domain"
	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/infrastructure/memory"
)

func nuevoProveedor(name string) *entity.Supplier {
	now := time.Now()
	return &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     "555-0100",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSupplierCreate_AsignaCodigoSecuencial(t *testing.T) {
	repo := memory.NewSupplierRepository()
	s1 := nuevoProveedor("Aceros del Norte")
	s2 := nuevoProveedor("Fundición Central")
	require.NoError(t, repo.Create(s1))
	require.NoError(t, repo.Create(s2))

	assert.Equal(t, "S001", s1.SupplierID)
	assert.Equal(t, "S002", s2.SupplierID)
}

func TestSupplierCRUD(t *testing.T) {
	repo := memory.NewSupplierRepository()
	s := nuevoProveedor("Aceros del Norte")
	require.NoError(t, repo.Create(s))

	got, err := repo.GetByID(s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Aceros del Norte", got.Name)

	mod := *s
	mod.Phone = "555-0199"
	require.NoError(t, repo.Update(&mod))
	got, _ = repo.GetByID(s.ID)
	assert.Equal(t, "555-0199", got.Phone)
	assert.Equal(t, "S001", got.SupplierID)

	require.NoError(t, repo.Delete(s.ID))
	assert.ErrorIs(t, repo.Delete(s.ID), domain.ErrNotFound)

	n, _ := repo.Count()
	assert.Equal(t, 0, n)
}
