package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/manufactura-api/internal/domain"
	"github.com/jhoicas/manufactura-api/internal/domain/entity"
	"github.com/jhoicas/manufactura-api/internal/domain/repository"
	"github.com/jhoicas/manufactura-api/internal/domain/sequence"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, supplier_code, name, phone, email, address, created_at, updated_at`

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.SupplierID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo proveedor; el código S0xx sale de supplier_code_seq
// dentro de la misma transacción del insert (mismo esquema que productos).
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert supplier: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var n int64
	if err := tx.QueryRow(ctx, `SELECT nextval('supplier_code_seq')`).Scan(&n); err != nil {
		return fmt.Errorf("next supplier code: %w", err)
	}
	supplier.SupplierID = sequence.Format(sequence.SupplierPrefix, n)

	_, err = tx.Exec(ctx, `
		INSERT INTO suppliers (id, supplier_code, name, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		supplier.ID, supplier.SupplierID, supplier.Name, supplier.Phone,
		supplier.Email, supplier.Address, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.pool.QueryRow(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// List devuelve todos los proveedores en orden de inserción.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers ORDER BY created_at, supplier_code`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos mutables del registro. ErrNotFound si no existe.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	cmd, err := r.pool.Exec(context.Background(), `
		UPDATE suppliers SET name = $2, phone = $3, email = $4, address = $5, updated_at = $6
		WHERE id = $1`,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Email, supplier.Address, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor por ID. ErrNotFound si no existe.
func (r *SupplierRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count devuelve el número de proveedores.
func (r *SupplierRepo) Count() (int, error) {
	var n int
	if err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM suppliers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}
