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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, product_code, name, category, unit, price, min_stock, current_stock, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.ProductID, &p.Name, &p.Category, &p.Unit,
		&p.Price, &p.MinStock, &p.CurrentStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. El código P0xx sale de la secuencia
// product_code_seq dentro de la misma transacción del insert: la secuencia es
// estrictamente creciente y atómica, así inserts concurrentes nunca colisionan
// en el código (nunca se deriva de un count puntual de la tabla).
func (r *ProductRepo) Create(product *entity.Product) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert product: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var n int64
	if err := tx.QueryRow(ctx, `SELECT nextval('product_code_seq')`).Scan(&n); err != nil {
		return fmt.Errorf("next product code: %w", err)
	}
	product.ProductID = sequence.Format(sequence.ProductPrefix, n)

	_, err = tx.Exec(ctx, `
		INSERT INTO products (id, product_code, name, category, unit, price, min_stock, current_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		product.ID, product.ProductID, product.Name, product.Category, product.Unit,
		product.Price, product.MinStock, product.CurrentStock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos en orden de inserción. El orden es por
// fecha de creación (no por código: como string, P1000 ordenaría antes que P999).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.queryMany(`SELECT ` + productColumns + ` FROM products ORDER BY created_at, product_code`)
}

// ListLowStock filtra en el store los productos con current_stock <= min_stock.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	return r.queryMany(`SELECT ` + productColumns + ` FROM products WHERE current_stock <= min_stock ORDER BY created_at, product_code`)
}

func (r *ProductRepo) queryMany(query string) ([]*entity.Product, error) {
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos mutables del registro (código y fecha de
// creación son inmutables). ErrNotFound si no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	cmd, err := r.pool.Exec(context.Background(), `
		UPDATE products SET name = $2, category = $3, unit = $4, price = $5, min_stock = $6, current_stock = $7, updated_at = $8
		WHERE id = $1`,
		product.ID, product.Name, product.Category, product.Unit,
		product.Price, product.MinStock, product.CurrentStock, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. ErrNotFound si no existe.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count devuelve el número de productos.
func (r *ProductRepo) Count() (int, error) {
	var n int
	if err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// AdjustStock aplica delta dentro de una transacción con bloqueo de fila
// (SELECT FOR UPDATE): la secuencia leer-verificar-escribir queda serializada
// por producto y dos decrementos concurrentes no pueden pasar ambos la
// verificación contra una lectura vieja. Filas distintas no se bloquean entre
// sí. Si la transacción no confirma (error o ctx expirado), no hay escritura
// parcial.
func (r *ProductRepo) AdjustStock(ctx context.Context, id string, delta int) (*entity.Product, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin adjust stock: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p, err := scanProduct(tx.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}

	next := p.CurrentStock + delta
	if next < 0 {
		return nil, &domain.InsufficientStockError{Current: p.CurrentStock, Requested: -delta}
	}

	if err := tx.QueryRow(ctx,
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1 RETURNING current_stock, updated_at`,
		id, next,
	).Scan(&p.CurrentStock, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit adjust stock: %w", err)
	}
	return p, nil
}
