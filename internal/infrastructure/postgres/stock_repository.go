package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, product_id, location_id, quantity, status, updated_at`

// StockRepo implementação de StockRepository sobre PostgreSQL (pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository constrói o adaptador de saldos de estoque.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste um novo saldo de estoque.
func (r *StockRepo) Create(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (` + stockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.LocationID, entry.Quantity, entry.Status, entry.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// Get obtém um saldo por ID. Devolve nil quando não existe.
func (r *StockRepo) Get(id string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock entry")
}

// GetForUpdate obtém o saldo e bloqueia a linha (SELECT FOR UPDATE) para
// serializar movimentações concorrentes sobre ela.
func (r *StockRepo) GetForUpdate(id string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock entry for update")
}

// GetAvailableByProductForUpdate localiza e bloqueia o saldo Disponível de um
// produto. Com mais de um saldo Disponível, o mais antigo ganha.
func (r *StockRepo) GetAvailableByProductForUpdate(productID string) (*entity.StockEntry, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_entries
		WHERE product_id = $1 AND status = $2
		ORDER BY updated_at ASC
		LIMIT 1
		FOR UPDATE`
	return r.scanOne(
		r.q.QueryRow(context.Background(), query, productID, entity.StockStatusAvailable),
		"get available stock for update",
	)
}

// UpdateQuantity grava a nova quantidade de um saldo. Chamado apenas pelo
// motor de movimentações, dentro de uma transação, após GetForUpdate.
func (r *StockRepo) UpdateQuantity(id string, quantity int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_entries SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devolve todos os saldos.
func (r *StockRepo) List() ([]*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.LocationID, &e.Quantity, &e.Status, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListWithProduct devolve os saldos com o produto junto, para listagem e
// valoração.
func (r *StockRepo) ListWithProduct() ([]*entity.StockEntryWithProduct, error) {
	query := `
		SELECT e.id, e.product_id, e.location_id, e.quantity, e.status, e.updated_at,
		       p.id, p.sku, p.name, p.description, p.kind, p.category_id, p.supplier_id,
		       p.lot_number, p.address, p.cost_price, p.sale_price, p.created_at, p.updated_at
		FROM stock_entries e
		JOIN products p ON p.id = e.product_id
		ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock with product: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntryWithProduct
	for rows.Next() {
		var it entity.StockEntryWithProduct
		var supplierID *string
		err := rows.Scan(
			&it.Entry.ID, &it.Entry.ProductID, &it.Entry.LocationID, &it.Entry.Quantity, &it.Entry.Status, &it.Entry.UpdatedAt,
			&it.Product.ID, &it.Product.SKU, &it.Product.Name, &it.Product.Description, &it.Product.Kind,
			&it.Product.CategoryID, &supplierID, &it.Product.LotNumber, &it.Product.Address,
			&it.Product.CostPrice, &it.Product.SalePrice, &it.Product.CreatedAt, &it.Product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan stock with product: %w", err)
		}
		if supplierID != nil {
			it.Product.SupplierID = *supplierID
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *StockRepo) scanOne(row pgx.Row, op string) (*entity.StockEntry, error) {
	var e entity.StockEntry
	err := row.Scan(&e.ID, &e.ProductID, &e.LocationID, &e.Quantity, &e.Status, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}
