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

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const purchaseOrderColumns = `id, code, supplier_id, product_id, quantity, total_cost, status, expected_date, received_at, received_by, created_at`

// PurchaseOrderRepo implementação de PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository constrói o adaptador de pedidos de compra.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste um novo pedido de compra.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Code, order.SupplierID, order.ProductID, order.Quantity,
		order.TotalCost, order.Status, order.ExpectedDate, order.ReceivedAt,
		order.ReceivedBy, order.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtém um pedido por ID. Devolve nil quando não existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get purchase order")
}

// GetForUpdate obtém o pedido bloqueando a linha, para que dois recebimentos
// concorrentes se serializem.
func (r *PurchaseOrderRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get purchase order for update")
}

// MarkReceived grava a transição Pendente -> Recebido.
func (r *PurchaseOrderRepo) MarkReceived(order *entity.PurchaseOrder) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE purchase_orders
		SET status = $2, received_at = $3, received_by = $4
		WHERE id = $1`,
		order.ID, order.Status, order.ReceivedAt, order.ReceivedBy,
	)
	if err != nil {
		return fmt.Errorf("mark purchase order received: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithDetails devolve os pedidos com nomes de fornecedor e produto,
// mais recentes primeiro.
func (r *PurchaseOrderRepo) ListWithDetails() ([]*entity.PurchaseOrderWithDetails, error) {
	query := `
		SELECT o.id, o.code, o.supplier_id, o.product_id, o.quantity, o.total_cost,
		       o.status, o.expected_date, o.received_at, o.received_by, o.created_at,
		       s.company_name, p.name
		FROM purchase_orders o
		JOIN suppliers s ON s.id = o.supplier_id
		JOIN products p ON p.id = o.product_id
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderWithDetails
	for rows.Next() {
		var o entity.PurchaseOrderWithDetails
		var receivedBy *string
		err := rows.Scan(
			&o.ID, &o.Code, &o.SupplierID, &o.ProductID, &o.Quantity, &o.TotalCost,
			&o.Status, &o.ExpectedDate, &o.ReceivedAt, &receivedBy, &o.CreatedAt,
			&o.SupplierName, &o.ProductName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		if receivedBy != nil {
			o.ReceivedBy = *receivedBy
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

func (r *PurchaseOrderRepo) scanOne(row pgx.Row, op string) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	var receivedBy *string
	err := row.Scan(
		&o.ID, &o.Code, &o.SupplierID, &o.ProductID, &o.Quantity, &o.TotalCost,
		&o.Status, &o.ExpectedDate, &o.ReceivedAt, &receivedBy, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if receivedBy != nil {
		o.ReceivedBy = *receivedBy
	}
	return &o, nil
}
