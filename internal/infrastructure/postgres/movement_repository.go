package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, code, product_id, stock_entry_id, user_id, action, quantity, unit_cost, customer, expected_return, note, occurred_at`

// MovementRepo implementação de MovementRepository sobre PostgreSQL.
// O razão é append-only: não há Update nem Delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador do razão de movimentações.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste um lançamento imutável do razão.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Code, movement.ProductID, movement.StockEntryID, movement.UserID,
		movement.Action, movement.Quantity, movement.UnitCost, movement.Customer,
		movement.ExpectedReturn, movement.Note, movement.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devolve os lançamentos em [from, to), mais recentes primeiro.
// from e to são opcionais (nil = sem limite daquele lado).
func (r *MovementRepo) List(from, to *time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE ($1::timestamptz IS NULL OR occurred_at >= $1)
		  AND ($2::timestamptz IS NULL OR occurred_at < $2)
		ORDER BY occurred_at DESC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var customer *string
		err := rows.Scan(
			&m.ID, &m.Code, &m.ProductID, &m.StockEntryID, &m.UserID, &m.Action,
			&m.Quantity, &m.UnitCost, &customer, &m.ExpectedReturn, &m.Note, &m.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if customer != nil {
			m.Customer = *customer
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListWithDetails devolve os lançamentos com nomes de produto e usuário
// desnormalizados, mais recentes primeiro.
func (r *MovementRepo) ListWithDetails(from, to *time.Time) ([]*entity.MovementWithDetails, error) {
	query := `
		SELECT m.id, m.code, m.product_id, m.stock_entry_id, m.user_id, m.action,
		       m.quantity, m.unit_cost, m.customer, m.expected_return, m.note, m.occurred_at,
		       p.name, u.name
		FROM movements m
		JOIN products p ON p.id = m.product_id
		JOIN users u ON u.id = m.user_id
		WHERE ($1::timestamptz IS NULL OR m.occurred_at >= $1)
		  AND ($2::timestamptz IS NULL OR m.occurred_at < $2)
		ORDER BY m.occurred_at DESC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list movements with details: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithDetails
	for rows.Next() {
		var m entity.MovementWithDetails
		var customer *string
		err := rows.Scan(
			&m.ID, &m.Code, &m.ProductID, &m.StockEntryID, &m.UserID, &m.Action,
			&m.Quantity, &m.UnitCost, &customer, &m.ExpectedReturn, &m.Note, &m.OccurredAt,
			&m.ProductName, &m.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement with details: %w", err)
		}
		if customer != nil {
			m.Customer = *customer
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ExistsForProduct informa se o produto tem lançamentos no razão.
func (r *MovementRepo) ExistsForProduct(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM movements WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("movement exists for product: %w", err)
	}
	return exists, nil
}
