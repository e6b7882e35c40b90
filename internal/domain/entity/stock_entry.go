package entity

import "time"

// Status de um registro de estoque. A UI só opera sobre "Disponível".
const (
	StockStatusAvailable = "Disponível"
	StockStatusReserved  = "Reservado"
	StockStatusDemo      = "Demonstração"
)

// StockEntry é o saldo atual de um produto em um local, por status.
// Uma linha por (produto, local, status). Quantity nunca fica negativo;
// a mutação é exclusividade do motor de movimentações.
type StockEntry struct {
	ID         string
	ProductID  string
	LocationID string
	Quantity   int64
	Status     string
	UpdatedAt  time.Time
}

// StockEntryWithProduct junta o saldo com o produto para listagens e valoração.
type StockEntryWithProduct struct {
	Entry   StockEntry
	Product Product
}
