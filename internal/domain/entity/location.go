package entity

import "time"

// Location é um endereço físico do armazém (rua, corredor, prateleira).
// Dado de referência: nunca é versionado por movimentações.
type Location struct {
	ID        string
	Code      string // ex: R01-P01
	Zone      string // ex: Pulmão
	Aisle     string
	Shelf     string
	CreatedAt time.Time
}
