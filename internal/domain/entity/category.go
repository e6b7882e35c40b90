package entity

import "time"

// Category agrupa produtos do catálogo.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
