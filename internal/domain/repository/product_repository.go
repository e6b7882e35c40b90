package repository

import "github.com/viapro/armazem-api/internal/domain/entity"

// ProductRepository define a porta de persistência do catálogo de produtos.
// Delete devolve domain.ErrReferenced quando o produto ainda é referenciado
// por estoque ou movimentações.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Count() (int, error)
	Delete(id string) error
}
