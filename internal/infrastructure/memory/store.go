// Package memory implementa os ports de persistência sobre mapas em memória,
// com um TxRunner de snapshot. Usado nos testes dos motores e como backend de
// desenvolvimento sem PostgreSQL.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
)

// Store guarda todo o estado em mapas protegidos por um mutex único.
// O TxRunner serializa os callbacks transacionais com um mutex próprio e
// restaura um snapshot quando o callback falha.
type Store struct {
	mu sync.RWMutex

	products       map[string]entity.Product
	categories     map[string]entity.Category
	suppliers      map[string]entity.Supplier
	locations      map[string]entity.Location
	users          map[string]entity.User
	stockEntries   map[string]entity.StockEntry
	movements      map[string]entity.Movement
	purchaseOrders map[string]entity.PurchaseOrder
	auditLogs      []entity.AuditLogEntry
	sequences      map[string]int64
}

// NewStore cria um Store vazio.
func NewStore() *Store {
	return &Store{
		products:       map[string]entity.Product{},
		categories:     map[string]entity.Category{},
		suppliers:      map[string]entity.Supplier{},
		locations:      map[string]entity.Location{},
		users:          map[string]entity.User{},
		stockEntries:   map[string]entity.StockEntry{},
		movements:      map[string]entity.Movement{},
		purchaseOrders: map[string]entity.PurchaseOrder{},
		sequences:      map[string]int64{},
	}
}

// snapshot copia o estado mutável pelas transações, para rollback.
func (s *Store) snapshot() *Store {
	cp := NewStore()
	for k, v := range s.products {
		cp.products[k] = v
	}
	for k, v := range s.stockEntries {
		cp.stockEntries[k] = v
	}
	for k, v := range s.movements {
		cp.movements[k] = v
	}
	for k, v := range s.purchaseOrders {
		cp.purchaseOrders[k] = v
	}
	for k, v := range s.sequences {
		cp.sequences[k] = v
	}
	return cp
}

// restore devolve o estado mutável ao snapshot.
func (s *Store) restore(snap *Store) {
	s.products = snap.products
	s.stockEntries = snap.stockEntries
	s.movements = snap.movements
	s.purchaseOrders = snap.purchaseOrders
	s.sequences = snap.sequences
}

// ── Produtos ─────────────────────────────────────────────────────────────────

// ProductRepo visão de ProductRepository sobre o Store.
type ProductRepo struct{ s *Store }

// NewProductRepository constrói a visão de produtos.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.s.products {
		if p.SKU == product.SKU && p.ID != product.ID {
			return domain.ErrDuplicateSKU
		}
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *ProductRepo) Count() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.products), nil
}

func (r *ProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, e := range r.s.stockEntries {
		if e.ProductID == id {
			return domain.ErrReferenced
		}
	}
	for _, m := range r.s.movements {
		if m.ProductID == id {
			return domain.ErrReferenced
		}
	}
	delete(r.s.products, id)
	return nil
}

// ── Estoque ──────────────────────────────────────────────────────────────────

// StockRepo visão de StockRepository sobre o Store. Os locks de linha do
// PostgreSQL viram o lock global do TxRunner.
type StockRepo struct{ s *Store }

// NewStockRepository constrói a visão de saldos.
func NewStockRepository(s *Store) *StockRepo { return &StockRepo{s: s} }

func (r *StockRepo) Create(entry *entity.StockEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stockEntries[entry.ID] = *entry
	return nil
}

func (r *StockRepo) Get(id string) (*entity.StockEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.get(id), nil
}

func (r *StockRepo) GetForUpdate(id string) (*entity.StockEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.get(id), nil
}

func (r *StockRepo) get(id string) *entity.StockEntry {
	if e, ok := r.s.stockEntries[id]; ok {
		return &e
	}
	return nil
}

func (r *StockRepo) GetAvailableByProductForUpdate(productID string) (*entity.StockEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var oldest *entity.StockEntry
	for _, e := range r.s.stockEntries {
		if e.ProductID != productID || e.Status != entity.StockStatusAvailable {
			continue
		}
		cp := e
		if oldest == nil || cp.UpdatedAt.Before(oldest.UpdatedAt) {
			oldest = &cp
		}
	}
	return oldest, nil
}

func (r *StockRepo) UpdateQuantity(id string, quantity int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.stockEntries[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Quantity = quantity
	e.UpdatedAt = time.Now()
	r.s.stockEntries[id] = e
	return nil
}

func (r *StockRepo) List() ([]*entity.StockEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.StockEntry, 0, len(r.s.stockEntries))
	for _, e := range r.s.stockEntries {
		cp := e
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *StockRepo) ListWithProduct() ([]*entity.StockEntryWithProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.StockEntryWithProduct, 0, len(r.s.stockEntries))
	for _, e := range r.s.stockEntries {
		it := entity.StockEntryWithProduct{Entry: e, Product: r.s.products[e.ProductID]}
		all = append(all, &it)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Product.Name < all[j].Product.Name })
	return all, nil
}

// ── Movimentações ────────────────────────────────────────────────────────────

// MovementRepo visão append-only de MovementRepository sobre o Store.
type MovementRepo struct{ s *Store }

// NewMovementRepository constrói a visão do razão.
func NewMovementRepository(s *Store) *MovementRepo { return &MovementRepo{s: s} }

func (r *MovementRepo) Create(movement *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements[movement.ID] = *movement
	return nil
}

func (r *MovementRepo) List(from, to *time.Time) ([]*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []*entity.Movement
	for _, m := range r.s.movements {
		if !inRange(m.OccurredAt, from, to) {
			continue
		}
		cp := m
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].OccurredAt.After(all[j].OccurredAt) })
	return all, nil
}

func (r *MovementRepo) ListWithDetails(from, to *time.Time) ([]*entity.MovementWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []*entity.MovementWithDetails
	for _, m := range r.s.movements {
		if !inRange(m.OccurredAt, from, to) {
			continue
		}
		all = append(all, &entity.MovementWithDetails{
			Movement:    m,
			ProductName: r.s.products[m.ProductID].Name,
			UserName:    r.s.users[m.UserID].Name,
		})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].OccurredAt.After(all[j].OccurredAt) })
	return all, nil
}

func (r *MovementRepo) ExistsForProduct(productID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(*to) {
		return false
	}
	return true
}

// ── Sequências ───────────────────────────────────────────────────────────────

// SequenceRepo alocador de códigos sequenciais em memória.
type SequenceRepo struct{ s *Store }

// NewSequenceRepository constrói o alocador.
func NewSequenceRepository(s *Store) *SequenceRepo { return &SequenceRepo{s: s} }

func (r *SequenceRepo) Next(prefix string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sequences[prefix]++
	return r.s.sequences[prefix], nil
}

// ── Pedidos de compra ────────────────────────────────────────────────────────

// PurchaseOrderRepo visão de PurchaseOrderRepository sobre o Store.
type PurchaseOrderRepo struct{ s *Store }

// NewPurchaseOrderRepository constrói a visão de pedidos.
func NewPurchaseOrderRepository(s *Store) *PurchaseOrderRepo { return &PurchaseOrderRepo{s: s} }

func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.purchaseOrders[order.ID] = *order
	return nil
}

func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if o, ok := r.s.purchaseOrders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (r *PurchaseOrderRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(id)
}

func (r *PurchaseOrderRepo) MarkReceived(order *entity.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchaseOrders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.purchaseOrders[order.ID] = *order
	return nil
}

func (r *PurchaseOrderRepo) ListWithDetails() ([]*entity.PurchaseOrderWithDetails, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []*entity.PurchaseOrderWithDetails
	for _, o := range r.s.purchaseOrders {
		all = append(all, &entity.PurchaseOrderWithDetails{
			PurchaseOrder: o,
			SupplierName:  r.s.suppliers[o.SupplierID].CompanyName,
			ProductName:   r.s.products[o.ProductID].Name,
		})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

// ── Auditoria ────────────────────────────────────────────────────────────────

// AuditLogRepo trilha append-only em memória.
type AuditLogRepo struct{ s *Store }

// NewAuditLogRepository constrói a visão da trilha.
func NewAuditLogRepository(s *Store) *AuditLogRepo { return &AuditLogRepo{s: s} }

func (r *AuditLogRepo) Create(entry *entity.AuditLogEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.auditLogs = append(r.s.auditLogs, *entry)
	return nil
}

func (r *AuditLogRepo) List() ([]*entity.AuditLogEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.AuditLogEntry, 0, len(r.s.auditLogs))
	for i := range r.s.auditLogs {
		cp := r.s.auditLogs[i]
		all = append(all, &cp)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].OccurredAt.After(all[j].OccurredAt) })
	return all, nil
}
