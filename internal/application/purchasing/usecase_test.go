package purchasing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/application/purchasing"
	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
	"github.com/viapro/armazem-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Testes do ciclo de pedidos de compra: emissão com código PC-NNNN, recebimento
// atômico (pedido Recebido + entrada no estoque na mesma transação) e a regra
// de recebimento único: o segundo recebimento falha com conflito e não
// reaplica a entrada.
// ──────────────────────────────────────────────────────────────────────────────

const (
	poSupplierID = "forn-1"
	poProductID  = "prod-1"
	poUserID     = "user-1"
	poEntryID    = "entry-1"
)

type purchaseFixture struct {
	store  *memory.Store
	uc     *purchasing.UseCase
	stock  *memory.StockRepo
	movs   *memory.MovementRepo
	orders *memory.PurchaseOrderRepo
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	suppliers := memory.NewSupplierRepository(store)
	users := memory.NewUserRepository(store)
	stock := memory.NewStockRepository(store)
	orders := memory.NewPurchaseOrderRepository(store)

	require.NoError(t, suppliers.Create(&entity.Supplier{
		ID:          poSupplierID,
		CompanyName: "Aços Paraná Ltda",
		CNPJ:        "12.345.678/0001-90",
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID:        poProductID,
		SKU:       "SKU-010",
		Name:      "Chapa galvanizada",
		Kind:      entity.ProductKindRawMaterial,
		CostPrice: decimal.NewFromFloat(80.00),
		SalePrice: decimal.NewFromFloat(150.00),
		CreatedAt: time.Now(),
	}))
	require.NoError(t, users.Create(&entity.User{
		ID:   poUserID,
		Name: "Carlos Mota",
		Role: "Estoquista",
	}))
	require.NoError(t, stock.Create(&entity.StockEntry{
		ID:        poEntryID,
		ProductID: poProductID,
		Quantity:  5,
		Status:    entity.StockStatusAvailable,
		UpdatedAt: time.Now(),
	}))

	uc := purchasing.NewUseCase(
		memory.NewTxRunner(store),
		orders,
		suppliers,
		products,
		users,
	)
	return &purchaseFixture{
		store:  store,
		uc:     uc,
		stock:  stock,
		movs:   memory.NewMovementRepository(store),
		orders: orders,
	}
}

func (f *purchaseFixture) createOrder(t *testing.T, qty int64) *dto.PurchaseOrderResponse {
	t.Helper()
	order, err := f.uc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: poSupplierID,
		ProductID:  poProductID,
		Quantity:   qty,
		TotalCost:  decimal.NewFromFloat(80.00).Mul(decimal.NewFromInt(qty)),
	})
	require.NoError(t, err)
	return order
}

func (f *purchaseFixture) entryQty(t *testing.T) int64 {
	t.Helper()
	entry, err := f.stock.Get(poEntryID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	return entry.Quantity
}

// ── Emissão ──────────────────────────────────────────────────────────────────

func TestCreate_GeraCodigoSequencialPendente(t *testing.T) {
	f := newPurchaseFixture(t)

	o1 := f.createOrder(t, 7)
	o2 := f.createOrder(t, 3)

	assert.Equal(t, "PC-0001", o1.Code)
	assert.Equal(t, "PC-0002", o2.Code)
	assert.Equal(t, entity.OrderStatusPending, o1.Status, "pedido nasce Pendente")
	require.NotNil(t, o1.Supplier)
	assert.Equal(t, "Aços Paraná Ltda", o1.Supplier.CompanyName)
}

func TestCreate_QuantidadeInvalida(t *testing.T) {
	f := newPurchaseFixture(t)

	_, err := f.uc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: poSupplierID,
		ProductID:  poProductID,
		Quantity:   0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCreate_FornecedorInexistente(t *testing.T) {
	f := newPurchaseFixture(t)

	_, err := f.uc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: "forn-nao-existe",
		ProductID:  poProductID,
		Quantity:   1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_FalhaNaGravacaoNaoQueimaCodigo(t *testing.T) {
	f := newPurchaseFixture(t)

	// Uma emissão cuja gravação falha precisa desfazer também a sequência,
	// senão os códigos PC ganham buracos.
	failing := purchasing.NewUseCase(
		pedidoIndisponivelRunner{inner: memory.NewTxRunner(f.store)},
		memory.NewPurchaseOrderRepository(f.store),
		memory.NewSupplierRepository(f.store),
		memory.NewProductRepository(f.store),
		memory.NewUserRepository(f.store),
	)
	_, err := failing.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: poSupplierID,
		ProductID:  poProductID,
		Quantity:   4,
	})
	require.Error(t, err)

	order := f.createOrder(t, 2)
	assert.Equal(t, "PC-0001", order.Code, "a emissão que falhou não pode queimar um número")
}

// pedidoIndisponivelRunner entrega a fn um repositório de pedidos cuja
// gravação sempre falha, por cima da transação real.
type pedidoIndisponivelRunner struct{ inner purchasing.TxRunner }

func (r pedidoIndisponivelRunner) RunPurchase(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	return r.inner.RunPurchase(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error {
		return fn(pedidoIndisponivelRepo{orderRepo}, movRepo, stockRepo, seqRepo)
	})
}

type pedidoIndisponivelRepo struct{ repository.PurchaseOrderRepository }

func (pedidoIndisponivelRepo) Create(*entity.PurchaseOrder) error {
	return errors.New("gravação indisponível")
}

// ── Recebimento ──────────────────────────────────────────────────────────────

func TestReceive_AplicaEntradaEMarcaRecebido(t *testing.T) {
	f := newPurchaseFixture(t)
	order := f.createOrder(t, 7)

	received, err := f.uc.Receive(context.Background(), order.ID, poUserID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReceived, received.Status)
	require.NotNil(t, received.ReceivedAt)
	assert.Equal(t, int64(12), f.entryQty(t), "o recebimento soma a quantidade ao saldo Disponível")

	movs, err := f.movs.List(nil, nil)
	require.NoError(t, err)
	require.Len(t, movs, 1, "o recebimento gera exatamente uma movimentação de entrada")
	assert.Equal(t, entity.ActionInbound, movs[0].Action)
	assert.Equal(t, "RE-0001", movs[0].Code)
	assert.Equal(t, int64(7), movs[0].Quantity)
	assert.Equal(t, "Recebimento do pedido PC-0001", movs[0].Note)
	assert.Equal(t, poUserID, movs[0].UserID)
}

func TestReceive_SegundoRecebimentoConflita(t *testing.T) {
	f := newPurchaseFixture(t)
	order := f.createOrder(t, 7)

	_, err := f.uc.Receive(context.Background(), order.ID, poUserID)
	require.NoError(t, err)

	_, err = f.uc.Receive(context.Background(), order.ID, poUserID)
	assert.ErrorIs(t, err, domain.ErrConflict, "Recebido é terminal")

	assert.Equal(t, int64(12), f.entryQty(t), "o segundo recebimento não pode reaplicar a entrada")
	movs, lerr := f.movs.List(nil, nil)
	require.NoError(t, lerr)
	assert.Len(t, movs, 1)
}

func TestReceive_PedidoInexistente(t *testing.T) {
	f := newPurchaseFixture(t)

	_, err := f.uc.Receive(context.Background(), "pedido-nao-existe", poUserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceive_UsuarioInexistente(t *testing.T) {
	f := newPurchaseFixture(t)
	order := f.createOrder(t, 2)

	_, err := f.uc.Receive(context.Background(), order.ID, "user-nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceive_SemSaldoAbertoDesfazTransacao(t *testing.T) {
	f := newPurchaseFixture(t)

	// Produto sem nenhum saldo Disponível aberto: o recebimento falha e o
	// pedido precisa continuar Pendente para nova tentativa.
	products := memory.NewProductRepository(f.store)
	require.NoError(t, products.Create(&entity.Product{
		ID:        "prod-2",
		SKU:       "SKU-020",
		Name:      "Parafuso M8",
		Kind:      entity.ProductKindRawMaterial,
		CostPrice: decimal.NewFromFloat(0.50),
		CreatedAt: time.Now(),
	}))
	order, err := f.uc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		SupplierID: poSupplierID,
		ProductID:  "prod-2",
		Quantity:   100,
	})
	require.NoError(t, err)

	_, err = f.uc.Receive(context.Background(), order.ID, poUserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, gerr := f.orders.GetByID(order.ID)
	require.NoError(t, gerr)
	require.NotNil(t, stored)
	assert.Equal(t, entity.OrderStatusPending, stored.Status,
		"falha no recebimento não pode deixar o pedido Recebido")
}
