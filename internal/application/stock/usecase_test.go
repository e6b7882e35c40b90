package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/application/stock"
	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Testes da abertura de saldos: o registro e a movimentação de saldo inicial
// são gravados como uma unidade, e uma falha na movimentação não deixa um
// saldo zerado órfão no armazém.
// ──────────────────────────────────────────────────────────────────────────────

const (
	seProductID  = "prod-1"
	seLocationID = "loc-1"
	seUserID     = "user-1"
)

type stockFixture struct {
	store *memory.Store
	uc    *stock.UseCase
	stock *memory.StockRepo
	movs  *memory.MovementRepo
}

func newStockFixture(t *testing.T) *stockFixture {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	users := memory.NewUserRepository(store)
	locations := memory.NewLocationRepository(store)
	entries := memory.NewStockRepository(store)

	require.NoError(t, products.Create(&entity.Product{
		ID:        seProductID,
		SKU:       "SKU-001",
		Name:      "Cabo de aço 6mm",
		Kind:      entity.ProductKindRawMaterial,
		CostPrice: decimal.NewFromFloat(10.50),
		SalePrice: decimal.NewFromFloat(25.00),
		CreatedAt: time.Now(),
	}))
	require.NoError(t, users.Create(&entity.User{
		ID:   seUserID,
		Name: "Maria Andrade",
		Role: "Estoquista",
	}))
	require.NoError(t, locations.Create(&entity.Location{
		ID:   seLocationID,
		Code: "A-01-02",
		Zone: "A",
	}))

	uc := stock.NewUseCase(memory.NewTxRunner(store), entries, locations, products, users)
	return &stockFixture{
		store: store,
		uc:    uc,
		stock: entries,
		movs:  memory.NewMovementRepository(store),
	}
}

func (f *stockFixture) entryRequest(qty int64) dto.CreateStockEntryRequest {
	return dto.CreateStockEntryRequest{
		ProductID:       seProductID,
		LocationID:      seLocationID,
		InitialQuantity: qty,
		UserID:          seUserID,
	}
}

// ── Abertura ─────────────────────────────────────────────────────────────────

func TestCreateEntry_SaldoInicialEntraComoMovimentacao(t *testing.T) {
	f := newStockFixture(t)

	entry, err := f.uc.CreateEntry(context.Background(), f.entryRequest(15))
	require.NoError(t, err)

	assert.Equal(t, int64(15), entry.Quantity)
	assert.Equal(t, entity.StockStatusAvailable, entry.Status, "status omitido vira Disponível")

	stored, gerr := f.stock.Get(entry.ID)
	require.NoError(t, gerr)
	require.NotNil(t, stored)
	assert.Equal(t, int64(15), stored.Quantity)

	movs, lerr := f.movs.List(nil, nil)
	require.NoError(t, lerr)
	require.Len(t, movs, 1, "o saldo inicial precisa estar explicado no razão")
	assert.Equal(t, entity.ActionInbound, movs[0].Action)
	assert.Equal(t, "RE-0001", movs[0].Code)
	assert.Equal(t, "Saldo inicial de cadastro", movs[0].Note)
}

func TestCreateEntry_SemSaldoInicialNaoMovimenta(t *testing.T) {
	f := newStockFixture(t)

	req := f.entryRequest(0)
	req.UserID = ""
	entry, err := f.uc.CreateEntry(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(0), entry.Quantity)

	movs, lerr := f.movs.List(nil, nil)
	require.NoError(t, lerr)
	assert.Empty(t, movs, "saldo zerado não gera lançamento")
}

func TestCreateEntry_QuantidadeNegativaRejeitada(t *testing.T) {
	f := newStockFixture(t)

	_, err := f.uc.CreateEntry(context.Background(), f.entryRequest(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCreateEntry_UsuarioInexistenteNaoDeixaSaldoOrfao(t *testing.T) {
	f := newStockFixture(t)

	req := f.entryRequest(10)
	req.UserID = "user-nao-existe"
	_, err := f.uc.CreateEntry(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	entries, lerr := f.stock.List()
	require.NoError(t, lerr)
	assert.Empty(t, entries, "a abertura que falhou não pode deixar um saldo zerado para trás")

	movs, merr := f.movs.List(nil, nil)
	require.NoError(t, merr)
	assert.Empty(t, movs)
}

func TestCreateEntry_ProdutoInexistente(t *testing.T) {
	f := newStockFixture(t)

	req := f.entryRequest(5)
	req.ProductID = "prod-nao-existe"
	_, err := f.uc.CreateEntry(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
