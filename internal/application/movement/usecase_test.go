package movement_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viapro/armazem-api/internal/application/movement"
	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Testes do motor de movimentações sobre o backend em memória.
//
// Invariantes cobertas:
//   - o saldo nunca fica negativo: operações que o levariam abaixo de zero são
//     rejeitadas com ErrInsufficientStock, nunca truncadas;
//   - cada operação grava exatamente um lançamento com código sequencial
//     RE-NNNN (entradas) ou RS-NNNN (saídas);
//   - falha em qualquer passo desfaz a transação inteira (saldo, lançamento e
//     sequência);
//   - saldo final = saldo inicial + soma dos deltas com sinal do razão.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID = "prod-1"
	testUserID    = "user-1"
	testEntryID   = "entry-1"

	testInitialQty = int64(20)
)

type engineFixture struct {
	store  *memory.Store
	engine *movement.Engine
	stock  *memory.StockRepo
	movs   *memory.MovementRepo
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	users := memory.NewUserRepository(store)
	stock := memory.NewStockRepository(store)

	require.NoError(t, products.Create(&entity.Product{
		ID:        testProductID,
		SKU:       "SKU-001",
		Name:      "Cabo de aço 6mm",
		Kind:      entity.ProductKindRawMaterial,
		CostPrice: decimal.NewFromFloat(10.50),
		SalePrice: decimal.NewFromFloat(25.00),
		CreatedAt: time.Now(),
	}))
	require.NoError(t, users.Create(&entity.User{
		ID:    testUserID,
		Name:  "Maria Andrade",
		Role:  "Estoquista",
		Email: "maria@viapro.com.br",
	}))
	require.NoError(t, stock.Create(&entity.StockEntry{
		ID:        testEntryID,
		ProductID: testProductID,
		Quantity:  testInitialQty,
		Status:    entity.StockStatusAvailable,
		UpdatedAt: time.Now(),
	}))

	engine := movement.NewEngine(memory.NewTxRunner(store), products, users, stock)
	return &engineFixture{
		store:  store,
		engine: engine,
		stock:  stock,
		movs:   memory.NewMovementRepository(store),
	}
}

func (f *engineFixture) entryQty(t *testing.T) int64 {
	t.Helper()
	entry, err := f.stock.Get(testEntryID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	return entry.Quantity
}

func (f *engineFixture) createOtherProduct(t *testing.T) string {
	t.Helper()
	products := memory.NewProductRepository(f.store)
	require.NoError(t, products.Create(&entity.Product{
		ID:        "prod-2",
		SKU:       "SKU-002",
		Name:      "Polia de alumínio",
		Kind:      entity.ProductKindFinished,
		CostPrice: decimal.NewFromFloat(32.00),
		SalePrice: decimal.NewFromFloat(59.90),
		CreatedAt: time.Now(),
	}))
	return "prod-2"
}

func (f *engineFixture) saleInput(qty int64) movement.OperationInput {
	return movement.OperationInput{
		ProductID:    testProductID,
		UserID:       testUserID,
		StockEntryID: testEntryID,
		Action:       entity.ActionSale,
		Quantity:     qty,
		Customer:     "Transportadora Silva",
	}
}

// ── Entradas e saídas ────────────────────────────────────────────────────────

func TestRecordMovement_EntradaSomaSaldoEGeraCodigoRE(t *testing.T) {
	f := newEngineFixture(t)

	mov, err := f.engine.RecordMovement(context.Background(), movement.OperationInput{
		ProductID:    testProductID,
		UserID:       testUserID,
		StockEntryID: testEntryID,
		Action:       entity.ActionInbound,
		Quantity:     5,
	})

	require.NoError(t, err)
	assert.Equal(t, "RE-0001", mov.Code, "a primeira entrada deve receber RE-0001")
	assert.Equal(t, int64(5), mov.Quantity, "entradas carregam quantidade positiva")
	assert.True(t, mov.UnitCost.Equal(decimal.NewFromFloat(10.50)),
		"o custo unitário deve ser congelado do produto no momento do registro")
	assert.Equal(t, testInitialQty+5, f.entryQty(t))
}

func TestRecordMovement_VendaSubtraiSaldoEGeraCodigoRS(t *testing.T) {
	f := newEngineFixture(t)

	mov, err := f.engine.RecordMovement(context.Background(), f.saleInput(8))

	require.NoError(t, err)
	assert.Equal(t, "RS-0001", mov.Code, "a primeira saída deve receber RS-0001")
	assert.Equal(t, int64(-8), mov.Quantity, "saídas carregam quantidade negativa")
	assert.Equal(t, "Transportadora Silva", mov.Customer)
	assert.Equal(t, "Cliente: Transportadora Silva", mov.Note,
		"vendas mantêm a convenção legada na observação")
	assert.Equal(t, testInitialQty-8, f.entryQty(t))
}

func TestRecordMovement_VendaComObservacaoComposta(t *testing.T) {
	f := newEngineFixture(t)

	in := f.saleInput(1)
	in.Note = "retirada no balcão"
	mov, err := f.engine.RecordMovement(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Cliente: Transportadora Silva | retirada no balcão", mov.Note)
}

func TestRecordMovement_DevolucaoEhEntrada(t *testing.T) {
	f := newEngineFixture(t)

	mov, err := f.engine.RecordMovement(context.Background(), movement.OperationInput{
		ProductID:    testProductID,
		UserID:       testUserID,
		StockEntryID: testEntryID,
		Action:       entity.ActionReturn,
		Quantity:     3,
	})

	require.NoError(t, err)
	assert.Equal(t, "RE-0001", mov.Code, "devoluções usam o prefixo de entrada")
	assert.Equal(t, int64(3), mov.Quantity)
	assert.Equal(t, testInitialQty+3, f.entryQty(t))
}

func TestRecordMovement_CodigosSequenciaisPorPrefixo(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	in1, err := f.engine.RecordMovement(ctx, movement.OperationInput{
		ProductID: testProductID, UserID: testUserID, StockEntryID: testEntryID,
		Action: entity.ActionInbound, Quantity: 1,
	})
	require.NoError(t, err)
	out1, err := f.engine.RecordMovement(ctx, f.saleInput(1))
	require.NoError(t, err)
	in2, err := f.engine.RecordMovement(ctx, movement.OperationInput{
		ProductID: testProductID, UserID: testUserID, StockEntryID: testEntryID,
		Action: entity.ActionReturn, Quantity: 1,
	})
	require.NoError(t, err)
	out2, err := f.engine.RecordMovement(ctx, f.saleInput(1))
	require.NoError(t, err)

	assert.Equal(t, "RE-0001", in1.Code)
	assert.Equal(t, "RE-0002", in2.Code, "entradas contam na própria sequência")
	assert.Equal(t, "RS-0001", out1.Code)
	assert.Equal(t, "RS-0002", out2.Code, "saídas contam na própria sequência")
}

func TestRecordMovement_AliasLegadoNormalizado(t *testing.T) {
	f := newEngineFixture(t)

	in := f.saleInput(2)
	in.Action = "Saida_Venda"
	mov, err := f.engine.RecordMovement(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, entity.ActionSale, mov.Action,
		"rótulos legados devem ser gravados já no formato canônico")
}

// ── Validações ───────────────────────────────────────────────────────────────

func TestRecordMovement_TipoDesconhecidoRejeitado(t *testing.T) {
	f := newEngineFixture(t)

	in := f.saleInput(1)
	in.Action = "Transferência"
	_, err := f.engine.RecordMovement(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, testInitialQty, f.entryQty(t), "tipo desconhecido não pode tocar o saldo")
}

func TestRecordMovement_QuantidadeNaoPositivaRejeitada(t *testing.T) {
	f := newEngineFixture(t)

	for _, qty := range []int64{0, -3} {
		in := f.saleInput(qty)
		_, err := f.engine.RecordMovement(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "quantidade %d deve ser rejeitada", qty)
	}
}

func TestRecordMovement_VendaSemClienteRejeitada(t *testing.T) {
	f := newEngineFixture(t)

	in := f.saleInput(1)
	in.Customer = ""
	_, err := f.engine.RecordMovement(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venda exige cliente")
}

func TestRecordMovement_DemonstracaoExigeRetornoPrevisto(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	in := movement.OperationInput{
		ProductID:    testProductID,
		UserID:       testUserID,
		StockEntryID: testEntryID,
		Action:       entity.ActionDemoLoan,
		Quantity:     2,
	}
	_, err := f.engine.RecordMovement(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "saída para demonstração exige data de retorno")

	ret := time.Now().AddDate(0, 0, 14)
	in.ExpectedReturn = &ret
	mov, err := f.engine.RecordMovement(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), mov.Quantity)
	require.NotNil(t, mov.ExpectedReturn)
}

func TestRecordMovement_ProdutoInexistente(t *testing.T) {
	f := newEngineFixture(t)

	in := f.saleInput(1)
	in.ProductID = "prod-nao-existe"
	_, err := f.engine.RecordMovement(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordMovement_SaldoInexistente(t *testing.T) {
	f := newEngineFixture(t)

	in := f.saleInput(1)
	in.StockEntryID = "entry-nao-existe"
	_, err := f.engine.RecordMovement(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordMovement_SaldoDeOutroProdutoRejeitado(t *testing.T) {
	f := newEngineFixture(t)
	otherID := f.createOtherProduct(t)

	// Produto existente pareado com o saldo de outro produto: aceitar
	// corromperia o razão, que nomearia um produto enquanto o saldo do outro
	// muda.
	in := f.saleInput(1)
	in.ProductID = otherID
	_, err := f.engine.RecordMovement(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, testInitialQty, f.entryQty(t), "o saldo do outro produto não pode mudar")

	movs, lerr := f.movs.List(nil, nil)
	require.NoError(t, lerr)
	assert.Empty(t, movs, "nenhum lançamento pode nascer de um par produto/saldo inconsistente")
}

func TestSetAbsoluteQuantity_SaldoDeOutroProdutoRejeitado(t *testing.T) {
	f := newEngineFixture(t)
	otherID := f.createOtherProduct(t)

	_, err := f.engine.SetAbsoluteQuantity(context.Background(), movement.AdjustmentInput{
		ProductID:    otherID,
		UserID:       testUserID,
		StockEntryID: testEntryID,
		NewQuantity:  5,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, testInitialQty, f.entryQty(t))
}

// ── Não-negatividade e atomicidade ───────────────────────────────────────────

func TestRecordMovement_SaldoInsuficienteNaoAlteraEstado(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.RecordMovement(context.Background(), f.saleInput(testInitialQty+1))

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, testInitialQty, f.entryQty(t), "a operação rejeitada não pode truncar o saldo")

	movs, lerr := f.movs.List(nil, nil)
	require.NoError(t, lerr)
	assert.Empty(t, movs, "a operação rejeitada não pode deixar lançamento no razão")
}

func TestRecordMovement_FalhaDevolveSequencia(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	_, err := f.engine.RecordMovement(ctx, f.saleInput(testInitialQty+1))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	mov, err := f.engine.RecordMovement(ctx, f.saleInput(1))
	require.NoError(t, err)
	assert.Equal(t, "RS-0001", mov.Code,
		"a transação desfeita não pode consumir o código sequencial")
}

func TestRecordMovement_ConcorrenciaNuncaFicaNegativo(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	// 40 vendas de 1 unidade disputando um saldo de 20: exatamente 20 devem
	// passar e as demais falhar com saldo insuficiente.
	const attempts = 40
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.engine.RecordMovement(ctx, f.saleInput(1))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			insufficient++
		}
	}

	assert.Equal(t, int(testInitialQty), ok)
	assert.Equal(t, attempts-int(testInitialQty), insufficient)
	assert.Equal(t, int64(0), f.entryQty(t))

	movs, err := f.movs.List(nil, nil)
	require.NoError(t, err)
	var sum int64
	for _, m := range movs {
		sum += m.Quantity
	}
	assert.Equal(t, -testInitialQty, sum,
		"saldo final deve igualar saldo inicial + soma dos deltas do razão")
}

// ── Ajuste de inventário ─────────────────────────────────────────────────────

func TestSetAbsoluteQuantity_DeltaPositivo(t *testing.T) {
	f := newEngineFixture(t)

	mov, err := f.engine.SetAbsoluteQuantity(context.Background(), movement.AdjustmentInput{
		ProductID:    testProductID,
		UserID:       testUserID,
		StockEntryID: testEntryID,
		NewQuantity:  32,
		Note:         "contagem cíclica",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ActionAdjustInbound, mov.Action)
	assert.Equal(t, int64(12), mov.Quantity, "delta = novo - atual")
	assert.Equal(t, "RE-0001", mov.Code)
	assert.Equal(t, int64(32), f.entryQty(t))
}

func TestSetAbsoluteQuantity_DeltaNegativo(t *testing.T) {
	f := newEngineFixture(t)

	mov, err := f.engine.SetAbsoluteQuantity(context.Background(), movement.AdjustmentInput{
		ProductID:    testProductID,
		UserID:       testUserID,
		StockEntryID: testEntryID,
		NewQuantity:  4,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ActionAdjustOutbound, mov.Action)
	assert.Equal(t, int64(-16), mov.Quantity)
	assert.Equal(t, "RS-0001", mov.Code)
	assert.Equal(t, int64(4), f.entryQty(t))
}

func TestSetAbsoluteQuantity_DeltaZeroRejeitado(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.SetAbsoluteQuantity(context.Background(), movement.AdjustmentInput{
		ProductID:    testProductID,
		UserID:       testUserID,
		StockEntryID: testEntryID,
		NewQuantity:  testInitialQty,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ajuste sem delta não gera lançamento")
	movs, lerr := f.movs.List(nil, nil)
	require.NoError(t, lerr)
	assert.Empty(t, movs)
}

func TestSetAbsoluteQuantity_NegativoRejeitado(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.SetAbsoluteQuantity(context.Background(), movement.AdjustmentInput{
		ProductID:    testProductID,
		UserID:       testUserID,
		StockEntryID: testEntryID,
		NewQuantity:  -1,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}
