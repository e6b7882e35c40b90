package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/viapro/armazem-api/internal/domain"
	"github.com/viapro/armazem-api/internal/domain/entity"
	"github.com/viapro/armazem-api/internal/domain/repository"
)

// Engine é a única autoridade que traduz uma operação do usuário em (a) um
// delta com sinal no saldo de estoque e (b) um lançamento imutável no razão.
// Toda aplicação acontece dentro de uma transação com bloqueio de linha
// (SELECT FOR UPDATE) sobre o saldo, de modo que movimentações concorrentes
// sobre o mesmo registro nunca percam atualização.
type Engine struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	stockRepo   repository.StockRepository
}

// NewEngine constrói o motor de movimentações.
func NewEngine(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	stockRepo repository.StockRepository,
) *Engine {
	return &Engine{
		txRunner:    txRunner,
		productRepo: productRepo,
		userRepo:    userRepo,
		stockRepo:   stockRepo,
	}
}

// OperationInput entrada de RecordMovement. Quantity é sempre positiva; o
// sinal vem do tipo de ação. Customer é obrigatório em vendas;
// ExpectedReturn em saídas para demonstração.
type OperationInput struct {
	ProductID      string
	UserID         string
	StockEntryID   string
	Action         string
	Quantity       int64
	Customer       string
	ExpectedReturn *time.Time
	Note           string
}

// AdjustmentInput entrada de SetAbsoluteQuantity: o saldo final desejado em
// vez de um delta.
type AdjustmentInput struct {
	ProductID    string
	UserID       string
	StockEntryID string
	NewQuantity  int64
	Note         string
}

// RecordMovement valida a operação, aplica o delta com sinal sobre o saldo e
// grava o lançamento com código sequencial, tudo em uma única transação.
//
// Validações, na ordem: tipo conhecido; quantidade > 0; campos obrigatórios do
// tipo; produto, usuário e saldo existentes. Dentro da transação, saídas ainda
// exigem quantidade <= saldo atual (lido sob bloqueio de linha).
func (e *Engine) RecordMovement(ctx context.Context, input OperationInput) (*entity.Movement, error) {
	action, err := entity.NormalizeAction(input.Action)
	if err != nil {
		return nil, err
	}
	sign, _ := entity.ActionSign(action)

	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.StockEntryID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if action == entity.ActionSale && input.Customer == "" {
		return nil, domain.ErrInvalidInput
	}
	if action == entity.ActionDemoLoan && input.ExpectedReturn == nil {
		return nil, domain.ErrInvalidInput
	}

	product, err := e.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	user, err := e.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:             uuid.New().String(),
		ProductID:      input.ProductID,
		StockEntryID:   input.StockEntryID,
		UserID:         input.UserID,
		Action:         action,
		Quantity:       int64(sign) * input.Quantity,
		UnitCost:       product.CostPrice,
		Customer:       input.Customer,
		ExpectedReturn: input.ExpectedReturn,
		Note:           composeNote(action, input.Customer, input.Note),
		OccurredAt:     now,
	}

	err = e.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error {
		return applyMovement(movRepo, stockRepo, seqRepo, mov, now)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// SetAbsoluteQuantity registra um ajuste de inventário para um saldo final
// absoluto: calcula delta = novo - atual e classifica o tipo pelo sinal.
// Delta zero é rejeitado (não haveria lançamento a fazer).
func (e *Engine) SetAbsoluteQuantity(ctx context.Context, input AdjustmentInput) (*entity.Movement, error) {
	if input.NewQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.StockEntryID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := e.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	user, err := e.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var mov *entity.Movement

	err = e.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		seqRepo repository.SequenceRepository,
	) error {
		// O delta só pode ser calculado com o saldo lido sob bloqueio, senão
		// dois ajustes concorrentes partiriam do mesmo valor.
		entry, err := stockRepo.GetForUpdate(input.StockEntryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		delta := input.NewQuantity - entry.Quantity
		if delta == 0 {
			return domain.ErrInvalidInput
		}
		action := entity.ActionAdjustInbound
		if delta < 0 {
			action = entity.ActionAdjustOutbound
		}
		mov = &entity.Movement{
			ID:           uuid.New().String(),
			ProductID:    input.ProductID,
			StockEntryID: input.StockEntryID,
			UserID:       input.UserID,
			Action:       action,
			Quantity:     delta,
			UnitCost:     product.CostPrice,
			Note:         input.Note,
			OccurredAt:   now,
		}
		return applyLocked(movRepo, stockRepo, seqRepo, mov, entry, now)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RecordInboundInTx aplica uma entrada usando os repositórios da transação do
// chamador (usado pelo recebimento de pedidos de compra, que precisa gravar o
// pedido e a movimentação como uma unidade).
func RecordInboundInTx(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	seqRepo repository.SequenceRepository,
	product *entity.Product,
	entry *entity.StockEntry,
	userID string,
	quantity int64,
	note string,
	now time.Time,
) (*entity.Movement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	mov := &entity.Movement{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		StockEntryID: entry.ID,
		UserID:       userID,
		Action:       entity.ActionInbound,
		Quantity:     quantity,
		UnitCost:     product.CostPrice,
		Note:         note,
		OccurredAt:   now,
	}
	if err := applyLocked(movRepo, stockRepo, seqRepo, mov, entry, now); err != nil {
		return nil, err
	}
	return mov, nil
}

// applyMovement bloqueia o saldo e delega em applyLocked.
func applyMovement(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	seqRepo repository.SequenceRepository,
	mov *entity.Movement,
	now time.Time,
) error {
	entry, err := stockRepo.GetForUpdate(mov.StockEntryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return applyLocked(movRepo, stockRepo, seqRepo, mov, entry, now)
}

// applyLocked aplica o delta sobre um saldo já bloqueado, aloca o código
// sequencial e grava o lançamento. A invariante de não-negatividade é checada
// aqui: uma operação que levaria o saldo abaixo de zero é rejeitada, nunca
// truncada. O saldo precisa pertencer ao produto do lançamento, senão o razão
// registraria um produto enquanto o saldo de outro é alterado.
func applyLocked(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	seqRepo repository.SequenceRepository,
	mov *entity.Movement,
	entry *entity.StockEntry,
	now time.Time,
) error {
	if entry.ProductID != mov.ProductID {
		return domain.ErrInvalidInput
	}
	newQty := entry.Quantity + mov.Quantity
	if newQty < 0 {
		return domain.ErrInsufficientStock
	}
	if err := stockRepo.UpdateQuantity(entry.ID, newQty); err != nil {
		return err
	}

	prefix, err := entity.ActionCodePrefix(mov.Action)
	if err != nil {
		return err
	}
	seq, err := seqRepo.Next(prefix)
	if err != nil {
		return err
	}
	mov.Code = fmt.Sprintf("%s-%04d", prefix, seq)
	mov.OccurredAt = now
	return movRepo.Create(mov)
}

// composeNote mantém a convenção legada "Cliente: <nome> | <obs>" na
// observação das vendas, para leitores antigos do histórico. O nome também é
// gravado estruturado em Movement.Customer.
func composeNote(action, customer, note string) string {
	if action != entity.ActionSale || customer == "" {
		return note
	}
	if note == "" {
		return "Cliente: " + customer
	}
	return "Cliente: " + customer + " | " + note
}
