package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/application/movement"
	"github.com/viapro/armazem-api/internal/application/reporting"
	"github.com/viapro/armazem-api/internal/domain/entity"
)

// MovementHandler trata o registro de movimentações e o histórico (protegido).
// Além da rota genérica /operacao, mantém as rotas legadas por tipo que
// versões antigas da UI ainda chamam.
type MovementHandler struct {
	engine  *movement.Engine
	history *reporting.HistoryUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(engine *movement.Engine, history *reporting.HistoryUseCase) *MovementHandler {
	return &MovementHandler{engine: engine, history: history}
}

// Operation godoc
// @Summary      Registrar movimentação
// @Description  Aceita os seis tipos de ação canônicos e os identificadores legados.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OperationRequest  true  "dados da operação"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /movimentacoes/operacao [post]
func (h *MovementHandler) Operation(c *fiber.Ctx) error {
	var in dto.OperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	return h.record(c, movement.OperationInput{
		ProductID:      in.ProductID,
		UserID:         userOr(c, in.UserID),
		StockEntryID:   in.StockEntryID,
		Action:         in.Action,
		Quantity:       in.Quantity,
		Customer:       in.Customer,
		ExpectedReturn: in.ExpectedReturn,
		Note:           in.Note,
	})
}

// Inbound rota legada POST /movimentacoes/entrada.
func (h *MovementHandler) Inbound(c *fiber.Ctx) error {
	var in dto.InboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	return h.record(c, movement.OperationInput{
		ProductID:    in.ProductID,
		UserID:       userOr(c, in.UserID),
		StockEntryID: in.StockEntryID,
		Action:       entity.ActionInbound,
		Quantity:     in.Quantity,
		Note:         in.Note,
	})
}

// SaleOutbound rota legada POST /movimentacoes/saida-venda.
func (h *MovementHandler) SaleOutbound(c *fiber.Ctx) error {
	return h.outbound(c, entity.ActionSale)
}

// DemoOutbound rota legada POST /movimentacoes/saida-demonstracao.
func (h *MovementHandler) DemoOutbound(c *fiber.Ctx) error {
	return h.outbound(c, entity.ActionDemoLoan)
}

func (h *MovementHandler) outbound(c *fiber.Ctx, action string) error {
	var in dto.OutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	return h.record(c, movement.OperationInput{
		ProductID:      in.ProductID,
		UserID:         userOr(c, in.UserID),
		StockEntryID:   in.StockEntryID,
		Action:         action,
		Quantity:       in.Quantity,
		Customer:       in.Customer,
		ExpectedReturn: in.ExpectedReturn,
		Note:           in.Note,
	})
}

// Adjust godoc
// @Summary      Ajuste absoluto de inventário
// @Description  Recebe o saldo final contado; o motor calcula o delta e registra o ajuste.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "saldo final desejado"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /movimentacoes/ajuste [post]
func (h *MovementHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	mov, err := h.engine.SetAbsoluteQuantity(c.Context(), movement.AdjustmentInput{
		ProductID:    in.ProductID,
		UserID:       userOr(c, in.UserID),
		StockEntryID: in.StockEntryID,
		NewQuantity:  in.NewQuantity,
		Note:         in.Note,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// List godoc
// @Summary      Histórico de movimentações
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        inicio  query  string  false  "data inicial (RFC3339)"
// @Param        fim     query  string  false  "data final exclusiva (RFC3339)"
// @Success      200     {array}  dto.MovementResponse
// @Router       /movimentacoes [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datas em formato RFC3339"})
	}
	out, err := h.history.List(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Relatório de movimentações em PDF
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      application/pdf
// @Param        inicio  query  string  false  "data inicial (RFC3339)"
// @Param        fim     query  string  false  "data final exclusiva (RFC3339)"
// @Success      200  {file}  binary
// @Router       /movimentacoes/relatorio.pdf [get]
func (h *MovementHandler) ReportPDF(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datas em formato RFC3339"})
	}
	pdf, err := h.history.ReportPDF(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimentacoes.pdf"`)
	return c.Send(pdf)
}

func (h *MovementHandler) record(c *fiber.Ctx, input movement.OperationInput) error {
	mov, err := h.engine.RecordMovement(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		Code:           m.Code,
		ProductID:      m.ProductID,
		StockEntryID:   m.StockEntryID,
		Action:         m.Action,
		Quantity:       m.Quantity,
		UnitCost:       m.UnitCost,
		Customer:       m.Customer,
		ExpectedReturn: m.ExpectedReturn,
		Note:           m.Note,
		OccurredAt:     m.OccurredAt,
	}
}

// userOr usa o usuário informado no corpo ou, na falta, o do token.
func userOr(c *fiber.Ctx, bodyUserID string) string {
	if bodyUserID != "" {
		return bodyUserID
	}
	return GetUserID(c)
}

// parsePeriod lê inicio/fim opcionais em RFC3339.
func parsePeriod(c *fiber.Ctx) (from, to *time.Time, err error) {
	if s := c.Query("inicio"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if s := c.Query("fim"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}
