package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/application/stock"
)

// StockHandler trata a consulta do armazém e a abertura de saldos (protegido).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar saldos de estoque
// @Description  Saldos com produto e local embutidos; critico = Disponível com quantidade < 10.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        busca  query  string  false  "filtra por nome ou SKU do produto"
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /estoque [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("busca"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Abrir saldo de estoque
// @Description  O saldo inicial entra como movimentação de entrada, nunca como escrita direta.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockEntryRequest  true  "produto, local, quantidade inicial"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /estoque [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.UserID == "" {
		in.UserID = GetUserID(c)
	}
	entry, err := h.uc.CreateEntry(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         entry.ID,
		"produtoId":  entry.ProductID,
		"quantidade": entry.Quantity,
		"status":     entry.Status,
	})
}
