package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/viapro/armazem-api/internal/application/dto"
	"github.com/viapro/armazem-api/internal/application/reporting"
)

// DashboardHandler trata o resumo e os indicadores do dashboard (protegido).
type DashboardHandler struct {
	uc *reporting.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *reporting.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumo do dashboard
// @Description  Indicadores de armazém e financeiros do mês em curso.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /dashboard/resumo [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Throughput godoc
// @Summary      Fluxo de entradas e saídas do período
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        inicio  query  string  true  "data inicial (RFC3339)"
// @Param        fim     query  string  true  "data final exclusiva (RFC3339)"
// @Success      200  {object}  dto.ThroughputResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /dashboard/fluxo [get]
func (h *DashboardHandler) Throughput(c *fiber.Ctx) error {
	start, err := time.Parse(time.RFC3339, c.Query("inicio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inicio em formato RFC3339"})
	}
	end, err := time.Parse(time.RFC3339, c.Query("fim"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fim em formato RFC3339"})
	}
	out, err := h.uc.GetThroughput(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
