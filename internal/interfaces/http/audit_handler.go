package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viapro/armazem-api/internal/application/audit"
)

// AuditHandler expõe a trilha de auditoria de exclusões (protegido, gestão).
type AuditHandler struct {
	trail *audit.Trail
}

// NewAuditHandler constrói o handler.
func NewAuditHandler(trail *audit.Trail) *AuditHandler {
	return &AuditHandler{trail: trail}
}

// List godoc
// @Summary      Trilha de auditoria
// @Description  Registros append-only das exclusões, mais recentes primeiro.
// @Tags         auditoria
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /logs-auditoria [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	out, err := h.trail.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
