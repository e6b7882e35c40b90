package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viapro/armazem-api/internal/application/catalog"
	"github.com/viapro/armazem-api/internal/application/dto"
)

// CatalogHandler trata os dados de referência: categorias, fornecedores,
// locais e usuários (protegido).
type CatalogHandler struct {
	categories *catalog.CategoryUseCase
	suppliers  *catalog.SupplierUseCase
	locations  *catalog.LocationUseCase
	users      *catalog.UserUseCase
}

// NewCatalogHandler constrói o handler.
func NewCatalogHandler(
	categories *catalog.CategoryUseCase,
	suppliers *catalog.SupplierUseCase,
	locations *catalog.LocationUseCase,
	users *catalog.UserUseCase,
) *CatalogHandler {
	return &CatalogHandler{categories: categories, suppliers: suppliers, locations: locations, users: users}
}

func actorFrom(c *fiber.Ctx) catalog.Actor {
	return catalog.Actor{ID: GetUserID(c), Name: GetUserName(c), Role: GetRole(c)}
}

func parseBody[T any](c *fiber.Ctx) (T, bool) {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	return in, true
}

const invalidBody = "corpo inválido"

// ── Categorias ───────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	in, ok := parseBody[dto.CreateCategoryRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: invalidBody})
	}
	out, err := h.categories.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.categories.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.Params("id"), actorFrom(c), c.Query("motivo")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Fornecedores ─────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	in, ok := parseBody[dto.SupplierRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: invalidBody})
	}
	out, err := h.suppliers.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) UpdateSupplier(c *fiber.Ctx) error {
	in, ok := parseBody[dto.SupplierRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: invalidBody})
	}
	out, err := h.suppliers.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.suppliers.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteSupplier(c *fiber.Ctx) error {
	if err := h.suppliers.Delete(c.Params("id"), actorFrom(c), c.Query("motivo")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Locais ───────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateLocation(c *fiber.Ctx) error {
	in, ok := parseBody[dto.LocationRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: invalidBody})
	}
	out, err := h.locations.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) UpdateLocation(c *fiber.Ctx) error {
	in, ok := parseBody[dto.LocationRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: invalidBody})
	}
	out, err := h.locations.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	out, err := h.locations.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteLocation(c *fiber.Ctx) error {
	if err := h.locations.Delete(c.Params("id"), actorFrom(c), c.Query("motivo")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Usuários ─────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateUser(c *fiber.Ctx) error {
	in, ok := parseBody[dto.CreateUserRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: invalidBody})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e senha são obrigatórios"})
	}
	out, err := h.users.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) UpdateUser(c *fiber.Ctx) error {
	in, ok := parseBody[dto.UpdateUserRequest](c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: invalidBody})
	}
	out, err := h.users.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.users.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Params("id"), actorFrom(c), c.Query("motivo")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
