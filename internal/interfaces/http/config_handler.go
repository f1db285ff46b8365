package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printhub-api/internal/application/dto"
	"github.com/jhoicas/printhub-api/internal/application/usecase"
)

// ConfigHandler maneja el catálogo de precios: reglas de impresión y
// tipos de empaste. La lectura es pública; la escritura es de admin.
type ConfigHandler struct {
	rules    *usecase.PricingRuleUseCase
	bindings *usecase.BindingTypeUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(rules *usecase.PricingRuleUseCase, bindings *usecase.BindingTypeUseCase) *ConfigHandler {
	return &ConfigHandler{rules: rules, bindings: bindings}
}

// ListPricingRules godoc
// @Summary      Listar reglas de precio (en orden de creación)
// @Tags         config
// @Produce      json
// @Success      200  {array}  dto.PricingRuleResponse
// @Router       /api/config/pricing [get]
func (h *ConfigHandler) ListPricingRules(c *fiber.Ctx) error {
	out, err := h.rules.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// CreatePricingRule godoc
// @Summary      Crear regla de precio (solo admin)
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PricingRuleRequest  true  "Regla"
// @Success      201   {object}  dto.PricingRuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/config/pricing [post]
func (h *ConfigHandler) CreatePricingRule(c *fiber.Ctx) error {
	var in dto.PricingRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.rules.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePricingRule godoc
// @Summary      Actualizar regla de precio (solo admin)
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la regla"
// @Param        body  body  dto.PricingRuleRequest  true  "Regla"
// @Success      200   {object}  dto.PricingRuleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/config/pricing/{id} [put]
func (h *ConfigHandler) UpdatePricingRule(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.PricingRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.rules.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DeletePricingRule godoc
// @Summary      Eliminar regla de precio (solo admin)
// @Tags         config
// @Security     Bearer
// @Param        id  path  string  true  "ID de la regla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/config/pricing/{id} [delete]
func (h *ConfigHandler) DeletePricingRule(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.rules.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListBindingTypes godoc
// @Summary      Listar tipos de empaste
// @Tags         config
// @Produce      json
// @Success      200  {array}  dto.BindingTypeResponse
// @Router       /api/config/bindings [get]
func (h *ConfigHandler) ListBindingTypes(c *fiber.Ctx) error {
	out, err := h.bindings.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// CreateBindingType godoc
// @Summary      Crear tipo de empaste (solo admin)
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BindingTypeRequest  true  "Tipo de empaste"
// @Success      201   {object}  dto.BindingTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/config/bindings [post]
func (h *ConfigHandler) CreateBindingType(c *fiber.Ctx) error {
	var in dto.BindingTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.bindings.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateBindingType godoc
// @Summary      Actualizar tipo de empaste (solo admin)
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tipo de empaste"
// @Param        body  body  dto.BindingTypeRequest  true  "Tipo de empaste"
// @Success      200   {object}  dto.BindingTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/config/bindings/{id} [put]
func (h *ConfigHandler) UpdateBindingType(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.BindingTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.bindings.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteBindingType godoc
// @Summary      Eliminar tipo de empaste (solo admin)
// @Tags         config
// @Security     Bearer
// @Param        id  path  string  true  "ID del tipo de empaste"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/config/bindings/{id} [delete]
func (h *ConfigHandler) DeleteBindingType(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.bindings.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
