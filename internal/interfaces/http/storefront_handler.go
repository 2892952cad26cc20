package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tweakwise-api/internal/application/dto"
	"github.com/jhoicas/tweakwise-api/internal/application/render"
	"github.com/jhoicas/tweakwise-api/internal/domain"
	"github.com/jhoicas/tweakwise-api/pkg/logger"
)

// StorefrontHandler expone el render de configuración Tweakwise para el storefront (público).
type StorefrontHandler struct {
	uc  *render.RenderConfigUseCase
	log *logger.Logger
}

// NewStorefrontHandler construye el handler.
func NewStorefrontHandler(uc *render.RenderConfigUseCase, log *logger.Logger) *StorefrontHandler {
	return &StorefrontHandler{uc: uc, log: log}
}

// RenderConfig godoc
// @Summary      Configuración Tweakwise de una página
// @Tags         storefront
// @Produce      json
// @Param        domainId   query  string  true   "ID del dominio del canal de venta"
// @Param        pageType   query  string  false  "generic | product"  default(generic)
// @Param        productId  query  string  false  "Producto (obligatorio si pageType=product)"
// @Param        locale     query  string  false  "Locale de la petición; por defecto el del dominio"
// @Success      200  {object}  dto.RenderConfigResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storefront/render-config [get]
func (h *StorefrontHandler) RenderConfig(c *fiber.Ctx) error {
	var in dto.RenderConfigRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if in.PageType == "" {
		in.PageType = string(render.PageGeneric)
	}
	if verr := validateStruct(in); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}

	out, err := h.uc.Render(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		h.log.Error().Err(err).Str("domain_id", in.DomainID).Msg("render de configuración Tweakwise")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
