package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tweakwise-api/internal/application/dto"
	"github.com/jhoicas/tweakwise-api/internal/application/usecase"
	"github.com/jhoicas/tweakwise-api/internal/domain"
)

// FeedHandler administración de feeds Tweakwise (protegido).
type FeedHandler struct {
	uc *usecase.FeedUseCase
}

// NewFeedHandler construye el handler.
func NewFeedHandler(uc *usecase.FeedUseCase) *FeedHandler {
	return &FeedHandler{uc: uc}
}

// Create godoc
// @Summary      Crear feed
// @Tags         feeds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFeedRequest  true  "Datos del feed"
// @Success      201   {object}  dto.FeedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/feeds [post]
func (h *FeedHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFeedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if verr := validateStruct(in); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return feedError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener feed por ID
// @Tags         feeds
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del feed"
// @Success      200  {object}  dto.FeedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/feeds/{id} [get]
func (h *FeedHandler) GetByID(c *fiber.Ctx) error {
	id, verr := paramUUID(c, "id")
	if verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return feedError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "feed no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar feeds
// @Tags         feeds
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.FeedListResponse
// @Router       /api/feeds [get]
func (h *FeedHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.uc.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return feedError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar feed
// @Tags         feeds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del feed"
// @Param        body  body  dto.UpdateFeedRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.FeedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/feeds/{id} [put]
func (h *FeedHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFeedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if verr := validateStruct(in); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	id, verr := paramUUID(c, "id")
	if verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return feedError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "feed no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar feed
// @Tags         feeds
// @Security     Bearer
// @Param        id   path  string  true  "ID del feed"
// @Success      204
// @Router       /api/feeds/{id} [delete]
func (h *FeedHandler) Delete(c *fiber.Ctx) error {
	id, verr := paramUUID(c, "id")
	if verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return feedError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func feedError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDomainTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DOMAIN_TAKEN", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "feed no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
