package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/application/usecase"
	"github.com/jhoicas/siloe-api/internal/domain"
)

// RouteHandler CRUD de rutas de reparto y manifiesto en PDF (protegido).
type RouteHandler struct {
	uc *usecase.RouteUseCase
}

// NewRouteHandler construye el handler de rutas.
func NewRouteHandler(uc *usecase.RouteUseCase) *RouteHandler {
	return &RouteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ruta de reparto
// @Tags         routes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RouteRequest  true  "name, description"
// @Success      201   {object}  dto.RouteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/routes [post]
func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var in dto.RouteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return routeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar rutas
// @Tags         routes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RouteResponse
// @Router       /api/routes [get]
func (h *RouteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return routeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ruta por ID
// @Tags         routes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la ruta"
// @Success      200  {object}  dto.RouteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/routes/{id} [get]
func (h *RouteHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return routeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ruta
// @Tags         routes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la ruta"
// @Param        body  body  dto.RouteRequest  true  "name, description"
// @Success      200   {object}  dto.RouteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/routes/{id} [put]
func (h *RouteHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.RouteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return routeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ruta (sus tiendas quedan huérfanas)
// @Tags         routes
// @Security     Bearer
// @Param        id   path  int  true  "ID de la ruta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/routes/{id} [delete]
func (h *RouteHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return routeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Manifest godoc
// @Summary      Descargar el manifiesto de reparto de la ruta en PDF
// @Tags         routes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la ruta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/routes/{id}/manifest [get]
func (h *RouteHandler) Manifest(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	pdfBytes, err := h.uc.Manifest(c.Context(), id)
	if err != nil {
		return routeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="manifiesto.pdf"`)
	return c.Send(pdfBytes)
}

func routeError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una ruta con ese nombre"})
	}
	return internalError(c, err)
}
