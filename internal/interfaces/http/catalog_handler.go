package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/application/usecase"
	"github.com/jhoicas/siloe-api/internal/domain"
)

// CatalogHandler catálogos simples: tipos de tienda, unidades de medida y
// medios de pago (protegido).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler de catálogos.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateStoreType godoc
// @Summary      Crear tipo de tienda
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StoreTypeRequest  true  "name"
// @Success      201   {object}  dto.StoreTypeRef
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/store-types [post]
func (h *CatalogHandler) CreateStoreType(c *fiber.Ctx) error {
	var in dto.StoreTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateStoreType(in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListStoreTypes godoc
// @Summary      Listar tipos de tienda
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StoreTypeRef
// @Router       /api/store-types [get]
func (h *CatalogHandler) ListStoreTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListStoreTypes()
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// UpdateStoreType godoc
// @Summary      Renombrar tipo de tienda
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del tipo"
// @Param        body  body  dto.StoreTypeRequest  true  "name"
// @Success      200   {object}  dto.StoreTypeRef
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/store-types/{id} [put]
func (h *CatalogHandler) UpdateStoreType(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.StoreTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStoreType(id, in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// DeleteStoreType godoc
// @Summary      Eliminar tipo de tienda
// @Tags         catalogs
// @Security     Bearer
// @Param        id   path  int  true  "ID del tipo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store-types/{id} [delete]
func (h *CatalogHandler) DeleteStoreType(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.DeleteStoreType(id); err != nil {
		return catalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateUnit godoc
// @Summary      Crear unidad de medida
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MeasurementUnitRequest  true  "name, symbol"
// @Success      201   {object}  dto.MeasurementUnitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/measurement-units [post]
func (h *CatalogHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.MeasurementUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateUnit(in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUnits godoc
// @Summary      Listar unidades de medida
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MeasurementUnitResponse
// @Router       /api/measurement-units [get]
func (h *CatalogHandler) ListUnits(c *fiber.Ctx) error {
	out, err := h.uc.ListUnits()
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// DeleteUnit godoc
// @Summary      Eliminar unidad de medida
// @Tags         catalogs
// @Security     Bearer
// @Param        id   path  int  true  "ID de la unidad"
// @Success      204
// @Router       /api/measurement-units/{id} [delete]
func (h *CatalogHandler) DeleteUnit(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.DeleteUnit(id); err != nil {
		return catalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePaymentMethod godoc
// @Summary      Crear medio de pago
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentMethodRequest  true  "name"
// @Success      201   {object}  dto.PaymentMethodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payment-methods [post]
func (h *CatalogHandler) CreatePaymentMethod(c *fiber.Ctx) error {
	var in dto.PaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePaymentMethod(in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPaymentMethods godoc
// @Summary      Listar medios de pago
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [get]
func (h *CatalogHandler) ListPaymentMethods(c *fiber.Ctx) error {
	out, err := h.uc.ListPaymentMethods()
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

func catalogError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el registro ya existe"})
	}
	return internalError(c, err)
}
