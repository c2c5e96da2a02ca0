package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/validador-ec/internal/application/dto"
	"github.com/jhoicas/validador-ec/internal/application/usecase"
)

// IdentificationHandler maneja la validación de cédulas y RUC.
type IdentificationHandler struct {
	uc *usecase.IdentificationUseCase
}

// NewIdentificationHandler construye el handler.
func NewIdentificationHandler(uc *usecase.IdentificationUseCase) *IdentificationHandler {
	return &IdentificationHandler{uc: uc}
}

// Validate godoc
// @Summary      Validar cédula o RUC
// @Tags         identifications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateRequest  true  "Número y tipo opcional"
// @Success      200   {object}  dto.ValidationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/identifications/validate [post]
func (h *IdentificationHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Validate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Describe godoc
// @Summary      Validar y descomponer una identificación
// @Tags         identifications
// @Produce      json
// @Param        number  path  string  true  "Cédula o RUC"
// @Success      200     {object}  dto.DetailsResponse
// @Router       /api/identifications/{number} [get]
func (h *IdentificationHandler) Describe(c *fiber.Ctx) error {
	return c.JSON(h.uc.Describe(c.UserContext(), c.Params("number")))
}

// Batch godoc
// @Summary      Validar un lote de identificaciones
// @Tags         identifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchRequest  true  "Números a validar"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/identifications/batch [post]
func (h *IdentificationHandler) Batch(c *fiber.Ctx) error {
	var in dto.BatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Batch(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de un lote de identificaciones
// @Tags         identifications
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.BatchRequest  true  "Números a validar"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/identifications/report [post]
func (h *IdentificationHandler) Report(c *fiber.Ctx) error {
	var in dto.BatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdf, batch, err := h.uc.Report(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="validacion-`+strings.ToLower(batch.BatchID)+`.pdf"`)
	return c.Send(pdf)
}
