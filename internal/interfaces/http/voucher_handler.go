package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/validador-ec/internal/application/usecase"
)

// VoucherHandler valida las identificaciones de comprobantes electrónicos en XML.
type VoucherHandler struct {
	uc *usecase.VoucherUseCase
}

// NewVoucherHandler construye el handler.
func NewVoucherHandler(uc *usecase.VoucherUseCase) *VoucherHandler {
	return &VoucherHandler{uc: uc}
}

// Validate godoc
// @Summary      Validar identificaciones de un comprobante electrónico
// @Tags         vouchers
// @Security     Bearer
// @Accept       application/xml
// @Produce      json
// @Param        body  body  string  true  "XML del comprobante o de la autorización"
// @Success      200   {object}  dto.VoucherResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vouchers/validate [post]
func (h *VoucherHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.Validate(c.UserContext(), c.Body())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
