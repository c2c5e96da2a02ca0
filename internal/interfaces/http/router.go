package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/validador-ec/internal/application/dto"
	"github.com/jhoicas/validador-ec/internal/application/usecase"
	"github.com/jhoicas/validador-ec/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName      string
	IdentificationUC *usecase.IdentificationUseCase
	VoucherUC        *usecase.VoucherUseCase
	JWTSecret        string // vacío = rutas de lote, reporte y comprobantes abiertas
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})

	api := app.Group("/api")
	auth := AuthMiddleware(deps.JWTSecret)

	// Identificaciones: validación individual pública; lote y reporte protegidos.
	ids := api.Group("/identifications")
	idHandler := NewIdentificationHandler(deps.IdentificationUC)
	ids.Post("/validate", idHandler.Validate)
	ids.Post("/batch", auth, RequireScope(deps.JWTSecret, jwt.ScopeBatch), idHandler.Batch)
	ids.Post("/report", auth, RequireScope(deps.JWTSecret, jwt.ScopeReport), idHandler.Report)
	ids.Get("/:number", idHandler.Describe)

	// Comprobantes electrónicos (protegido)
	vouchers := api.Group("/vouchers")
	voucherHandler := NewVoucherHandler(deps.VoucherUC)
	vouchers.Post("/validate", auth, RequireScope(deps.JWTSecret, jwt.ScopeVoucher), voucherHandler.Validate)
}
