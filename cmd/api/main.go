package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/validador-ec/internal/application/usecase"
	infrapdf "github.com/jhoicas/validador-ec/internal/infrastructure/pdf"
	infrasri "github.com/jhoicas/validador-ec/internal/infrastructure/sri"
	httpRouter "github.com/jhoicas/validador-ec/internal/interfaces/http"
	"github.com/jhoicas/validador-ec/pkg/config"
	"github.com/jhoicas/validador-ec/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("auth", cfg.JWT.Enabled()).
		Int("batch_limit", cfg.SRI.BatchLimit).
		Msg("iniciando aplicación")

	// PDF: reporte de validación por lote
	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	identificationUC := usecase.NewIdentificationUseCase(cfg.SRI.BatchLimit, reportGenerator, log)

	// Comprobantes electrónicos SRI (XML)
	voucherUC := usecase.NewVoucherUseCase(infrasri.NewVoucherReader(), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.SRI.SwaggerPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.SRI.SwaggerPath,
			Path:     "docs",
			Title:    "Validador EC API",
		}))
	} else {
		log.Warn().Str("path", cfg.SRI.SwaggerPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:      cfg.App.Name,
		IdentificationUC: identificationUC,
		VoucherUC:        voucherUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
