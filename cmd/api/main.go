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

	"github.com/jhoicas/settlement-admin/internal/application/auth"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
	"github.com/jhoicas/settlement-admin/internal/domain/repository"
	"github.com/jhoicas/settlement-admin/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/settlement-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/settlement-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/settlement-admin/internal/infrastructure/qrcode"
	"github.com/jhoicas/settlement-admin/internal/infrastructure/webadmin"
	"github.com/jhoicas/settlement-admin/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/settlement-admin/internal/interfaces/http"
	"github.com/jhoicas/settlement-admin/pkg/config"
	"github.com/jhoicas/settlement-admin/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

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
		Str("webadmin", cfg.WebAdmin.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Preferencias de UI: PostgreSQL si está configurado, memoria si no.
	var prefs repository.PreferenceRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo := postgres.NewPreferenceRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("migración de preferencias")
		}
		prefs = repo
	} else {
		log.Warn().Msg("sin base de datos: preferencias en memoria")
		prefs = memory.NewPreferenceRepository()
	}

	client := webadmin.New(webadmin.Options{
		BaseURL: cfg.WebAdmin.BaseURL,
		Timeout: cfg.WebAdmin.Timeout(),
		Logger:  log,
		Debug:   cfg.App.LogLevel == "trace",
	})
	sessions := session.NewManager(client, prefs, log)
	// Un 401 del API remoto destruye el workspace del token rechazado.
	client.SetOnUnauthorized(sessions.Expire)

	settlementUC := usecase.NewSettlementUseCase(client, log,
		infrapdf.NewStatisticsRenderer(cfg.Report.FontPath),
		xlsx.NewStatisticsRenderer(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.WebAdmin.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Settlement Admin API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sessions": sessions.Count()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:     sessions,
		AuthUC:       auth.NewAuthUseCase(client, sessions, log),
		ViewUC:       usecase.NewViewUseCase(),
		CompanyUC:    usecase.NewCompanyUseCase(client, client),
		MerchantUC:   usecase.NewMerchantUseCase(client),
		CommissionUC: usecase.NewCommissionUseCase(client, log),
		PaymentUC:    usecase.NewPaymentUseCase(client),
		SettlementUC: settlementUC,
		TerminalUC:   usecase.NewTerminalUseCase(client),
		CenterUC:     usecase.NewCenterUseCase(client),
		TotpUC:       usecase.NewTotpUseCase(client, qrcode.NewGenerator()),
		UserUC:       usecase.NewUserUseCase(client),
		LoginLimiter: httpRouter.NewLoginRateLimiter(cfg.Login.RatePerMinute, cfg.Login.Burst),
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
