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
	_ "github.com/jhoicas/frota-api/docs"
	"github.com/jhoicas/frota-api/internal/application/analytics"
	"github.com/jhoicas/frota-api/internal/application/auth"
	"github.com/jhoicas/frota-api/internal/application/fleet"
	"github.com/jhoicas/frota-api/internal/application/inventory"
	"github.com/jhoicas/frota-api/internal/application/report"
	"github.com/jhoicas/frota-api/internal/application/schedule"
	infrapdf "github.com/jhoicas/frota-api/internal/infrastructure/pdf"
	"github.com/jhoicas/frota-api/internal/infrastructure/postgres"
	"github.com/jhoicas/frota-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/frota-api/internal/interfaces/http"
	"github.com/jhoicas/frota-api/pkg/config"
	"github.com/jhoicas/frota-api/pkg/logger"
)

// uploadLimit tamaño máximo del cuerpo (planillas importadas).
const uploadLimit = 10 * 1024 * 1024

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	scheduleRepo := postgres.NewScheduleRepository(pool)
	pavRepo := postgres.NewPavProcessRepository(pool)
	substitutionRepo := postgres.NewFleetSubstitutionRepository(pool)

	inventoryTx := postgres.NewInventoryTxRunner(pool)
	scheduleTx := postgres.NewScheduleTxRunner(pool)

	loc := cfg.App.Location
	materialUC := inventory.NewMaterialUseCase(inventoryTx, materialRepo)
	movementUC := inventory.NewMovementUseCase(inventoryTx, movementRepo, materialRepo, loc)
	vehicleUC := fleet.NewVehicleUseCase(vehicleRepo)
	scheduleUC := schedule.NewUseCase(scheduleTx, scheduleRepo, loc)
	pavUC := fleet.NewPavUseCase(pavRepo, loc)
	substitutionUC := fleet.NewSubstitutionUseCase(substitutionRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Exportaciones: PDF con maroto, planillas con excelize
	sheets := spreadsheet.New()
	reportUC := report.NewUseCase(report.Sources{
		Materials:     materialUC,
		Movements:     movementUC,
		Vehicles:      vehicleUC,
		Schedules:     scheduleUC,
		Pav:           pavUC,
		Substitutions: substitutionUC,
	}, infrapdf.NewMarotoRenderer(cfg.Report.Title), sheets, cfg.Report.Title, loc)

	dashboardUC := analytics.NewDashboardUseCase(analytics.Sources{
		Materials:     materialUC,
		Schedules:     scheduleUC,
		Pav:           pavUC,
		Substitutions: substitutionUC,
	}, loc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    uploadLimit,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Frota 5RPM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		MaterialUC:     materialUC,
		MovementUC:     movementUC,
		VehicleUC:      vehicleUC,
		ScheduleUC:     scheduleUC,
		PavUC:          pavUC,
		SubstitutionUC: substitutionUC,
		Reports:        reportUC,
		DashboardUC:    dashboardUC,
		SheetReader:    sheets,
		JWTSecret:      cfg.JWT.Secret,
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
