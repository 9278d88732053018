package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aracah/aracah-api/internal/infrastructure/identity"
	"github.com/aracah/aracah-api/internal/infrastructure/jobs"
	"github.com/aracah/aracah-api/internal/infrastructure/postgres"
	httpRouter "github.com/aracah/aracah-api/internal/interfaces/http"
	"github.com/aracah/aracah-api/pkg/config"
	"github.com/aracah/aracah-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	db := postgres.NewCaller(pool, log)
	dir := postgres.NewDirectory(pool)
	verifier := identity.NewCertVerifier(cfg.Auth.ProjectID, cfg.Auth.CertsURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.HTTP.Origins(), ","),
		AllowCredentials: true,
	}))
	app.Use(httpRouter.AccessLog(log))
	if cfg.Metrics.Enabled {
		app.Use(httpRouter.Metrics())
		app.Get("/metrics", httpRouter.MetricsHandler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Aracah API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		DB:       db,
		Dir:      dir,
		Verifier: verifier,
	})

	scheduler := jobs.NewScheduler(db, log)
	if err := scheduler.Start(cfg.Jobs.RecalcCron); err != nil {
		log.Fatal().Err(err).Msg("programar recálculo de stock")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
