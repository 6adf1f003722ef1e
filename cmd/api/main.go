package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rafaelvm/patrimonio-api/internal/application/attachment"
	"github.com/rafaelvm/patrimonio-api/internal/application/auth"
	"github.com/rafaelvm/patrimonio-api/internal/application/patrimony"
	"github.com/rafaelvm/patrimonio-api/internal/application/report"
	"github.com/rafaelvm/patrimonio-api/internal/application/stats"
	"github.com/rafaelvm/patrimonio-api/internal/application/transfer"
	infrapdf "github.com/rafaelvm/patrimonio-api/internal/infrastructure/pdf"
	"github.com/rafaelvm/patrimonio-api/internal/infrastructure/postgres"
	"github.com/rafaelvm/patrimonio-api/internal/infrastructure/storage"
	httpRouter "github.com/rafaelvm/patrimonio-api/internal/interfaces/http"
	"github.com/rafaelvm/patrimonio-api/pkg/config"
	"github.com/rafaelvm/patrimonio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do schema")
	}

	store, err := storage.NewLocalStore(cfg.Upload.ImagesDir, cfg.Upload.DocumentsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("diretórios de upload")
	}

	userRepo := postgres.NewUserRepository(pool)
	patrimonyRepo := postgres.NewPatrimonyRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	patrimonyUC := patrimony.NewPatrimonyUseCase(patrimonyRepo)
	transferUC := transfer.NewTransferUseCase(patrimonyRepo, transferRepo, txRunner)
	statsUC := stats.NewStatsUseCase(statsRepo)
	attachmentUC := attachment.NewAttachmentUseCase(patrimonyRepo, store)
	reportUC := report.NewReportUseCase(patrimonyRepo, statsRepo, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    25 * 1024 * 1024, // uploads multipart
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization,Accept",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Patrimônio API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		PatrimonyUC:  patrimonyUC,
		TransferUC:   transferUC,
		StatsUC:      statsUC,
		AttachmentUC: attachmentUC,
		ReportUC:     reportUC,
		Users:        userRepo,
		Store:        store,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
