package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelvm/patrimonio-api/internal/application/attachment"
	"github.com/rafaelvm/patrimonio-api/internal/application/auth"
	"github.com/rafaelvm/patrimonio-api/internal/application/patrimony"
	"github.com/rafaelvm/patrimonio-api/internal/application/report"
	"github.com/rafaelvm/patrimonio-api/internal/application/stats"
	"github.com/rafaelvm/patrimonio-api/internal/application/transfer"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
	"github.com/rafaelvm/patrimonio-api/internal/infrastructure/storage"
	"github.com/rafaelvm/patrimonio-api/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	PatrimonyUC  *patrimony.PatrimonyUseCase
	TransferUC   *transfer.TransferUseCase
	StatsUC      *stats.StatsUseCase
	AttachmentUC *attachment.AttachmentUseCase
	ReportUC     *report.ReportUseCase
	Users        repository.UserRepository
	Store        *storage.LocalStore
	JWTSecret    string
	Log          *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	patrimonyHandler := NewPatrimonyHandler(deps.PatrimonyUC, deps.ReportUC, deps.Log)
	transferHandler := NewTransferHandler(deps.TransferUC, deps.Log)
	statsHandler := NewStatsHandler(deps.StatsUC, deps.Log)
	attachmentHandler := NewAttachmentHandler(deps.AttachmentUC, deps.Log)
	filesHandler := NewFilesHandler(deps.Store, deps.Log)

	// Arquivos enviados (público)
	app.Get("/uploads/:filename", filesHandler.ServeImage)
	app.Get("/documents/:filename", filesHandler.ServeDocument)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": c.App().Config().AppName})
	})

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Departamentos (público, alimenta selects do frontend)
	api.Get("/departments", patrimonyHandler.Departments)

	// Rotas protegidas (Bearer Token + usuário ainda existente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	// Patrimônio (protegido). /report antes de /:id para não colidir.
	pat := protected.Group("/patrimony")
	pat.Post("/", patrimonyHandler.Create)
	pat.Get("/", patrimonyHandler.List)
	pat.Get("/report", patrimonyHandler.Report)
	pat.Get("/:id", patrimonyHandler.GetByID)
	pat.Put("/:id", patrimonyHandler.Update)
	pat.Delete("/:id", patrimonyHandler.Delete)
	pat.Post("/:id/image", attachmentHandler.UploadImage)
	pat.Post("/:id/document/:doc_type", attachmentHandler.UploadDocument)

	// Transferências (protegido). Singular para criar/buscar, plural para listar,
	// espelhando o frontend existente.
	protected.Post("/transfer", transferHandler.Create)
	protected.Get("/transfer/:id", transferHandler.GetByID)
	protected.Get("/transfers", transferHandler.List)

	// Estatísticas (protegido)
	protected.Get("/stats", statsHandler.Get)

	// Usuários (protegido, somente admin)
	protected.Get("/users", RequireAdmin(), authHandler.ListUsers)
}
