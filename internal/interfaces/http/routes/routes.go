package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"github.com/enquesta/enquesta-api/internal/application/fanout"
	"github.com/enquesta/enquesta-api/internal/application/usecases"
	"github.com/enquesta/enquesta-api/internal/domain/repositories"
	"github.com/enquesta/enquesta-api/internal/infrastructure/cache"
	"github.com/enquesta/enquesta-api/internal/infrastructure/database"
	"github.com/enquesta/enquesta-api/internal/interfaces/http/handlers"
	"github.com/enquesta/enquesta-api/internal/interfaces/http/middleware"
)

// SetupRoutes monta toda a cadeia repositórios -> casos de uso -> handlers e
// registra as rotas. Retorna o dispatcher de fanout para o encerramento
// gracioso em main.
func SetupRoutes(app *fiber.App, db *gorm.DB) *fanout.Dispatcher {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	app.Use(middleware.PerformanceLogger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Cache de resultados, invalidado via callback do GORM a cada resposta
	resultsCache := cache.New(time.Minute)
	database.RegisterInvalidation(db, resultsCache)

	// Repositories
	pollRepo := repositories.NewPollRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	webhookRepo := repositories.NewWebhookRepository(db)
	ruleRepo := repositories.NewRuleRepository(db)
	paymentRepo := repositories.NewPaymentMethodRepository(db)

	// Fanout em background, fora do caminho crítico das requisições
	dispatcher := fanout.NewDispatcher(
		webhookRepo,
		ruleRepo,
		fanout.NewHTTPDeliverer(fanout.DefaultDeliveryTimeout),
		fanout.NewActionExecutor(fanout.DefaultDeliveryTimeout),
		fanout.Config{},
	)

	// Use Cases
	pollUseCase := usecases.NewPollUseCase(pollRepo, responseRepo, dispatcher)
	responseUseCase := usecases.NewResponseUseCase(pollRepo, responseRepo)
	resultsUseCase := usecases.NewResultsUseCase(pollRepo, responseRepo, resultsCache)
	messageUseCase := usecases.NewMessageUseCase(pollRepo, messageRepo, dispatcher)
	webhookUseCase := usecases.NewWebhookUseCase(webhookRepo)
	ruleUseCase := usecases.NewRuleUseCase(ruleRepo)
	paymentUseCase := usecases.NewPaymentMethodUseCase(paymentRepo)

	// Handlers
	pollHandler := handlers.NewPollHandler(pollUseCase)
	responseHandler := handlers.NewResponseHandler(responseUseCase)
	resultsHandler := handlers.NewResultsHandler(resultsUseCase)
	messageHandler := handlers.NewMessageHandler(messageUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	ruleHandler := handlers.NewRuleHandler(ruleUseCase)
	paymentHandler := handlers.NewPaymentMethodHandler(paymentUseCase)

	// Routes
	adminAuth := middleware.RequireAuth(os.Getenv("JWT_SECRET"), "admin")
	groups := middleware.SetupRouteGroups(app, adminAuth)

	// Rotas públicas de enquetes
	groups.Public.Get("/polls", pollHandler.GetPolls)
	groups.Public.Get("/polls/:id", pollHandler.GetPoll)
	groups.Public.Post("/polls/:id/responses", responseHandler.SubmitResponse)
	groups.Public.Get("/polls/:id/results", resultsHandler.GetResults)
	groups.Public.Post("/polls/:id/messages", messageHandler.CreateMessage)
	groups.Public.Get("/polls/:id/messages", messageHandler.GetMessages)

	// Gerenciamento de enquetes (autenticado, mesmos paths públicos)
	groups.Public.Post("/polls", adminAuth, pollHandler.CreatePoll)
	groups.Public.Patch("/polls/:id", adminAuth, pollHandler.UpdatePoll)
	groups.Public.Delete("/polls/:id", adminAuth, pollHandler.DeletePoll)

	// Superfície administrativa
	setupAdminRoutes(groups.Admin, webhookHandler, ruleHandler, paymentHandler)

	return dispatcher
}
