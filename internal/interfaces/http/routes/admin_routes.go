package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enquesta/enquesta-api/internal/interfaces/http/handlers"
)

// setupAdminRoutes configura as rotas da superfície administrativa:
// webhooks, regras de automação e métodos de pagamento
func setupAdminRoutes(router fiber.Router, webhookHandler *handlers.WebhookHandler, ruleHandler *handlers.RuleHandler, paymentHandler *handlers.PaymentMethodHandler) {
	webhooks := router.Group("/webhooks")
	webhooks.Get("/", webhookHandler.GetWebhooks)
	webhooks.Post("/", webhookHandler.CreateWebhook)
	webhooks.Put("/:id", webhookHandler.UpdateWebhook)
	webhooks.Delete("/:id", webhookHandler.DeleteWebhook)

	rules := router.Group("/rules")
	rules.Get("/", ruleHandler.GetRules)
	rules.Post("/", ruleHandler.CreateRule)
	rules.Put("/:id", ruleHandler.UpdateRule)
	rules.Delete("/:id", ruleHandler.DeleteRule)

	payments := router.Group("/payment-methods")
	payments.Get("/", paymentHandler.GetPaymentMethods)
	payments.Post("/", paymentHandler.CreatePaymentMethod)
	payments.Patch("/:id/default", paymentHandler.SetDefaultPaymentMethod)
}
