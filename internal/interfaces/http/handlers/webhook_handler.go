package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/application/usecases"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// WebhookHandler lida com o gerenciamento administrativo de webhooks
type WebhookHandler struct {
	webhookUseCase *usecases.WebhookUseCase
}

// NewWebhookHandler cria uma nova instância de WebhookHandler
func NewWebhookHandler(webhookUseCase *usecases.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		webhookUseCase: webhookUseCase,
	}
}

type webhookBody struct {
	URL     string   `json:"url"`
	Events  []string `json:"events"`
	Secret  string   `json:"secret"`
	Enabled *bool    `json:"enabled"`
}

// GetWebhooks retorna todas as inscrições
func (h *WebhookHandler) GetWebhooks(c *fiber.Ctx) error {
	webhooks, err := h.webhookUseCase.ListWebhooks()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"data": webhooks})
}

// CreateWebhook cadastra uma inscrição
func (h *WebhookHandler) CreateWebhook(c *fiber.Ctx) error {
	var body webhookBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	sub := &entities.WebhookSubscription{
		URL:     body.URL,
		Events:  entities.StringList(body.Events),
		Secret:  body.Secret,
		Enabled: body.Enabled == nil || *body.Enabled,
	}
	if err := h.webhookUseCase.CreateWebhook(sub); err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// UpdateWebhook atualiza uma inscrição existente
func (h *WebhookHandler) UpdateWebhook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var body webhookBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	sub := &entities.WebhookSubscription{
		URL:     body.URL,
		Events:  entities.StringList(body.Events),
		Enabled: body.Enabled == nil || *body.Enabled,
	}
	sub.ID = id
	if err := h.webhookUseCase.UpdateWebhook(sub); err != nil {
		return renderError(c, err)
	}
	return c.JSON(sub)
}

// DeleteWebhook remove uma inscrição
func (h *WebhookHandler) DeleteWebhook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	if err := h.webhookUseCase.DeleteWebhook(id); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
