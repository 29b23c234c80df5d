package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enquesta/enquesta-api/internal/application/usecases"
)

// MessageHandler lida com mensagens de chat de uma enquete
type MessageHandler struct {
	messageUseCase *usecases.MessageUseCase
}

// NewMessageHandler cria uma nova instância de MessageHandler
func NewMessageHandler(messageUseCase *usecases.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

// CreateMessage registra uma mensagem e dispara chat.message em background
func (h *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	pollID, err := parsePollID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var body struct {
		Role       string `json:"role"`
		Content    string `json:"content"`
		SenderName string `json:"sender_name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	message, err := h.messageUseCase.CreateMessage(pollID, body.Role, body.Content, body.SenderName)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetMessages retorna as mensagens em ordem de criação
func (h *MessageHandler) GetMessages(c *fiber.Ctx) error {
	pollID, err := parsePollID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	page, limit := parsePagination(c)

	messages, total, err := h.messageUseCase.ListMessages(pollID, page, limit)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":  messages,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
