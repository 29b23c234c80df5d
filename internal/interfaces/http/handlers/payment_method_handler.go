package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/application/usecases"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// PaymentMethodHandler lida com métodos de pagamento
type PaymentMethodHandler struct {
	paymentUseCase *usecases.PaymentMethodUseCase
}

// NewPaymentMethodHandler cria uma nova instância de PaymentMethodHandler
func NewPaymentMethodHandler(paymentUseCase *usecases.PaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		paymentUseCase: paymentUseCase,
	}
}

// GetPaymentMethods retorna os métodos de pagamento de um usuário
func (h *PaymentMethodHandler) GetPaymentMethods(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id é obrigatório"})
	}

	methods, err := h.paymentUseCase.ListByUser(userID)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"data": methods})
}

// CreatePaymentMethod cadastra um método de pagamento
func (h *PaymentMethodHandler) CreatePaymentMethod(c *fiber.Ctx) error {
	var body struct {
		UserID  string `json:"user_id"`
		Label   string `json:"label"`
		Gateway string `json:"gateway"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	method := &entities.PaymentMethod{
		UserID:  body.UserID,
		Label:   body.Label,
		Gateway: body.Gateway,
	}
	if err := h.paymentUseCase.CreatePaymentMethod(method); err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(method)
}

// SetDefaultPaymentMethod define o método padrão do usuário. A limpeza do
// padrão anterior e a definição do novo são atômicas.
func (h *PaymentMethodHandler) SetDefaultPaymentMethod(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	if err := h.paymentUseCase.SetDefault(body.UserID, id); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
