package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enquesta/enquesta-api/internal/application/usecases"
)

// PollHandler lida com requisições relacionadas a enquetes
type PollHandler struct {
	pollUseCase *usecases.PollUseCase
}

// NewPollHandler cria uma nova instância de PollHandler
func NewPollHandler(pollUseCase *usecases.PollUseCase) *PollHandler {
	return &PollHandler{
		pollUseCase: pollUseCase,
	}
}

// CreatePoll cria uma enquete
// @Summary Cria uma enquete
// @Description Cria uma enquete com tipo, configuração e, para tipos de escolha, lista ordenada de opções
// @Tags polls
// @Accept json
// @Produce json
// @Success 201 {object} entities.Poll "Enquete criada"
// @Failure 400 {object} map[string]interface{} "Erro de validação"
// @Router /polls [post]
func (h *PollHandler) CreatePoll(c *fiber.Ctx) error {
	var input usecases.CreatePollInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	poll, err := h.pollUseCase.CreatePoll(input)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(poll)
}

// GetPoll retorna uma enquete com as opções ordenadas
func (h *PollHandler) GetPoll(c *fiber.Ctx) error {
	id, err := parsePollID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	poll, err := h.pollUseCase.GetPoll(id)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(poll)
}

// GetPolls retorna as enquetes abertas com paginação
// @Summary Lista enquetes abertas
// @Tags polls
// @Produce json
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(10)
// @Router /polls [get]
func (h *PollHandler) GetPolls(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	polls, total, err := h.pollUseCase.ListOpenPolls(page, limit)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":  polls,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// UpdatePoll aplica uma transição de status. A transição para closed dispara
// o evento poll.closed em background.
func (h *PollHandler) UpdatePoll(c *fiber.Ctx) error {
	id, err := parsePollID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	poll, err := h.pollUseCase.UpdateStatus(id, body.Status)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(poll)
}

// DeletePoll remove a enquete e seus dados em cascata
func (h *PollHandler) DeletePoll(c *fiber.Ctx) error {
	id, err := parsePollID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	if err := h.pollUseCase.DeletePoll(id); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
