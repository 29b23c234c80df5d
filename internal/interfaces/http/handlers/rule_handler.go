package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/application/usecases"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// RuleHandler lida com o gerenciamento administrativo de regras de automação
type RuleHandler struct {
	ruleUseCase *usecases.RuleUseCase
}

// NewRuleHandler cria uma nova instância de RuleHandler
func NewRuleHandler(ruleUseCase *usecases.RuleUseCase) *RuleHandler {
	return &RuleHandler{
		ruleUseCase: ruleUseCase,
	}
}

type ruleBody struct {
	TriggerEvent string              `json:"trigger_event"`
	Action       entities.RuleAction `json:"action"`
	Priority     int                 `json:"priority"`
	Enabled      *bool               `json:"enabled"`
}

// GetRules retorna todas as regras em ordem de prioridade
func (h *RuleHandler) GetRules(c *fiber.Ctx) error {
	rules, err := h.ruleUseCase.ListRules()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"data": rules})
}

// CreateRule cadastra uma regra
func (h *RuleHandler) CreateRule(c *fiber.Ctx) error {
	var body ruleBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	rule := &entities.LogicRule{
		TriggerEvent: body.TriggerEvent,
		Action:       body.Action,
		Priority:     body.Priority,
		Enabled:      body.Enabled == nil || *body.Enabled,
	}
	if err := h.ruleUseCase.CreateRule(rule); err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

// UpdateRule atualiza uma regra existente
func (h *RuleHandler) UpdateRule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var body ruleBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	rule := &entities.LogicRule{
		TriggerEvent: body.TriggerEvent,
		Action:       body.Action,
		Priority:     body.Priority,
		Enabled:      body.Enabled == nil || *body.Enabled,
	}
	rule.ID = id
	if err := h.ruleUseCase.UpdateRule(rule); err != nil {
		return renderError(c, err)
	}
	return c.JSON(rule)
}

// DeleteRule remove uma regra
func (h *RuleHandler) DeleteRule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	if err := h.ruleUseCase.DeleteRule(id); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
