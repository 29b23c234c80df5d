package usecases

import (
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
	"github.com/enquesta/enquesta-api/internal/domain/repositories"
)

// RuleUseCase implementa o gerenciamento administrativo de regras de
// automação avaliadas pelo fanout
type RuleUseCase struct {
	ruleRepo *repositories.RuleRepository
}

// NewRuleUseCase cria uma nova instância de RuleUseCase
func NewRuleUseCase(ruleRepo *repositories.RuleRepository) *RuleUseCase {
	return &RuleUseCase{
		ruleRepo: ruleRepo,
	}
}

func validateRule(rule *entities.LogicRule) error {
	if !validEvent(rule.TriggerEvent) {
		return apperrors.NewValidation(apperrors.CodeInvalidValue, "gatilho desconhecido: %s", rule.TriggerEvent)
	}
	switch rule.Action.Type {
	case entities.RuleActionLog:
	case entities.RuleActionHTTP:
		if rule.Action.Params["url"] == "" {
			return apperrors.NewValidation(apperrors.CodeRequired, "ação http exige params.url")
		}
	default:
		return apperrors.NewValidation(apperrors.CodeInvalidValue, "tipo de ação desconhecido: %s", rule.Action.Type)
	}
	return nil
}

// ListRules retorna todas as regras em ordem de prioridade
func (u *RuleUseCase) ListRules() ([]entities.LogicRule, error) {
	return u.ruleRepo.ListRules()
}

// CreateRule valida e persiste uma regra
func (u *RuleUseCase) CreateRule(rule *entities.LogicRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}
	return u.ruleRepo.CreateRule(rule)
}

// UpdateRule valida e atualiza uma regra existente
func (u *RuleUseCase) UpdateRule(rule *entities.LogicRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}
	return u.ruleRepo.UpdateRule(rule)
}

// DeleteRule remove uma regra
func (u *RuleUseCase) DeleteRule(id uuid.UUID) error {
	return u.ruleRepo.DeleteRule(id)
}
