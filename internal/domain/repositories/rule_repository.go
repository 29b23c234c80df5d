package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// RuleRepository implementa métodos para acesso a regras de automação
type RuleRepository struct {
	db *gorm.DB
}

// NewRuleRepository cria uma nova instância de RuleRepository
func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{
		db: db,
	}
}

// ListEnabledForTrigger retorna as regras habilitadas para o gatilho em
// ordem ascendente de prioridade
func (r *RuleRepository) ListEnabledForTrigger(trigger string) ([]entities.LogicRule, error) {
	var rules []entities.LogicRule
	err := r.db.
		Where("trigger_event = ? AND enabled = ?", trigger, true).
		Order("priority ASC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar regras: %w", err)
	}
	return rules, nil
}

// ListRules retorna todas as regras cadastradas em ordem de prioridade
func (r *RuleRepository) ListRules() ([]entities.LogicRule, error) {
	var rules []entities.LogicRule
	if err := r.db.Order("priority ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar regras: %w", err)
	}
	return rules, nil
}

// CreateRule persiste uma nova regra
func (r *RuleRepository) CreateRule(rule *entities.LogicRule) error {
	if err := r.db.Create(rule).Error; err != nil {
		return fmt.Errorf("erro ao criar regra: %w", err)
	}
	return nil
}

// UpdateRule atualiza uma regra existente
func (r *RuleRepository) UpdateRule(rule *entities.LogicRule) error {
	result := r.db.Model(&entities.LogicRule{}).
		Where("id = ?", rule.ID).
		Updates(map[string]interface{}{
			"trigger_event": rule.TriggerEvent,
			"action":        rule.Action,
			"priority":      rule.Priority,
			"enabled":       rule.Enabled,
		})
	if result.Error != nil {
		return fmt.Errorf("erro ao atualizar regra: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRule remove uma regra
func (r *RuleRepository) DeleteRule(id uuid.UUID) error {
	result := r.db.Delete(&entities.LogicRule{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("erro ao remover regra: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
