package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// WebhookRepository implementa métodos para acesso a inscrições de webhook
type WebhookRepository struct {
	db *gorm.DB
}

// NewWebhookRepository cria uma nova instância de WebhookRepository
func NewWebhookRepository(db *gorm.DB) *WebhookRepository {
	return &WebhookRepository{
		db: db,
	}
}

// ListEnabledForEvent retorna as inscrições habilitadas no evento informado.
// O filtro por evento acontece em memória porque a coluna events é JSONB e o
// conjunto de inscrições é pequeno.
func (r *WebhookRepository) ListEnabledForEvent(event string) ([]entities.WebhookSubscription, error) {
	var subscriptions []entities.WebhookSubscription
	err := r.db.
		Where("enabled = ?", true).
		Find(&subscriptions).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar webhooks: %w", err)
	}

	matched := subscriptions[:0]
	for _, sub := range subscriptions {
		if sub.Events.Contains(event) {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}

// ListWebhooks retorna todas as inscrições cadastradas
func (r *WebhookRepository) ListWebhooks() ([]entities.WebhookSubscription, error) {
	var subscriptions []entities.WebhookSubscription
	if err := r.db.Order("created_at ASC").Find(&subscriptions).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar webhooks: %w", err)
	}
	return subscriptions, nil
}

// CreateWebhook persiste uma nova inscrição
func (r *WebhookRepository) CreateWebhook(sub *entities.WebhookSubscription) error {
	if err := r.db.Create(sub).Error; err != nil {
		return fmt.Errorf("erro ao criar webhook: %w", err)
	}
	return nil
}

// UpdateWebhook atualiza uma inscrição existente
func (r *WebhookRepository) UpdateWebhook(sub *entities.WebhookSubscription) error {
	result := r.db.Model(&entities.WebhookSubscription{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"url":     sub.URL,
			"events":  sub.Events,
			"enabled": sub.Enabled,
		})
	if result.Error != nil {
		return fmt.Errorf("erro ao atualizar webhook: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteWebhook remove uma inscrição
func (r *WebhookRepository) DeleteWebhook(id uuid.UUID) error {
	result := r.db.Delete(&entities.WebhookSubscription{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("erro ao remover webhook: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetWebhook busca uma inscrição pelo id
func (r *WebhookRepository) GetWebhook(id uuid.UUID) (*entities.WebhookSubscription, error) {
	var sub entities.WebhookSubscription
	if err := r.db.First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar webhook: %w", err)
	}
	return &sub, nil
}
