package usecases

import (
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
	"github.com/enquesta/enquesta-api/internal/domain/repositories"
)

// WebhookUseCase implementa o gerenciamento administrativo de inscrições de
// webhook consumidas pelo fanout
type WebhookUseCase struct {
	webhookRepo *repositories.WebhookRepository
}

// NewWebhookUseCase cria uma nova instância de WebhookUseCase
func NewWebhookUseCase(webhookRepo *repositories.WebhookRepository) *WebhookUseCase {
	return &WebhookUseCase{
		webhookRepo: webhookRepo,
	}
}

// validEvent confere se o evento é um dos suportados pelo fanout
func validEvent(event string) bool {
	return event == entities.EventPollClosed || event == entities.EventChatMessage
}

// ListWebhooks retorna todas as inscrições
func (u *WebhookUseCase) ListWebhooks() ([]entities.WebhookSubscription, error) {
	return u.webhookRepo.ListWebhooks()
}

// CreateWebhook valida e persiste uma inscrição
func (u *WebhookUseCase) CreateWebhook(sub *entities.WebhookSubscription) error {
	if sub.URL == "" {
		return apperrors.NewValidation(apperrors.CodeRequired, "url é obrigatória")
	}
	if len(sub.Events) == 0 {
		return apperrors.NewValidation(apperrors.CodeRequired, "events não pode ser vazio")
	}
	for _, event := range sub.Events {
		if !validEvent(event) {
			return apperrors.NewValidation(apperrors.CodeInvalidValue, "evento desconhecido: %s", event)
		}
	}
	return u.webhookRepo.CreateWebhook(sub)
}

// UpdateWebhook valida e atualiza uma inscrição existente
func (u *WebhookUseCase) UpdateWebhook(sub *entities.WebhookSubscription) error {
	if sub.URL == "" {
		return apperrors.NewValidation(apperrors.CodeRequired, "url é obrigatória")
	}
	for _, event := range sub.Events {
		if !validEvent(event) {
			return apperrors.NewValidation(apperrors.CodeInvalidValue, "evento desconhecido: %s", event)
		}
	}
	return u.webhookRepo.UpdateWebhook(sub)
}

// DeleteWebhook remove uma inscrição
func (u *WebhookUseCase) DeleteWebhook(id uuid.UUID) error {
	return u.webhookRepo.DeleteWebhook(id)
}
