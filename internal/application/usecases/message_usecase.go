package usecases

import (
	"strings"

	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/application/fanout"
	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
	"github.com/enquesta/enquesta-api/internal/domain/repositories"
)

// MessageUseCase implementa os casos de uso de mensagens de chat
type MessageUseCase struct {
	pollRepo    *repositories.PollRepository
	messageRepo *repositories.MessageRepository
	dispatcher  *fanout.Dispatcher
}

// NewMessageUseCase cria uma nova instância de MessageUseCase
func NewMessageUseCase(pollRepo *repositories.PollRepository, messageRepo *repositories.MessageRepository, dispatcher *fanout.Dispatcher) *MessageUseCase {
	return &MessageUseCase{
		pollRepo:    pollRepo,
		messageRepo: messageRepo,
		dispatcher:  dispatcher,
	}
}

// CreateMessage registra uma mensagem e despacha chat.message para o fanout.
// A resposta ao chamador não espera as entregas.
func (u *MessageUseCase) CreateMessage(pollID uuid.UUID, role, content, senderName string) (*entities.ChatMessage, error) {
	if !entities.IsValidRole(role) {
		return nil, apperrors.NewValidation(apperrors.CodeInvalidValue, "role deve ser system, user ou assistant")
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewValidation(apperrors.CodeRequired, "content é obrigatório")
	}

	// Garante que a enquete existe antes de registrar a mensagem
	if _, err := u.pollRepo.GetPoll(pollID); err != nil {
		return nil, err
	}

	message := &entities.ChatMessage{
		PollID:     pollID,
		Role:       role,
		Content:    content,
		SenderName: senderName,
	}
	if err := u.messageRepo.CreateMessage(message); err != nil {
		return nil, err
	}

	u.dispatcher.Dispatch(fanout.NewEvent(entities.EventChatMessage, fanout.ChatMessagePayload{
		PollID:  pollID.String(),
		Content: message.Content,
		Role:    message.Role,
	}))

	return message, nil
}

// ListMessages retorna as mensagens da enquete em ordem de criação
func (u *MessageUseCase) ListMessages(pollID uuid.UUID, page, limit int) ([]entities.ChatMessage, int64, error) {
	if _, err := u.pollRepo.GetPoll(pollID); err != nil {
		return nil, 0, err
	}
	return u.messageRepo.ListMessages(pollID, page, limit)
}
