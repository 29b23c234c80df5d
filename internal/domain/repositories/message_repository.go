package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// MessageRepository implementa métodos para acesso a mensagens de chat
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository cria uma nova instância de MessageRepository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// CreateMessage persiste uma mensagem de chat
func (r *MessageRepository) CreateMessage(message *entities.ChatMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("erro ao criar mensagem: %w", err)
	}
	return nil
}

// ListMessages retorna as mensagens de uma enquete em ordem de criação,
// com paginação
func (r *MessageRepository) ListMessages(pollID uuid.UUID, page, limit int) ([]entities.ChatMessage, int64, error) {
	var messages []entities.ChatMessage
	var total int64

	query := r.db.Model(&entities.ChatMessage{}).Where("poll_id = ?", pollID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}

	offset := (page - 1) * limit
	err := query.
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar mensagens: %w", err)
	}

	return messages, total, nil
}
