package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Papéis aceitos para mensagens de chat
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage representa uma mensagem de chat associada a uma enquete.
// Mensagens são append-only e lidas em ordem de criação.
type ChatMessage struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	PollID     uuid.UUID `json:"poll_id" gorm:"type:uuid;column:poll_id;index"`
	Role       string    `json:"role" gorm:"column:role"`
	Content    string    `json:"content" gorm:"column:content;type:text"`
	SenderName string    `json:"sender_name,omitempty" gorm:"column:sender_name"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

// IsValidRole indica se o papel informado é aceito
func IsValidRole(role string) bool {
	return role == RoleSystem || role == RoleUser || role == RoleAssistant
}

// BeforeCreate gera um UUID para a mensagem caso ainda não exista
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
