package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Eventos suportados pelo fanout
const (
	EventPollClosed  = "poll.closed"
	EventChatMessage = "chat.message"
)

// StringList é uma lista de strings persistida como JSONB
type StringList []string

// Value serializa a lista para JSONB
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Scan desserializa a lista a partir do banco
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("tipo inesperado para StringList: %T", value)
	}
}

// Contains verifica se a lista contém o valor informado
func (l StringList) Contains(value string) bool {
	for _, item := range l {
		if item == value {
			return true
		}
	}
	return false
}

// WebhookSubscription representa uma inscrição de webhook gerenciada pela
// superfície administrativa e consumida pelo fanout no momento do disparo
type WebhookSubscription struct {
	Base
	URL     string     `json:"url" gorm:"column:url"`
	Events  StringList `json:"events" gorm:"column:events;type:jsonb"`
	Secret  string     `json:"-" gorm:"column:secret"`
	Enabled bool       `json:"enabled" gorm:"column:enabled;default:true"`
}
