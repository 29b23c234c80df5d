package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tipos de ação suportados pelas regras de automação
const (
	RuleActionLog  = "log"
	RuleActionHTTP = "http"
)

// RuleAction descreve a ação executada quando a regra dispara.
// É persistida como JSONB na coluna action.
type RuleAction struct {
	Type   string            `json:"type"`
	Params map[string]string `json:"params,omitempty"`
}

// Value serializa a ação para JSONB
func (a RuleAction) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan desserializa a ação a partir do banco
func (a *RuleAction) Scan(value interface{}) error {
	if value == nil {
		*a = RuleAction{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("tipo inesperado para RuleAction: %T", value)
	}
}

// LogicRule representa uma regra condicional de automação avaliada pelo
// fanout em ordem ascendente de prioridade
type LogicRule struct {
	Base
	TriggerEvent string     `json:"trigger_event" gorm:"column:trigger_event;index"`
	Action       RuleAction `json:"action" gorm:"column:action;type:jsonb"`
	Priority     int        `json:"priority" gorm:"column:priority;default:0"`
	Enabled      bool       `json:"enabled" gorm:"column:enabled;default:true"`
}
