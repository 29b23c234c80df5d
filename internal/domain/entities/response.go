package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Valores aceitos para enquetes do tipo yes_no
const (
	AnswerYes     = "yes"
	AnswerNo      = "no"
	AnswerNeutral = "neutral"
)

// UUIDList é uma lista de UUIDs persistida como JSONB
type UUIDList []uuid.UUID

// Value serializa a lista para JSONB
func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]uuid.UUID{})
	}
	return json.Marshal(l)
}

// Scan desserializa a lista a partir do banco
func (l *UUIDList) Scan(value interface{}) error {
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
		return fmt.Errorf("tipo inesperado para UUIDList: %T", value)
	}
}

// Response representa a submissão de um respondente a uma enquete.
// Apenas os campos compatíveis com o tipo da enquete são preenchidos:
// OptionID para single_choice, OptionIDs para multiple_choice, Answer para
// yes_no e open_text, Score para nps e rating. Registros são imutáveis após
// a criação.
type Response struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	PollID       uuid.UUID  `json:"poll_id" gorm:"type:uuid;column:poll_id;index"`
	RespondentID string     `json:"respondent_id" gorm:"column:respondent_id"`
	OptionID     *uuid.UUID `json:"option_id,omitempty" gorm:"type:uuid;column:option_id"`
	OptionIDs    UUIDList   `json:"option_ids,omitempty" gorm:"column:option_ids;type:jsonb"`
	Answer       string     `json:"answer,omitempty" gorm:"column:answer;type:text"`
	Score        *int       `json:"score,omitempty" gorm:"column:score"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
}

// BeforeCreate gera um UUID para a resposta caso ainda não exista
func (r *Response) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
