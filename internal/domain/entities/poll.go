package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PollType identifica o formato de resposta aceito pela enquete
type PollType string

const (
	PollTypeSingleChoice   PollType = "single_choice"
	PollTypeMultipleChoice PollType = "multiple_choice"
	PollTypeYesNo          PollType = "yes_no"
	PollTypeNPS            PollType = "nps"
	PollTypeRating         PollType = "rating"
	PollTypeOpenText       PollType = "open_text"
)

// Status possíveis de uma enquete
const (
	PollStatusOpen   = "open"
	PollStatusClosed = "closed"
)

// Valores padrão aplicados quando a configuração não define limites
const (
	DefaultMaxRating = 5
	DefaultMaxLength = 500
	DefaultTextLimit = 50
)

// PollConfig guarda as configurações específicas de cada tipo de enquete.
// É persistido como JSONB na coluna config.
type PollConfig struct {
	MaxSelections int    `json:"max_selections,omitempty"`
	AllowNeutral  bool   `json:"allow_neutral,omitempty"`
	MaxRating     int    `json:"max_rating,omitempty"`
	MaxLength     int    `json:"max_length,omitempty"`
	Required      *bool  `json:"required,omitempty"`
	AllowRevote   bool   `json:"allow_revote,omitempty"`
	NPSMinLabel   string `json:"nps_min_label,omitempty"`
	NPSMaxLabel   string `json:"nps_max_label,omitempty"`
}

// Value serializa a configuração para JSONB
func (c PollConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan desserializa a configuração a partir do banco
func (c *PollConfig) Scan(value interface{}) error {
	if value == nil {
		*c = PollConfig{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("tipo inesperado para PollConfig: %T", value)
	}
}

// EffectiveMaxRating retorna a escala de avaliação configurada ou o padrão
func (c PollConfig) EffectiveMaxRating() int {
	if c.MaxRating > 0 {
		return c.MaxRating
	}
	return DefaultMaxRating
}

// EffectiveMaxLength retorna o limite de texto configurado ou o padrão
func (c PollConfig) EffectiveMaxLength() int {
	if c.MaxLength > 0 {
		return c.MaxLength
	}
	return DefaultMaxLength
}

// IsRequired indica se a resposta de texto é obrigatória (padrão true)
func (c PollConfig) IsRequired() bool {
	if c.Required == nil {
		return true
	}
	return *c.Required
}

// Poll representa uma enquete no sistema
type Poll struct {
	Base
	Title       string     `json:"title" gorm:"column:title"`
	Description string     `json:"description,omitempty" gorm:"column:description;type:text"`
	Type        PollType   `json:"type" gorm:"column:type"`
	Status      string     `json:"status" gorm:"column:status;default:open"`
	Config      PollConfig `json:"config" gorm:"column:config;type:jsonb"`
	ClosedAt    *time.Time `json:"closed_at,omitempty" gorm:"column:closed_at"`

	// Relações
	Options []Option `json:"options,omitempty" gorm:"foreignKey:PollID"`
}

// IsChoice indica se o tipo exige lista de opções
func (t PollType) IsChoice() bool {
	return t == PollTypeSingleChoice || t == PollTypeMultipleChoice
}

// IsValid indica se o tipo é um dos seis formatos suportados
func (t PollType) IsValid() bool {
	switch t {
	case PollTypeSingleChoice, PollTypeMultipleChoice, PollTypeYesNo,
		PollTypeNPS, PollTypeRating, PollTypeOpenText:
		return true
	}
	return false
}

// HasOption verifica se o id pertence às opções atuais da enquete
func (p *Poll) HasOption(id uuid.UUID) bool {
	for _, opt := range p.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// Option representa uma opção de escolha de uma enquete.
// OrderIndex é único por enquete e contíguo a partir de 0.
type Option struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	PollID     uuid.UUID `json:"poll_id" gorm:"type:uuid;column:poll_id;index"`
	Label      string    `json:"label" gorm:"column:label"`
	OrderIndex int       `json:"order_index" gorm:"column:order_index"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

// BeforeCreate gera um UUID para a opção caso ainda não exista
func (o *Option) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
