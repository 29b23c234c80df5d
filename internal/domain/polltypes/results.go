package polltypes

import (
	"time"

	"github.com/google/uuid"
)

// OptionCount é o resultado agregado de uma opção de escolha
type OptionCount struct {
	OptionID   uuid.UUID `json:"option_id"`
	Label      string    `json:"label"`
	OrderIndex int       `json:"order_index"`
	Votes      int       `json:"votes"`
	Percentage int       `json:"percentage"`
}

// ChoiceResults agrega os votos de enquetes single_choice e multiple_choice.
// Percentuais são arredondados independentemente por opção e podem não somar
// exatamente 100.
type ChoiceResults struct {
	TotalVotes int           `json:"total_votes"`
	Options    []OptionCount `json:"options"`
}

// AnswerStat é a contagem de um dos valores de uma enquete yes_no
type AnswerStat struct {
	Votes      int `json:"votes"`
	Percentage int `json:"percentage"`
}

// YesNoResults agrega os votos de enquetes yes_no
type YesNoResults struct {
	TotalVotes int        `json:"total_votes"`
	Yes        AnswerStat `json:"yes"`
	No         AnswerStat `json:"no"`
	Neutral    AnswerStat `json:"neutral"`
}

// NPSResults agrega as notas de enquetes nps.
// Score = %Promotores - %Detratores, arredondado para o inteiro mais próximo.
type NPSResults struct {
	TotalVotes   int `json:"total_votes"`
	Promoters    int `json:"promoters"`
	Passives     int `json:"passives"`
	Detractors   int `json:"detractors"`
	PromoterPct  int `json:"promoter_pct"`
	PassivePct   int `json:"passive_pct"`
	DetractorPct int `json:"detractor_pct"`
	Score        int `json:"score"`
}

// RatingResults agrega as notas de enquetes rating
type RatingResults struct {
	Count          int     `json:"count"`
	Average        float64 `json:"average"`
	AverageDisplay string  `json:"average_display"`
	MaxRating      int     `json:"max_rating"`
}

// TextEntry é uma resposta de texto individual devolvida nos resultados
type TextEntry struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TextResults devolve as respostas de texto em ordem cronológica reversa,
// com o total separado do número efetivamente retornado ("mostrando N de M")
type TextResults struct {
	Total    int         `json:"total"`
	Returned int         `json:"returned"`
	Entries  []TextEntry `json:"entries"`
}
