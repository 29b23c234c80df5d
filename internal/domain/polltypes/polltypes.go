// Package polltypes concentra a validação e a agregação específicas de cada
// um dos seis tipos de enquete atrás de uma interface uniforme, evitando
// checagens ad hoc de tipo espalhadas pelos handlers.
package polltypes

import (
	"math"

	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// Payload é o corpo de submissão de uma resposta. Apenas os campos
// compatíveis com o tipo da enquete são considerados.
type Payload struct {
	OptionID  *uuid.UUID  `json:"option_id,omitempty"`
	OptionIDs []uuid.UUID `json:"option_ids,omitempty"`
	Answer    *string     `json:"answer,omitempty"`
	Score     *int        `json:"score,omitempty"`
}

// Definition define o comportamento de um tipo de enquete: validação da
// submissão contra o snapshot da enquete e agregação dos resultados.
// Ambas são funções puras, sem efeitos colaterais.
type Definition interface {
	Type() entities.PollType
	Validate(poll *entities.Poll, payload Payload) error
	Aggregate(poll *entities.Poll, responses []entities.Response, limit int) interface{}
}

// registry é fechado: um Definition por tipo suportado
var registry = map[entities.PollType]Definition{
	entities.PollTypeSingleChoice:   singleChoice{},
	entities.PollTypeMultipleChoice: multipleChoice{},
	entities.PollTypeYesNo:          yesNo{},
	entities.PollTypeNPS:            nps{},
	entities.PollTypeRating:         rating{},
	entities.PollTypeOpenText:       openText{},
}

// ForType retorna o Definition do tipo informado
func ForType(t entities.PollType) (Definition, bool) {
	def, ok := registry[t]
	return def, ok
}

// ValidateSubmission valida uma submissão contra o snapshot da enquete.
// Rejeita com PollClosed quando a enquete não está aberta e delega o
// restante ao Definition do tipo.
func ValidateSubmission(poll *entities.Poll, payload Payload) error {
	if poll.Status != entities.PollStatusOpen {
		return apperrors.NewStateConflict(apperrors.CodePollClosed, "enquete não está aberta para respostas")
	}
	def, ok := ForType(poll.Type)
	if !ok {
		return apperrors.NewValidation(apperrors.CodeInvalidValue, "tipo de enquete desconhecido: %s", poll.Type)
	}
	return def.Validate(poll, payload)
}

// percent calcula count/total em percentual com arredondamento half-up por
// opção, sem redistribuição. Retorna 0 quando total é 0.
func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(count)/float64(total)*100 + 0.5))
}

// roundHalfUp arredonda para o inteiro mais próximo, meio para cima
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
