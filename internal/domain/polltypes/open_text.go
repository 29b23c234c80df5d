package polltypes

import (
	"strings"
	"unicode/utf8"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

type openText struct{}

func (openText) Type() entities.PollType { return entities.PollTypeOpenText }

// Validate rejeita textos acima de config.max_length (padrão 500) e textos
// vazios quando config.required (padrão true)
func (openText) Validate(poll *entities.Poll, payload Payload) error {
	answer := ""
	if payload.Answer != nil {
		answer = *payload.Answer
	}
	if strings.TrimSpace(answer) == "" {
		if poll.Config.IsRequired() {
			return apperrors.NewValidation(apperrors.CodeRequired, "resposta de texto é obrigatória")
		}
		return nil
	}
	if max := poll.Config.EffectiveMaxLength(); utf8.RuneCountInString(answer) > max {
		return apperrors.NewValidation(apperrors.CodeTooLong, "resposta excede o limite de %d caracteres", max)
	}
	return nil
}

// Aggregate não agrega: devolve as respostas literais em ordem cronológica
// reversa, com o total separado do número retornado
func (openText) Aggregate(poll *entities.Poll, responses []entities.Response, limit int) interface{} {
	if limit <= 0 {
		limit = entities.DefaultTextLimit
	}

	results := TextResults{Total: len(responses), Entries: []TextEntry{}}
	for _, r := range responses {
		if len(results.Entries) >= limit {
			break
		}
		results.Entries = append(results.Entries, TextEntry{
			ID:        r.ID,
			Content:   r.Answer,
			CreatedAt: r.CreatedAt,
		})
	}
	results.Returned = len(results.Entries)
	return results
}
