package polltypes

import (
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

type singleChoice struct{}

func (singleChoice) Type() entities.PollType { return entities.PollTypeSingleChoice }

// Validate exige exatamente um option_id existente entre as opções atuais
func (singleChoice) Validate(poll *entities.Poll, payload Payload) error {
	if payload.OptionID == nil || *payload.OptionID == uuid.Nil {
		return apperrors.NewValidation(apperrors.CodeInvalidOption, "option_id é obrigatório")
	}
	if len(payload.OptionIDs) > 0 {
		return apperrors.NewValidation(apperrors.CodeInvalidOption, "enquete de escolha única aceita apenas option_id")
	}
	if !poll.HasOption(*payload.OptionID) {
		return apperrors.NewValidation(apperrors.CodeInvalidOption, "opção %s não pertence à enquete", payload.OptionID)
	}
	return nil
}

// Aggregate conta votos por opção na ordem de exibição
func (singleChoice) Aggregate(poll *entities.Poll, responses []entities.Response, limit int) interface{} {
	counts := make(map[uuid.UUID]int, len(poll.Options))
	total := 0
	for _, r := range responses {
		if r.OptionID == nil {
			continue
		}
		counts[*r.OptionID]++
		total++
	}

	results := ChoiceResults{TotalVotes: total, Options: make([]OptionCount, 0, len(poll.Options))}
	for _, opt := range poll.Options {
		votes := counts[opt.ID]
		results.Options = append(results.Options, OptionCount{
			OptionID:   opt.ID,
			Label:      opt.Label,
			OrderIndex: opt.OrderIndex,
			Votes:      votes,
			Percentage: percent(votes, total),
		})
	}
	return results
}
