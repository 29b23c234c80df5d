package polltypes

import (
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

type multipleChoice struct{}

func (multipleChoice) Type() entities.PollType { return entities.PollTypeMultipleChoice }

// Validate exige um conjunto não vazio de option_ids existentes, respeitando
// config.max_selections quando definido
func (multipleChoice) Validate(poll *entities.Poll, payload Payload) error {
	if len(payload.OptionIDs) == 0 {
		return apperrors.NewValidation(apperrors.CodeInvalidOption, "option_ids não pode ser vazio")
	}

	// Duplicatas são ignoradas: a submissão é um conjunto
	seen := make(map[uuid.UUID]bool, len(payload.OptionIDs))
	for _, id := range payload.OptionIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !poll.HasOption(id) {
			return apperrors.NewValidation(apperrors.CodeInvalidOption, "opção %s não pertence à enquete", id)
		}
	}

	if max := poll.Config.MaxSelections; max > 0 && len(seen) > max {
		return apperrors.NewValidation(apperrors.CodeTooManySelections,
			"no máximo %d opções podem ser selecionadas", max)
	}
	return nil
}

// Aggregate conta quantas respostas selecionaram cada opção. O total é o
// número de respostas, então os percentuais podem somar mais de 100.
func (multipleChoice) Aggregate(poll *entities.Poll, responses []entities.Response, limit int) interface{} {
	counts := make(map[uuid.UUID]int, len(poll.Options))
	total := 0
	for _, r := range responses {
		if len(r.OptionIDs) == 0 {
			continue
		}
		total++
		seen := make(map[uuid.UUID]bool, len(r.OptionIDs))
		for _, id := range r.OptionIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			counts[id]++
		}
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
