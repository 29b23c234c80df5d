package polltypes

import (
	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

type yesNo struct{}

func (yesNo) Type() entities.PollType { return entities.PollTypeYesNo }

// Validate aceita yes e no sempre; neutral apenas com config.allow_neutral
func (yesNo) Validate(poll *entities.Poll, payload Payload) error {
	if payload.Answer == nil {
		return apperrors.NewValidation(apperrors.CodeInvalidValue, "answer é obrigatório")
	}
	switch *payload.Answer {
	case entities.AnswerYes, entities.AnswerNo:
		return nil
	case entities.AnswerNeutral:
		if poll.Config.AllowNeutral {
			return nil
		}
		return apperrors.NewValidation(apperrors.CodeInvalidValue, "neutral não é permitido nesta enquete")
	default:
		return apperrors.NewValidation(apperrors.CodeInvalidValue, "answer deve ser yes, no ou neutral")
	}
}

// Aggregate conta os votos de cada valor
func (yesNo) Aggregate(poll *entities.Poll, responses []entities.Response, limit int) interface{} {
	var yes, no, neutral int
	for _, r := range responses {
		switch r.Answer {
		case entities.AnswerYes:
			yes++
		case entities.AnswerNo:
			no++
		case entities.AnswerNeutral:
			neutral++
		}
	}
	total := yes + no + neutral
	return YesNoResults{
		TotalVotes: total,
		Yes:        AnswerStat{Votes: yes, Percentage: percent(yes, total)},
		No:         AnswerStat{Votes: no, Percentage: percent(no, total)},
		Neutral:    AnswerStat{Votes: neutral, Percentage: percent(neutral, total)},
	}
}
