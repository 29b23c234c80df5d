package polltypes

import (
	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// Faixas de classificação NPS
const (
	npsDetractorMax = 6
	npsPassiveMax   = 8
	npsScoreMax     = 10
)

type nps struct{}

func (nps) Type() entities.PollType { return entities.PollTypeNPS }

// Validate exige um inteiro entre 0 e 10
func (nps) Validate(poll *entities.Poll, payload Payload) error {
	if payload.Score == nil {
		return apperrors.NewValidation(apperrors.CodeInvalidValue, "score é obrigatório")
	}
	if *payload.Score < 0 || *payload.Score > npsScoreMax {
		return apperrors.NewValidation(apperrors.CodeOutOfRange, "score deve estar entre 0 e %d", npsScoreMax)
	}
	return nil
}

// Aggregate classifica cada nota em Detrator (0-6), Passivo (7-8) ou
// Promotor (9-10) e calcula o score como %Promotores - %Detratores
func (nps) Aggregate(poll *entities.Poll, responses []entities.Response, limit int) interface{} {
	var promoters, passives, detractors int
	for _, r := range responses {
		if r.Score == nil {
			continue
		}
		switch {
		case *r.Score <= npsDetractorMax:
			detractors++
		case *r.Score <= npsPassiveMax:
			passives++
		default:
			promoters++
		}
	}
	total := promoters + passives + detractors

	results := NPSResults{
		TotalVotes:   total,
		Promoters:    promoters,
		Passives:     passives,
		Detractors:   detractors,
		PromoterPct:  percent(promoters, total),
		PassivePct:   percent(passives, total),
		DetractorPct: percent(detractors, total),
	}
	if total > 0 {
		promoterShare := float64(promoters) / float64(total) * 100
		detractorShare := float64(detractors) / float64(total) * 100
		results.Score = roundHalfUp(promoterShare - detractorShare)
	}
	return results
}
