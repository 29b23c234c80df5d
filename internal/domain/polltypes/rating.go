package polltypes

import (
	"fmt"
	"math"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

type rating struct{}

func (rating) Type() entities.PollType { return entities.PollTypeRating }

// Validate exige um inteiro entre 1 e config.max_rating (padrão 5)
func (rating) Validate(poll *entities.Poll, payload Payload) error {
	if payload.Score == nil {
		return apperrors.NewValidation(apperrors.CodeInvalidValue, "score é obrigatório")
	}
	max := poll.Config.EffectiveMaxRating()
	if *payload.Score < 1 || *payload.Score > max {
		return apperrors.NewValidation(apperrors.CodeOutOfRange, "score deve estar entre 1 e %d", max)
	}
	return nil
}

// Aggregate calcula a média aritmética das notas, exibida com uma casa
// decimal (half-up: 4.25 vira "4.3")
func (rating) Aggregate(poll *entities.Poll, responses []entities.Response, limit int) interface{} {
	var sum, count int
	for _, r := range responses {
		if r.Score == nil {
			continue
		}
		sum += *r.Score
		count++
	}

	results := RatingResults{
		Count:          count,
		MaxRating:      poll.Config.EffectiveMaxRating(),
		AverageDisplay: "0.0",
	}
	if count > 0 {
		avg := float64(sum) / float64(count)
		results.Average = avg
		rounded := math.Floor(avg*10+0.5) / 10
		results.AverageDisplay = fmt.Sprintf("%.1f", rounded)
	}
	return results
}
