package polltypes

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

func newPoll(pollType entities.PollType, config entities.PollConfig, labels ...string) *entities.Poll {
	poll := &entities.Poll{
		Title:  "enquete de teste",
		Type:   pollType,
		Status: entities.PollStatusOpen,
		Config: config,
	}
	poll.ID = uuid.New()
	for i, label := range labels {
		poll.Options = append(poll.Options, entities.Option{
			ID:         uuid.New(),
			PollID:     poll.ID,
			Label:      label,
			OrderIndex: i,
		})
	}
	return poll
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateSubmission(t *testing.T) {
	boolFalse := false

	single := newPoll(entities.PollTypeSingleChoice, entities.PollConfig{}, "A", "B", "C")
	multi := newPoll(entities.PollTypeMultipleChoice, entities.PollConfig{MaxSelections: 2}, "A", "B", "C")
	multiUnbounded := newPoll(entities.PollTypeMultipleChoice, entities.PollConfig{}, "A", "B", "C")
	yesNoPlain := newPoll(entities.PollTypeYesNo, entities.PollConfig{})
	yesNoNeutral := newPoll(entities.PollTypeYesNo, entities.PollConfig{AllowNeutral: true})
	npsPoll := newPoll(entities.PollTypeNPS, entities.PollConfig{})
	ratingDefault := newPoll(entities.PollTypeRating, entities.PollConfig{})
	ratingWide := newPoll(entities.PollTypeRating, entities.PollConfig{MaxRating: 10})
	textDefault := newPoll(entities.PollTypeOpenText, entities.PollConfig{})
	textOptional := newPoll(entities.PollTypeOpenText, entities.PollConfig{Required: &boolFalse})
	textShort := newPoll(entities.PollTypeOpenText, entities.PollConfig{MaxLength: 5})

	foreign := uuid.New()
	long := make([]rune, 501)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name     string
		poll     *entities.Poll
		payload  Payload
		wantCode string
	}{
		{"single choice valid", single, Payload{OptionID: &single.Options[0].ID}, ""},
		{"single choice missing option", single, Payload{}, apperrors.CodeInvalidOption},
		{"single choice unknown option", single, Payload{OptionID: &foreign}, apperrors.CodeInvalidOption},
		{"multiple choice valid", multi, Payload{OptionIDs: []uuid.UUID{multi.Options[0].ID, multi.Options[1].ID}}, ""},
		{"multiple choice empty", multi, Payload{OptionIDs: []uuid.UUID{}}, apperrors.CodeInvalidOption},
		{"multiple choice unknown option", multi, Payload{OptionIDs: []uuid.UUID{foreign}}, apperrors.CodeInvalidOption},
		{"multiple choice over max", multi, Payload{OptionIDs: []uuid.UUID{multi.Options[0].ID, multi.Options[1].ID, multi.Options[2].ID}}, apperrors.CodeTooManySelections},
		{"multiple choice unbounded", multiUnbounded, Payload{OptionIDs: []uuid.UUID{multiUnbounded.Options[0].ID, multiUnbounded.Options[1].ID, multiUnbounded.Options[2].ID}}, ""},
		{"yes valid", yesNoPlain, Payload{Answer: strPtr("yes")}, ""},
		{"no valid", yesNoPlain, Payload{Answer: strPtr("no")}, ""},
		{"neutral rejected by default", yesNoPlain, Payload{Answer: strPtr("neutral")}, apperrors.CodeInvalidValue},
		{"neutral allowed by config", yesNoNeutral, Payload{Answer: strPtr("neutral")}, ""},
		{"yes_no garbage", yesNoPlain, Payload{Answer: strPtr("maybe")}, apperrors.CodeInvalidValue},
		{"yes_no missing answer", yesNoPlain, Payload{}, apperrors.CodeInvalidValue},
		{"nps zero", npsPoll, Payload{Score: intPtr(0)}, ""},
		{"nps ten", npsPoll, Payload{Score: intPtr(10)}, ""},
		{"nps negative", npsPoll, Payload{Score: intPtr(-1)}, apperrors.CodeOutOfRange},
		{"nps eleven", npsPoll, Payload{Score: intPtr(11)}, apperrors.CodeOutOfRange},
		{"nps missing score", npsPoll, Payload{}, apperrors.CodeInvalidValue},
		{"rating within default scale", ratingDefault, Payload{Score: intPtr(5)}, ""},
		{"rating zero", ratingDefault, Payload{Score: intPtr(0)}, apperrors.CodeOutOfRange},
		{"rating above default scale", ratingDefault, Payload{Score: intPtr(6)}, apperrors.CodeOutOfRange},
		{"rating custom scale", ratingWide, Payload{Score: intPtr(10)}, ""},
		{"open text valid", textDefault, Payload{Answer: strPtr("tudo certo")}, ""},
		{"open text empty required", textDefault, Payload{Answer: strPtr("")}, apperrors.CodeRequired},
		{"open text missing required", textDefault, Payload{}, apperrors.CodeRequired},
		{"open text empty optional", textOptional, Payload{}, ""},
		{"open text too long default", textDefault, Payload{Answer: strPtr(string(long))}, apperrors.CodeTooLong},
		{"open text too long custom", textShort, Payload{Answer: strPtr("abcdef")}, apperrors.CodeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.poll, tt.payload)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			ve, ok := apperrors.AsValidation(err)
			require.True(t, ok, "esperava erro de validação, veio %v", err)
			assert.Equal(t, tt.wantCode, ve.Code)
		})
	}
}

func TestValidateSubmissionClosedPoll(t *testing.T) {
	poll := newPoll(entities.PollTypeYesNo, entities.PollConfig{})
	poll.Status = entities.PollStatusClosed

	err := ValidateSubmission(poll, Payload{Answer: strPtr("yes")})
	se, ok := apperrors.AsStateConflict(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodePollClosed, se.Code)
}

func singleResponse(poll *entities.Poll, optionIdx int) entities.Response {
	return entities.Response{
		ID:           uuid.New(),
		PollID:       poll.ID,
		RespondentID: uuid.NewString(),
		OptionID:     &poll.Options[optionIdx].ID,
	}
}

func TestSingleChoiceAggregate(t *testing.T) {
	poll := newPoll(entities.PollTypeSingleChoice, entities.PollConfig{}, "A", "B", "C")
	responses := []entities.Response{
		singleResponse(poll, 0),
		singleResponse(poll, 1),
		singleResponse(poll, 1),
	}

	def, ok := ForType(poll.Type)
	require.True(t, ok)

	results := def.Aggregate(poll, responses, 0).(ChoiceResults)
	assert.Equal(t, 3, results.TotalVotes)
	require.Len(t, results.Options, 3)

	// Opções na ordem de exibição, contagens por opção
	assert.Equal(t, "A", results.Options[0].Label)
	assert.Equal(t, 1, results.Options[0].Votes)
	assert.Equal(t, 33, results.Options[0].Percentage)
	assert.Equal(t, 2, results.Options[1].Votes)
	assert.Equal(t, 67, results.Options[1].Percentage)
	assert.Equal(t, 0, results.Options[2].Votes)
	assert.Equal(t, 0, results.Options[2].Percentage)

	// Soma das contagens é o total de respostas
	sum := 0
	for _, opt := range results.Options {
		sum += opt.Votes
	}
	assert.Equal(t, results.TotalVotes, sum)
}

func TestPercentagesAreNotRedistributed(t *testing.T) {
	poll := newPoll(entities.PollTypeSingleChoice, entities.PollConfig{}, "A", "B", "C")
	responses := []entities.Response{
		singleResponse(poll, 0),
		singleResponse(poll, 1),
		singleResponse(poll, 2),
	}

	def, _ := ForType(poll.Type)
	results := def.Aggregate(poll, responses, 0).(ChoiceResults)

	// 1/3 arredonda para 33 em cada opção: a soma fica 99, sem ajuste
	total := 0
	for _, opt := range results.Options {
		assert.Equal(t, 33, opt.Percentage)
		total += opt.Percentage
	}
	assert.Equal(t, 99, total)
}

func TestAggregateIsIdempotent(t *testing.T) {
	poll := newPoll(entities.PollTypeSingleChoice, entities.PollConfig{}, "A", "B")
	responses := []entities.Response{
		singleResponse(poll, 0),
		singleResponse(poll, 0),
		singleResponse(poll, 1),
	}

	def, _ := ForType(poll.Type)
	first := def.Aggregate(poll, responses, 0)
	second := def.Aggregate(poll, responses, 0)
	assert.Equal(t, first, second)
}

func TestMultipleChoiceAggregate(t *testing.T) {
	poll := newPoll(entities.PollTypeMultipleChoice, entities.PollConfig{}, "A", "B")
	responses := []entities.Response{
		{ID: uuid.New(), PollID: poll.ID, OptionIDs: entities.UUIDList{poll.Options[0].ID, poll.Options[1].ID}},
		{ID: uuid.New(), PollID: poll.ID, OptionIDs: entities.UUIDList{poll.Options[0].ID}},
	}

	def, _ := ForType(poll.Type)
	results := def.Aggregate(poll, responses, 0).(ChoiceResults)

	assert.Equal(t, 2, results.TotalVotes)
	assert.Equal(t, 2, results.Options[0].Votes)
	assert.Equal(t, 100, results.Options[0].Percentage)
	assert.Equal(t, 1, results.Options[1].Votes)
	assert.Equal(t, 50, results.Options[1].Percentage)
}

func TestYesNoAggregate(t *testing.T) {
	poll := newPoll(entities.PollTypeYesNo, entities.PollConfig{AllowNeutral: true})
	responses := []entities.Response{
		{ID: uuid.New(), PollID: poll.ID, Answer: entities.AnswerYes},
		{ID: uuid.New(), PollID: poll.ID, Answer: entities.AnswerYes},
		{ID: uuid.New(), PollID: poll.ID, Answer: entities.AnswerNo},
		{ID: uuid.New(), PollID: poll.ID, Answer: entities.AnswerNeutral},
	}

	def, _ := ForType(poll.Type)
	results := def.Aggregate(poll, responses, 0).(YesNoResults)

	assert.Equal(t, 4, results.TotalVotes)
	assert.Equal(t, 2, results.Yes.Votes)
	assert.Equal(t, 50, results.Yes.Percentage)
	assert.Equal(t, 1, results.No.Votes)
	assert.Equal(t, 25, results.No.Percentage)
	assert.Equal(t, 1, results.Neutral.Votes)
}

func TestNPSAggregate(t *testing.T) {
	poll := newPoll(entities.PollTypeNPS, entities.PollConfig{})

	// 40% promotores, 20% detratores, 40% passivos -> score 20
	scores := []int{9, 10, 9, 10, 2, 5, 7, 8, 7, 8}
	var responses []entities.Response
	for _, s := range scores {
		score := s
		responses = append(responses, entities.Response{ID: uuid.New(), PollID: poll.ID, Score: &score})
	}

	def, _ := ForType(poll.Type)
	results := def.Aggregate(poll, responses, 0).(NPSResults)

	assert.Equal(t, 10, results.TotalVotes)
	assert.Equal(t, 4, results.Promoters)
	assert.Equal(t, 2, results.Detractors)
	assert.Equal(t, 4, results.Passives)
	assert.Equal(t, 20, results.Score)
}

func TestRatingAggregate(t *testing.T) {
	poll := newPoll(entities.PollTypeRating, entities.PollConfig{})

	scores := []int{5, 5, 4, 3}
	var responses []entities.Response
	for _, s := range scores {
		score := s
		responses = append(responses, entities.Response{ID: uuid.New(), PollID: poll.ID, Score: &score})
	}

	def, _ := ForType(poll.Type)
	results := def.Aggregate(poll, responses, 0).(RatingResults)

	assert.Equal(t, 4, results.Count)
	assert.InDelta(t, 4.25, results.Average, 0.0001)
	// 4.25 exibe como 4.3 (half-up)
	assert.Equal(t, "4.3", results.AverageDisplay)
}

func TestOpenTextAggregate(t *testing.T) {
	poll := newPoll(entities.PollTypeOpenText, entities.PollConfig{})

	// Respostas já chegam em ordem cronológica reversa do repositório
	now := time.Now()
	var responses []entities.Response
	for i := 0; i < 5; i++ {
		responses = append(responses, entities.Response{
			ID:        uuid.New(),
			PollID:    poll.ID,
			Answer:    "resposta",
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}

	def, _ := ForType(poll.Type)
	results := def.Aggregate(poll, responses, 3).(TextResults)

	assert.Equal(t, 5, results.Total)
	assert.Equal(t, 3, results.Returned)
	require.Len(t, results.Entries, 3)
	assert.Equal(t, responses[0].ID, results.Entries[0].ID)
}

func TestAggregateZeroResponses(t *testing.T) {
	polls := []*entities.Poll{
		newPoll(entities.PollTypeSingleChoice, entities.PollConfig{}, "A", "B"),
		newPoll(entities.PollTypeMultipleChoice, entities.PollConfig{}, "A", "B"),
		newPoll(entities.PollTypeYesNo, entities.PollConfig{}),
		newPoll(entities.PollTypeNPS, entities.PollConfig{}),
		newPoll(entities.PollTypeRating, entities.PollConfig{}),
		newPoll(entities.PollTypeOpenText, entities.PollConfig{}),
	}

	for _, poll := range polls {
		def, ok := ForType(poll.Type)
		require.True(t, ok)
		results := def.Aggregate(poll, nil, 0)
		require.NotNil(t, results, "tipo %s", poll.Type)

		switch r := results.(type) {
		case ChoiceResults:
			assert.Equal(t, 0, r.TotalVotes)
			for _, opt := range r.Options {
				assert.Equal(t, 0, opt.Votes)
				assert.Equal(t, 0, opt.Percentage)
			}
		case YesNoResults:
			assert.Equal(t, 0, r.TotalVotes)
		case NPSResults:
			assert.Equal(t, 0, r.TotalVotes)
			assert.Equal(t, 0, r.Score)
		case RatingResults:
			assert.Equal(t, 0, r.Count)
			assert.Equal(t, "0.0", r.AverageDisplay)
		case TextResults:
			assert.Equal(t, 0, r.Total)
			assert.Empty(t, r.Entries)
		}
	}
}
