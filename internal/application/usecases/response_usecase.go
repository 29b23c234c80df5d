package usecases

import (
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/domain/entities"
	"github.com/enquesta/enquesta-api/internal/domain/polltypes"
	"github.com/enquesta/enquesta-api/internal/domain/repositories"
)

// ResponseUseCase implementa a submissão de respostas
type ResponseUseCase struct {
	pollRepo     *repositories.PollRepository
	responseRepo *repositories.ResponseRepository
}

// NewResponseUseCase cria uma nova instância de ResponseUseCase
func NewResponseUseCase(pollRepo *repositories.PollRepository, responseRepo *repositories.ResponseRepository) *ResponseUseCase {
	return &ResponseUseCase{
		pollRepo:     pollRepo,
		responseRepo: responseRepo,
	}
}

// SubmitResponse valida a submissão contra o snapshot atual da enquete e a
// persiste. O status da enquete é reconferido dentro da transação de insert,
// então um fechamento entre a validação e o insert resulta em PollClosed.
func (u *ResponseUseCase) SubmitResponse(pollID uuid.UUID, respondentID string, payload polltypes.Payload) (*entities.Response, error) {
	poll, err := u.pollRepo.GetPoll(pollID)
	if err != nil {
		return nil, err
	}

	if err := polltypes.ValidateSubmission(poll, payload); err != nil {
		return nil, err
	}

	response := buildResponse(poll, respondentID, payload)
	if err := u.responseRepo.CreateResponse(response, poll.Config.AllowRevote); err != nil {
		return nil, err
	}
	return response, nil
}

// buildResponse preenche apenas os campos compatíveis com o tipo da enquete
func buildResponse(poll *entities.Poll, respondentID string, payload polltypes.Payload) *entities.Response {
	response := &entities.Response{
		PollID:       poll.ID,
		RespondentID: respondentID,
	}

	switch poll.Type {
	case entities.PollTypeSingleChoice:
		response.OptionID = payload.OptionID
	case entities.PollTypeMultipleChoice:
		seen := make(map[uuid.UUID]bool, len(payload.OptionIDs))
		for _, id := range payload.OptionIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			response.OptionIDs = append(response.OptionIDs, id)
		}
	case entities.PollTypeYesNo, entities.PollTypeOpenText:
		if payload.Answer != nil {
			response.Answer = *payload.Answer
		}
	case entities.PollTypeNPS, entities.PollTypeRating:
		response.Score = payload.Score
	}

	return response
}
