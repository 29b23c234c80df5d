package usecases

import (
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/application/fanout"
	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
	"github.com/enquesta/enquesta-api/internal/domain/repositories"
)

// PollUseCase implementa os casos de uso relacionados a enquetes
type PollUseCase struct {
	pollRepo     *repositories.PollRepository
	responseRepo *repositories.ResponseRepository
	dispatcher   *fanout.Dispatcher
}

// NewPollUseCase cria uma nova instância de PollUseCase
func NewPollUseCase(pollRepo *repositories.PollRepository, responseRepo *repositories.ResponseRepository, dispatcher *fanout.Dispatcher) *PollUseCase {
	return &PollUseCase{
		pollRepo:     pollRepo,
		responseRepo: responseRepo,
		dispatcher:   dispatcher,
	}
}

// CreatePollInput são os dados de criação de uma enquete
type CreatePollInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Type        entities.PollType   `json:"type"`
	Config      entities.PollConfig `json:"config"`
	Options     []string            `json:"options"`
}

// CreatePoll valida os invariantes da enquete e a persiste com as opções em
// ordem contígua a partir de 0
func (u *PollUseCase) CreatePoll(input CreatePollInput) (*entities.Poll, error) {
	if input.Title == "" {
		return nil, apperrors.NewValidation(apperrors.CodeRequired, "title é obrigatório")
	}
	if !input.Type.IsValid() {
		return nil, apperrors.NewValidation(apperrors.CodeInvalidValue, "tipo de enquete desconhecido: %s", input.Type)
	}

	// options é não vazio se e somente se o tipo é de escolha
	if input.Type.IsChoice() && len(input.Options) == 0 {
		return nil, apperrors.NewValidation(apperrors.CodeInvalidValue, "enquetes de escolha exigem ao menos uma opção")
	}
	if !input.Type.IsChoice() && len(input.Options) > 0 {
		return nil, apperrors.NewValidation(apperrors.CodeInvalidValue, "enquetes do tipo %s não aceitam opções", input.Type)
	}

	poll := &entities.Poll{
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Status:      entities.PollStatusOpen,
		Config:      input.Config,
	}
	for i, label := range input.Options {
		if label == "" {
			return nil, apperrors.NewValidation(apperrors.CodeInvalidValue, "opção %d sem rótulo", i)
		}
		poll.Options = append(poll.Options, entities.Option{
			Label:      label,
			OrderIndex: i,
		})
	}

	if err := u.pollRepo.CreatePoll(poll); err != nil {
		return nil, err
	}
	return poll, nil
}

// GetPoll retorna uma enquete com as opções ordenadas
func (u *PollUseCase) GetPoll(id uuid.UUID) (*entities.Poll, error) {
	return u.pollRepo.GetPoll(id)
}

// ListOpenPolls retorna as enquetes abertas com paginação
func (u *PollUseCase) ListOpenPolls(page, limit int) ([]entities.Poll, int64, error) {
	return u.pollRepo.ListOpenPolls(page, limit)
}

// UpdateStatus aplica uma transição de status. Na transição real para closed
// o evento poll.closed é despachado para o fanout com o total de votos; a
// resposta ao chamador não espera as entregas.
func (u *PollUseCase) UpdateStatus(id uuid.UUID, status string) (*entities.Poll, error) {
	if status != entities.PollStatusOpen && status != entities.PollStatusClosed {
		return nil, apperrors.NewValidation(apperrors.CodeInvalidValue, "status deve ser open ou closed")
	}

	previous, err := u.pollRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}

	poll, err := u.pollRepo.GetPoll(id)
	if err != nil {
		return nil, err
	}

	if status == entities.PollStatusClosed && previous == entities.PollStatusOpen {
		totalVotes, err := u.responseRepo.CountResponses(id)
		if err != nil {
			// O fechamento já foi persistido; o evento sai com total zero
			totalVotes = 0
		}
		u.dispatcher.Dispatch(fanout.NewEvent(entities.EventPollClosed, fanout.PollClosedPayload{
			ID:         poll.ID.String(),
			Title:      poll.Title,
			TotalVotes: totalVotes,
		}))
	}

	return poll, nil
}

// DeletePoll remove a enquete e seus dados em cascata
func (u *PollUseCase) DeletePoll(id uuid.UUID) error {
	return u.pollRepo.DeletePoll(id)
}
