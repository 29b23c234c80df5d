package usecases

import (
	"time"

	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
	"github.com/enquesta/enquesta-api/internal/domain/polltypes"
	"github.com/enquesta/enquesta-api/internal/domain/repositories"
	"github.com/enquesta/enquesta-api/internal/infrastructure/cache"
	"github.com/enquesta/enquesta-api/internal/infrastructure/database"
)

// Tempo de vida da memoização de resultados. A invalidação explícita no
// insert de resposta mantém o cache coerente; o TTL apenas limita o custo de
// uma entrada órfã.
const resultsCacheTTL = 30 * time.Second

// ResultsUseCase computa os resultados agregados de uma enquete no momento
// da leitura, a partir do histórico imutável de respostas
type ResultsUseCase struct {
	pollRepo     *repositories.PollRepository
	responseRepo *repositories.ResponseRepository
	cache        *cache.Cache
}

// NewResultsUseCase cria uma nova instância de ResultsUseCase
func NewResultsUseCase(pollRepo *repositories.PollRepository, responseRepo *repositories.ResponseRepository, c *cache.Cache) *ResultsUseCase {
	return &ResultsUseCase{
		pollRepo:     pollRepo,
		responseRepo: responseRepo,
		cache:        c,
	}
}

// PollResults embrulha o agregado com os metadados da enquete
type PollResults struct {
	PollID  uuid.UUID         `json:"poll_id"`
	Type    entities.PollType `json:"type"`
	Status  string            `json:"status"`
	Results interface{}       `json:"results"`
}

// GetResults retorna o resumo agregado conforme o tipo da enquete. Uma
// enquete sem respostas produz resultados zerados, nunca erro. Leituras com
// o limite padrão são memoizadas por enquete.
func (u *ResultsUseCase) GetResults(pollID uuid.UUID, limit int) (*PollResults, error) {
	poll, err := u.pollRepo.GetPoll(pollID)
	if err != nil {
		return nil, err
	}

	def, ok := polltypes.ForType(poll.Type)
	if !ok {
		return nil, apperrors.NewValidation(apperrors.CodeInvalidValue, "tipo de enquete desconhecido: %s", poll.Type)
	}

	useCache := limit <= 0 && u.cache != nil
	key := database.ResultsKey(pollID.String())
	if useCache {
		if cached, found := u.cache.Get(key); found {
			return &PollResults{PollID: poll.ID, Type: poll.Type, Status: poll.Status, Results: cached}, nil
		}
	}

	responses, err := u.responseRepo.GetResponses(pollID)
	if err != nil {
		return nil, err
	}

	aggregated := def.Aggregate(poll, responses, limit)
	if useCache {
		u.cache.Set(key, aggregated, resultsCacheTTL)
	}

	return &PollResults{PollID: poll.ID, Type: poll.Type, Status: poll.Status, Results: aggregated}, nil
}
