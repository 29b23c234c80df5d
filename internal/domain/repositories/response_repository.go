package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// ResponseRepository implementa métodos para acesso a dados de respostas
type ResponseRepository struct {
	db *gorm.DB
}

// NewResponseRepository cria uma nova instância de ResponseRepository
func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db: db,
	}
}

// CreateResponse persiste uma resposta validada. A transação reconfere o
// status da enquete (re-checagem otimista contra o fechamento entre a
// validação e o insert) e aplica a política de revoto: com allowRevote a
// submissão anterior do respondente é substituída; sem allowRevote uma
// segunda submissão é rejeitada com AlreadyVoted.
func (r *ResponseRepository) CreateResponse(response *entities.Response, allowRevote bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var poll entities.Poll
		if err := tx.Select("id", "status").First(&poll, "id = ?", response.PollID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if poll.Status != entities.PollStatusOpen {
			return apperrors.NewStateConflict(apperrors.CodePollClosed, "enquete não está aberta para respostas")
		}

		var existing entities.Response
		err := tx.Select("id").
			Where("poll_id = ? AND respondent_id = ?", response.PollID, response.RespondentID).
			First(&existing).Error
		switch {
		case err == nil:
			if !allowRevote {
				return apperrors.NewStateConflict(apperrors.CodeAlreadyVoted, "respondente já votou nesta enquete")
			}
			if err := tx.Delete(&entities.Response{}, "id = ?", existing.ID).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		return tx.Create(response).Error
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if _, ok := apperrors.AsStateConflict(err); ok {
			return err
		}
		return fmt.Errorf("erro ao registrar resposta: %w", err)
	}
	return nil
}

// GetResponses retorna todas as respostas de uma enquete, mais recentes
// primeiro
func (r *ResponseRepository) GetResponses(pollID uuid.UUID) ([]entities.Response, error) {
	var responses []entities.Response
	err := r.db.
		Where("poll_id = ?", pollID).
		Order("created_at DESC").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas: %w", err)
	}
	return responses, nil
}

// CountResponses retorna o total de respostas de uma enquete
func (r *ResponseRepository) CountResponses(pollID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&entities.Response{}).
		Where("poll_id = ?", pollID).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("erro ao contar respostas: %w", err)
	}
	return total, nil
}
