package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// PollRepository implementa métodos para acesso a dados de enquetes
type PollRepository struct {
	db *gorm.DB
}

// NewPollRepository cria uma nova instância de PollRepository
func NewPollRepository(db *gorm.DB) *PollRepository {
	return &PollRepository{
		db: db,
	}
}

// GetPoll busca uma enquete pelo id com as opções ordenadas por order_index
func (r *PollRepository) GetPoll(id uuid.UUID) (*entities.Poll, error) {
	var poll entities.Poll
	err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&poll, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar enquete: %w", err)
	}
	return &poll, nil
}

// ListOpenPolls retorna as enquetes abertas com paginação, mais recentes
// primeiro
func (r *PollRepository) ListOpenPolls(page, limit int) ([]entities.Poll, int64, error) {
	var polls []entities.Poll
	var total int64

	query := r.db.Model(&entities.Poll{}).Where("status = ?", entities.PollStatusOpen)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao contar enquetes: %w", err)
	}

	offset := (page - 1) * limit
	err := query.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&polls).Error
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar enquetes: %w", err)
	}

	return polls, total, nil
}

// CreatePoll persiste uma enquete com suas opções
func (r *PollRepository) CreatePoll(poll *entities.Poll) error {
	if err := r.db.Create(poll).Error; err != nil {
		return fmt.Errorf("erro ao criar enquete: %w", err)
	}
	return nil
}

// UpdateStatus aplica uma transição de status e retorna o status anterior.
// A leitura e a escrita acontecem na mesma transação para que o chamador
// consiga distinguir a transição real (ex.: open->closed) de uma repetição.
func (r *PollRepository) UpdateStatus(id uuid.UUID, status string) (string, error) {
	var previous string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var poll entities.Poll
		if err := tx.Select("id", "status").First(&poll, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		previous = poll.Status

		updates := map[string]interface{}{"status": status}
		if status == entities.PollStatusClosed && previous != entities.PollStatusClosed {
			now := time.Now()
			updates["closed_at"] = &now
		}
		return tx.Model(&entities.Poll{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("erro ao atualizar status da enquete: %w", err)
	}
	return previous, nil
}

// DeletePoll remove a enquete e, em cascata, opções, respostas e mensagens
func (r *PollRepository) DeletePoll(id uuid.UUID) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entities.Poll{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}

		if err := tx.Delete(&entities.ChatMessage{}, "poll_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.Response{}, "poll_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Option{}, "poll_id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("erro ao remover enquete: %w", err)
	}
	return nil
}
