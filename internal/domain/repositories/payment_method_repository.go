package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// PaymentMethodRepository implementa métodos para acesso a métodos de
// pagamento
type PaymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository cria uma nova instância de
// PaymentMethodRepository
func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		db: db,
	}
}

// ListByUser retorna os métodos de pagamento de um usuário
func (r *PaymentMethodRepository) ListByUser(userID string) ([]entities.PaymentMethod, error) {
	var methods []entities.PaymentMethod
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&methods).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métodos de pagamento: %w", err)
	}
	return methods, nil
}

// CreatePaymentMethod persiste um novo método de pagamento
func (r *PaymentMethodRepository) CreatePaymentMethod(method *entities.PaymentMethod) error {
	if err := r.db.Create(method).Error; err != nil {
		return fmt.Errorf("erro ao criar método de pagamento: %w", err)
	}
	return nil
}

// SetDefault define o método como padrão do usuário. A limpeza do padrão
// anterior e a definição do novo acontecem na mesma transação, garantindo
// exatamente um padrão por usuário mesmo sob requisições concorrentes.
func (r *PaymentMethodRepository) SetDefault(userID string, id uuid.UUID) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.PaymentMethod{}).
			Where("user_id = ? AND id <> ?", userID, id).
			Update("is_default", false).Error; err != nil {
			return err
		}

		result := tx.Model(&entities.PaymentMethod{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if err == apperrors.ErrNotFound {
			return err
		}
		return fmt.Errorf("erro ao definir método de pagamento padrão: %w", err)
	}
	return nil
}
