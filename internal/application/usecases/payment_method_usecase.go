package usecases

import (
	"github.com/google/uuid"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
	"github.com/enquesta/enquesta-api/internal/domain/repositories"
)

// PaymentMethodUseCase implementa os casos de uso de métodos de pagamento
type PaymentMethodUseCase struct {
	paymentRepo *repositories.PaymentMethodRepository
}

// NewPaymentMethodUseCase cria uma nova instância de PaymentMethodUseCase
func NewPaymentMethodUseCase(paymentRepo *repositories.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{
		paymentRepo: paymentRepo,
	}
}

// ListByUser retorna os métodos de pagamento do usuário
func (u *PaymentMethodUseCase) ListByUser(userID string) ([]entities.PaymentMethod, error) {
	return u.paymentRepo.ListByUser(userID)
}

// CreatePaymentMethod valida e persiste um método de pagamento
func (u *PaymentMethodUseCase) CreatePaymentMethod(method *entities.PaymentMethod) error {
	if method.UserID == "" {
		return apperrors.NewValidation(apperrors.CodeRequired, "user_id é obrigatório")
	}
	if method.Label == "" {
		return apperrors.NewValidation(apperrors.CodeRequired, "label é obrigatório")
	}
	return u.paymentRepo.CreatePaymentMethod(method)
}

// SetDefault define o método padrão do usuário em uma única transação,
// garantindo exatamente um padrão após a operação
func (u *PaymentMethodUseCase) SetDefault(userID string, id uuid.UUID) error {
	if userID == "" {
		return apperrors.NewValidation(apperrors.CodeRequired, "user_id é obrigatório")
	}
	return u.paymentRepo.SetDefault(userID, id)
}
