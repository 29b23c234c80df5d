package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enquesta/enquesta-api/internal/domain/apperrors"
	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

func seedPaymentMethod(t *testing.T, repo *PaymentMethodRepository, userID, label string, isDefault bool) *entities.PaymentMethod {
	t.Helper()
	method := &entities.PaymentMethod{
		UserID:    userID,
		Label:     label,
		Gateway:   "stripe",
		IsDefault: isDefault,
	}
	require.NoError(t, repo.CreatePaymentMethod(method))
	return method
}

func countDefaults(t *testing.T, repo *PaymentMethodRepository, userID string) (int, uuid.UUID) {
	t.Helper()
	methods, err := repo.ListByUser(userID)
	require.NoError(t, err)

	var defaults int
	var defaultID uuid.UUID
	for _, m := range methods {
		if m.IsDefault {
			defaults++
			defaultID = m.ID
		}
	}
	return defaults, defaultID
}

func TestSetDefaultIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentMethodRepository(db)

	userID := uuid.NewString()
	old := seedPaymentMethod(t, repo, userID, "cartão antigo", true)
	next := seedPaymentMethod(t, repo, userID, "cartão novo", false)
	seedPaymentMethod(t, repo, userID, "boleto", false)

	require.NoError(t, repo.SetDefault(userID, next.ID))

	defaults, defaultID := countDefaults(t, repo, userID)
	assert.Equal(t, 1, defaults)
	assert.Equal(t, next.ID, defaultID)

	// Repetir a operação mantém o invariante
	require.NoError(t, repo.SetDefault(userID, old.ID))
	defaults, defaultID = countDefaults(t, repo, userID)
	assert.Equal(t, 1, defaults)
	assert.Equal(t, old.ID, defaultID)
}

func TestSetDefaultDoesNotTouchOtherUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentMethodRepository(db)

	userA := uuid.NewString()
	userB := uuid.NewString()
	seedPaymentMethod(t, repo, userA, "cartão", true)
	methodB := seedPaymentMethod(t, repo, userB, "cartão", false)

	require.NoError(t, repo.SetDefault(userB, methodB.ID))

	defaultsA, _ := countDefaults(t, repo, userA)
	assert.Equal(t, 1, defaultsA)
}

func TestSetDefaultNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentMethodRepository(db)

	userID := uuid.NewString()
	other := seedPaymentMethod(t, repo, uuid.NewString(), "cartão", false)

	// id inexistente e id de outro usuário são ambos rejeitados
	assert.ErrorIs(t, repo.SetDefault(userID, uuid.New()), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.SetDefault(userID, other.ID), apperrors.ErrNotFound)
}
