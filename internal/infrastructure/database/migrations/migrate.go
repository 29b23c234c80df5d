package migrations

import (
	"gorm.io/gorm"

	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// Migrate aplica o esquema de todas as entidades
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Poll{},
		&entities.Option{},
		&entities.Response{},
		&entities.ChatMessage{},
		&entities.WebhookSubscription{},
		&entities.LogicRule{},
		&entities.PaymentMethod{},
	)
}
