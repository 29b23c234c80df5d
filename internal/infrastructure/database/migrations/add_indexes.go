package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Polls are listed by status and recency
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_polls_status ON polls (status)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_polls_created_at ON polls (created_at)").Error; err != nil {
		return err
	}

	// Options are always read ordered within a poll
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_options_poll_order ON options (poll_id, order_index)").Error; err != nil {
		return err
	}

	// Responses are aggregated per poll; one row per (poll, respondent)
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_responses_poll_created ON responses (poll_id, created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_responses_poll_respondent ON responses (poll_id, respondent_id)").Error; err != nil {
		return err
	}

	// Messages are read in creation order per poll
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_chat_messages_poll_created ON chat_messages (poll_id, created_at)").Error; err != nil {
		return err
	}

	// Fanout lookups
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_webhook_subscriptions_enabled ON webhook_subscriptions (enabled)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_logic_rules_trigger_priority ON logic_rules (trigger_event, priority)").Error; err != nil {
		return err
	}

	// Payment methods: default lookup per user
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_payment_methods_user_default ON payment_methods (user_id, is_default)").Error; err != nil {
		return err
	}

	return nil
}
