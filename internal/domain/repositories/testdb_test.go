package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/enquesta/enquesta-api/internal/domain/entities"
	"github.com/enquesta/enquesta-api/internal/infrastructure/database/migrations"
)

// setupTestDB abre um banco sqlite em memória com o esquema completo.
// MaxOpenConns=1 evita que conexões distintas enxerguem bancos :memory:
// diferentes.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migrations.Migrate(db))
	require.NoError(t, migrations.AddIndexes(db))

	return db
}

func seedPoll(t *testing.T, db *gorm.DB, pollType entities.PollType, labels ...string) *entities.Poll {
	t.Helper()

	poll := &entities.Poll{
		Title:  "enquete de teste",
		Type:   pollType,
		Status: entities.PollStatusOpen,
	}
	for i, label := range labels {
		poll.Options = append(poll.Options, entities.Option{
			Label:      label,
			OrderIndex: i,
		})
	}
	require.NoError(t, NewPollRepository(db).CreatePoll(poll))
	require.NotEqual(t, uuid.Nil, poll.ID)
	return poll
}
