package database

import (
	"gorm.io/gorm"

	"github.com/enquesta/enquesta-api/internal/domain/entities"
	"github.com/enquesta/enquesta-api/internal/infrastructure/cache"
)

// ResultsKey monta a chave de cache dos resultados agregados de uma enquete
func ResultsKey(pollID string) string {
	return "results:" + pollID
}

// RegisterInvalidation registra um callback GORM que invalida o cache de
// resultados sempre que uma resposta é inserida ou removida, mantendo a
// memoização coerente com o histórico persistido
func RegisterInvalidation(db *gorm.DB, c *cache.Cache) {
	invalidate := func(tx *gorm.DB) {
		if tx.Error != nil {
			return
		}
		response, ok := tx.Statement.Dest.(*entities.Response)
		if !ok {
			response, ok = tx.Statement.Model.(*entities.Response)
		}
		if !ok || response == nil {
			return
		}
		c.Delete(ResultsKey(response.PollID.String()))
	}

	db.Callback().Create().After("gorm:create").Register("invalidate_results_after_create", invalidate)
	db.Callback().Delete().After("gorm:delete").Register("invalidate_results_after_delete", invalidate)
}
